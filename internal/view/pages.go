package view

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/msomdec/user-directory/internal/domain"
)

// HomePage renders the landing page.
func HomePage(displayName string) templ.Component {
	body := component(func(b *strings.Builder) {
		b.WriteString("<h1>User Directory</h1>")
		if displayName != "" {
			b.WriteString("<p>Signed in as " + esc(displayName) + ".</p>")
			b.WriteString("<p><a href=\"/users\">Go to the user list</a></p>")
			b.WriteString("<form method=\"post\" action=\"/logout\"><button class=\"btn-secondary\" type=\"submit\">Log out</button></form>")
		} else {
			b.WriteString("<p><a href=\"/login\">Sign in</a> to manage users.</p>")
		}
	})
	return Layout("User Directory", body)
}

// LoginPage renders the sign-in form. errMsg, when non-empty, is shown
// above the form.
func LoginPage(errMsg string) templ.Component {
	body := component(func(b *strings.Builder) {
		b.WriteString("<h1>Sign in</h1>")
		if errMsg != "" {
			b.WriteString("<p class=\"error\">" + esc(errMsg) + "</p>")
		}
		b.WriteString("<form method=\"post\" action=\"/login\">")
		b.WriteString("<label>Email<br><input type=\"email\" name=\"email\" required></label><br>")
		b.WriteString("<label>Password<br><input type=\"password\" name=\"password\" required></label><br>")
		b.WriteString("<button class=\"btn-primary\" type=\"submit\">Sign in</button>")
		b.WriteString("</form>")
	})
	return Layout("Sign in", body)
}

// RolePage renders the role-management view for a single user.
func RolePage(user domain.User, errMsg string) templ.Component {
	body := component(func(b *strings.Builder) {
		b.WriteString("<h1>Change Role</h1>")
		b.WriteString("<p>" + esc(user.Name) + " &lt;" + esc(user.Email) + "&gt; is currently <strong>" + esc(user.Role) + "</strong>.</p>")
		if errMsg != "" {
			b.WriteString("<p class=\"error\">" + esc(errMsg) + "</p>")
		}
		b.WriteString("<form method=\"post\" action=\"/users/roles/" + esc(user.UserID) + "\">")
		b.WriteString("<label>New role<br><input type=\"text\" name=\"role\" value=\"" + esc(user.Role) + "\" required></label><br>")
		b.WriteString("<button class=\"btn-primary\" type=\"submit\">Save role</button>")
		b.WriteString("</form>")
		b.WriteString("<p><a href=\"/users\">Back to the user list</a></p>")
	})
	return Layout("Change Role", body)
}

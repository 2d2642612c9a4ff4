package view

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/screen"
)

// UsersPage renders the full user-list page: search box, sort selector,
// the list container, and the (initially closed) modal root.
func UsersPage(adminName string, users []domain.User, search string, sortKey screen.SortKey) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<header><h1>User&nbsp;List</h1>")
		b.WriteString(profileMenu(adminName))
		b.WriteString("</header>")

		b.WriteString("<div class=\"controls\" data-signals='" +
			esc(fmt.Sprintf(`{"search": %q, "sortBy": %q}`, search, string(sortKey))) + "'>")
		b.WriteString("<select data-bind-sort-by data-on-change=\"@get('/users/list')\">")
		b.WriteString(sortOption("name", "Sort by Name", sortKey == screen.SortByName))
		b.WriteString(sortOption("role", "Sort by Role", sortKey == screen.SortByRole))
		b.WriteString("</select>")
		b.WriteString("<input type=\"text\" placeholder=\"Search Users...\" data-bind-search data-on-input__debounce.300ms=\"@get('/users/list')\">")
		b.WriteString("</div>")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := UserListFragment(users).Render(ctx, w); err != nil {
			return err
		}
		return ModalClosedFragment().Render(ctx, w)
	})
	return Layout("User List", body)
}

// profileMenu is the header dropdown for the signed-in admin: their own
// account dialog, a home link, and sign-out.
func profileMenu(adminName string) string {
	var b strings.Builder
	b.WriteString("<details class=\"profile-menu\"><summary>" + esc(adminName) + "</summary>")
	b.WriteString("<div class=\"profile-menu-items\">")
	b.WriteString("<button data-on-click=\"@post('/profile/open')\">My account</button>")
	b.WriteString("<a href=\"/\">Home</a>")
	b.WriteString("<form method=\"post\" action=\"/logout\"><button type=\"submit\">Log out</button></form>")
	b.WriteString("</div></details>")
	return b.String()
}

func sortOption(value, label string, selected bool) string {
	sel := ""
	if selected {
		sel = " selected"
	}
	return "<option value=\"" + value + "\"" + sel + ">" + label + "</option>"
}

// UserListFragment renders the derived user list, or an explicit
// no-results block when it is empty. The fragment root carries the
// element ID that SSE patches target.
func UserListFragment(users []domain.User) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div id=\"user-list\">")
		if len(users) == 0 {
			b.WriteString("<p class=\"empty\">No User Found</p>")
		} else {
			b.WriteString("<ul class=\"user-list\" role=\"list\">")
			for _, u := range users {
				b.WriteString(fmt.Sprintf("<li data-on-click=\"@post('/users/%d/select')\">", u.ID))
				b.WriteString("<div><p><strong>" + esc(u.Name) + "</strong></p>")
				b.WriteString("<p>" + esc(u.Email) + "</p></div>")
				b.WriteString("<p>" + esc(u.Role) + "</p>")
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")
	})
}

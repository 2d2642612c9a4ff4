package view

import (
	"encoding/json"
	"strings"

	"github.com/a-h/templ"
	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/screen"
)

// ModalClosedFragment renders the empty modal root. Patching it in
// closes whichever dialog was open.
func ModalClosedFragment() templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div id=\"modal-root\"></div>")
	})
}

// UserDetailModal renders the read-only detail dialog for the selected
// user. The backdrop is its own element behind the dialog box, so only
// clicks on the backdrop itself dismiss it. The password is never part
// of this markup.
func UserDetailModal(u domain.User) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString("<div id=\"modal-root\">")
		b.WriteString("<div class=\"modal-backdrop\" data-on-click=\"@post('/users/modal/close')\"></div>")
		b.WriteString("<div class=\"modal-box\">")
		b.WriteString("<h3>( " + esc(u.Role) + " )</h3>")
		b.WriteString("<h3>" + esc(u.Name) + "</h3>")
		b.WriteString("<dl>")
		writeDetailRow(b, "Address", esc(displayString(u.Address)))
		writeDetailRow(b, "Country", esc(displayString(u.Country)))
		writeDetailRow(b, "Email", esc(u.Email))
		writeDetailRow(b, "Role", "<a href=\"/users/roles/"+esc(u.UserID)+"\">"+esc(u.Role)+"</a>")
		writeDetailRow(b, "Gender", esc(u.Gender))
		b.WriteString("</dl>")
		b.WriteString("<button class=\"btn-primary\" data-on-click=\"@post('/users/modal/edit')\">Edit Profile</button>")
		b.WriteString("<button class=\"btn-secondary\" data-on-click=\"@post('/users/modal/close')\">Close</button>")
		b.WriteString("</div></div>")
	})
}

// EditUserModal renders the edit dialog over the given draft. Inputs
// bind to signals; the save button is disabled while a save is in
// flight. errMsg, when non-empty, is the surfaced save failure.
func EditUserModal(d screen.Draft, errMsg string) templ.Component {
	return component(func(b *strings.Builder) {
		signals, _ := json.Marshal(map[string]string{
			"name":    d.Name(),
			"email":   d.Email(),
			"address": d.Address(),
			"country": d.Country(),
		})

		b.WriteString("<div id=\"modal-root\" data-signals='" + esc(string(signals)) + "'>")
		b.WriteString("<div class=\"modal-backdrop\" data-on-click=\"@post('/users/modal/cancel')\"></div>")
		b.WriteString("<div class=\"modal-box\">")
		b.WriteString("<h3>Edit Profile</h3>")
		b.WriteString("<form>")
		writeEditField(b, "Name", "text", "name")
		writeEditField(b, "Email", "email", "email")
		writeEditField(b, "Address", "text", "address")
		writeEditField(b, "Country", "text", "country")
		b.WriteString("</form>")
		if errMsg != "" {
			b.WriteString("<p class=\"error\">" + esc(errMsg) + "</p>")
		}
		b.WriteString("<button class=\"btn-primary\" data-on-click=\"@post('/users/modal/save')\" data-indicator-saving data-attr-disabled=\"$saving\">Save</button>")
		b.WriteString("<button class=\"btn-secondary\" data-on-click=\"@post('/users/modal/cancel')\">Cancel</button>")
		b.WriteString("</div></div>")
	})
}

func writeDetailRow(b *strings.Builder, label, valueHTML string) {
	b.WriteString("<div><dt><strong>" + label + "</strong></dt><dd>" + valueHTML + "</dd></div>")
}

func writeEditField(b *strings.Builder, label, inputType, signal string) {
	b.WriteString("<label>" + label + "<input type=\"" + inputType + "\" data-bind-" + signal + "></label>")
}

func displayString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

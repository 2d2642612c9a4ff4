// Package view renders the application's HTML. Components are written
// directly against the templ runtime (templ.ComponentFunc) so handlers
// can render pages and patch fragments over SSE with the same types.
package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

const baseCSS = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f7f7f8; color: #111; }
.container { max-width: 56rem; margin: 0 auto; padding: 2rem 1rem; }
.controls { display: flex; gap: 1rem; margin-bottom: 1rem; }
.controls input { flex: 1; padding: .5rem .75rem; border-radius: 9999px; border: 1px solid #ddd; }
.user-list { list-style: none; margin: 0; padding: 0; }
.user-list li { display: flex; justify-content: space-between; padding: 1rem .5rem; border-bottom: 1px solid #eee; cursor: pointer; }
.user-list li:hover { background: #f0f0f0; }
.empty { text-align: center; color: #777; padding: 2.5rem 0; }
.modal-backdrop { position: fixed; inset: 0; background: rgba(0,0,0,.5); z-index: 40; }
.modal-box { position: fixed; top: 50%; left: 50%; transform: translate(-50%,-50%);
             background: #fff; padding: 1.5rem; border-radius: .5rem; z-index: 50; width: 24rem; }
.modal-box dl div { display: flex; justify-content: space-between; padding: .5rem 0; border-top: 1px solid #eee; }
.modal-box input { width: 100%; padding: .4rem .6rem; margin-top: .25rem; border: 1px solid #ccc; border-radius: .25rem; }
.modal-box button { width: 100%; margin-top: .75rem; padding: .5rem; border: 0; border-radius: .375rem; cursor: pointer; }
.btn-primary { background: #4f46e5; color: #fff; }
.btn-secondary { background: #6b7280; color: #fff; }
.error { color: #b91c1c; margin-top: .5rem; }
header { display: flex; justify-content: space-between; align-items: center; }
.profile-menu { position: relative; }
.profile-menu summary { cursor: pointer; list-style: none; font-weight: 600; }
.profile-menu-items { position: absolute; right: 0; background: #fff; border: 1px solid #ddd;
                      border-radius: .375rem; padding: .5rem; min-width: 10rem; z-index: 30; }
.profile-menu-items button, .profile-menu-items a { display: block; width: 100%; text-align: left;
                      background: none; border: 0; padding: .4rem .5rem; color: #111; cursor: pointer; }
.profile-menu-items button:hover, .profile-menu-items a:hover { background: #f0f0f0; }
`

// component adapts a strings.Builder renderer into a templ.Component.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps body in the shared page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.WriteString("<title>" + esc(title) + "</title>")
		b.WriteString("<script type=\"module\" src=\"" + datastarCDN + "\"></script>")
		b.WriteString("<style>" + baseCSS + "</style>")
		b.WriteString("</head><body><main class=\"container\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

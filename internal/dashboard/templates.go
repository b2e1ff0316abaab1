package dashboard

import "html/template"

// Shell templates for the server-rendered pages. The real UI is a separate
// frontend; these exist so the page-side session flow (login redirect, role
// dispatch) is exercised end to end.
const pageTemplates = `
{{define "login"}}
<!DOCTYPE html>
<html>
<head><title>MediFlow — Sign in</title></head>
<body>
  <h1>Sign in</h1>
  <form method="post" action="/api/v1/auth/login">
    <input type="email" name="email" placeholder="Email" required>
    <input type="password" name="password" placeholder="Password" required>
    <input type="hidden" name="from" value="{{.From}}">
    <button type="submit">Sign in</button>
  </form>
</body>
</html>
{{end}}

{{define "dashboard"}}
<!DOCTYPE html>
<html>
<head><title>MediFlow — {{.Title}}</title></head>
<body>
  <h1>{{.Title}}</h1>
  <p>Signed in as {{.Role}}</p>
  <form method="post" action="/api/v1/auth/logout">
    <button type="submit">Sign out</button>
  </form>
</body>
</html>
{{end}}
`

// Templates parses the page shells once at startup.
func Templates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}

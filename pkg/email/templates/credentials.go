package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// CredentialsData is the input of the credentials notification email.
type CredentialsData struct {
	Name     string
	Username string
	Password string
	Year     int
}

var credentialsTemplate = template.Must(template.New("credentials").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Your portal access</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color:#f4f5f7;padding:32px 0;">
<tr><td align="center">
<table role="presentation" width="560" cellspacing="0" cellpadding="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
<tr><td style="background-color:#0b3d91;padding:24px 32px;color:#ffffff;font-size:20px;font-weight:bold;">Logistics Portal</td></tr>
<tr><td style="padding:32px;">
<p style="margin:0 0 16px;font-size:16px;">Hello {{.Name}},</p>
<p style="margin:0 0 24px;font-size:15px;line-height:22px;">An account has been created for you on the logistics portal. Use the credentials below to sign in.</p>
<table role="presentation" cellspacing="0" cellpadding="0" style="width:100%;background-color:#f0f4fa;border-radius:6px;">
<tr><td style="padding:16px 20px;font-size:15px;"><strong>Username:</strong> <span style="font-family:Consolas,monospace;">{{.Username}}</span></td></tr>
<tr><td style="padding:0 20px 16px;font-size:15px;"><strong>Password:</strong> <span style="font-family:Consolas,monospace;">{{.Password}}</span></td></tr>
</table>
<p style="margin:24px 0 0;font-size:13px;line-height:20px;color:#52606d;">Keep these credentials private. If you did not expect this message, contact your administrator.</p>
</td></tr>
<tr><td style="padding:16px 32px;background-color:#f9fafb;font-size:12px;color:#9aa5b1;text-align:center;">&copy; {{.Year}} Logistics Portal. All rights reserved.</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

// CredentialsEmail returns a component rendering the credentials notification.
// Values are HTML-escaped.
func CredentialsEmail(data CredentialsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return credentialsTemplate.Execute(w, data)
	})
}

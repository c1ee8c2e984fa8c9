package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	templateSubscriptionStarted = "subscription_started"
	templatePaymentFailed       = "payment_failed"
	templateTicketCreated       = "ticket_created"
	templateSupportReply        = "support_reply"
)

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	FullName     string
	PlanCode     string
	TrialEnd     string
	TicketID     string
	TicketName   string
	Contact      string
	SourcePage   string
	Message      string
	SenderName   string
	DashboardURL string
}

var templates = template.Must(template.New("notify").Parse(`
{{define "subscription_started"}}<html>
	<body>
		<h1>Welcome to Spectra{{if .FullName}}, {{.FullName}}{{end}}!</h1>
		<p>Your {{.PlanCode}} subscription is set up.</p>
		{{if .TrialEnd}}<p>Your free trial runs until {{.TrialEnd}}. You will not be charged before then.</p>{{end}}
		<p>Questions? Just reply to this email.</p>
	</body>
</html>{{end}}
{{define "payment_failed"}}<html>
	<body>
		<h1>We couldn't process your payment</h1>
		<p>Hi{{if .FullName}} {{.FullName}}{{end}}, the latest charge for your {{.PlanCode}} plan did not go through.</p>
		<p>Please update your payment method to keep your salon's account active.</p>
	</body>
</html>{{end}}
{{define "ticket_created"}}<html>
	<body>
		<h2>New support ticket from {{.TicketName}}</h2>
		<p><strong>Contact:</strong> {{.Contact}}</p>
		{{if .SourcePage}}<p><strong>Page:</strong> {{.SourcePage}}</p>{{end}}
		<blockquote>{{.Message}}</blockquote>
		{{if .DashboardURL}}<p><a href="{{.DashboardURL}}">Open in dashboard</a></p>{{end}}
	</body>
</html>{{end}}
{{define "support_reply"}}<html>
	<body>
		<p>Hi {{.TicketName}},</p>
		<p>{{.SenderName}} replied to your message:</p>
		<blockquote>{{.Message}}</blockquote>
	</body>
</html>{{end}}
`))

// renderTemplate renders a template with the provided data
func renderTemplate(name string, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

/**
* Name: 			mailer.go
* Description: 		Email notification sink for accepted submissions
* Workflow: 		compose label/value body -> send over SMTP
 */
package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"FormRelay_LandingProject/internal/models"
)

// Sink receives one notification per accepted submission. Delivery
// semantics beyond a single send attempt are the sink's own business.
type Sink interface {
	Notify(subject, body string) error
}

// Mailer sends submission notifications to a fixed recipient over SMTP.
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	from      string
	recipient string
}

func NewMailer(host string, port int, username, password, from, recipient string) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		from:      from,
		recipient: recipient,
	}
}

func (m *Mailer) Notify(subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{m.recipient}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := e.Send(addr, auth); err != nil {
		log.Printf("Mailer.Notify(): failed to send notification to %s: %v", m.recipient, err)
		return err
	}
	return nil
}

// ComposeBody pairs each label with its value, one line per field, in
// submission order.
func ComposeBody(record models.Submission) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Timestamp: %s\n", record.ReceivedAt.Format("2006-01-02 15:04:05")))
	for _, field := range record.Fields {
		b.WriteString(fmt.Sprintf("%s: %s\n", field.Label, field.Value))
	}
	return b.String()
}

// Disabled is the no-op sink used when no SMTP server is configured.
type Disabled struct{}

func (Disabled) Notify(string, string) error { return nil }

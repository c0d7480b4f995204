package email

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/config"
)

// SMTPNotifier emails the administrator when a new complaint arrives.
// Notification is advisory only; callers fire it in the background and
// never let a send failure affect the submission.
type SMTPNotifier struct {
	cfg       *config.EmailConfig
	dialer    *gomail.Dialer
	sanitizer *bluemonday.Policy
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (n *SMTPNotifier) NotifyNewComplaint(c *complaint.Complaint) error {
	name := n.orNotProvided(c.Name())
	email := n.orNotProvided(c.Email())
	subject := n.sanitizer.Sanitize(c.Subject())
	body := n.sanitizer.Sanitize(c.Body())

	attachmentLine := ""
	if c.HasAttachment() {
		attachmentLine = fmt.Sprintf(`<p><a href="%s">View attachment</a></p>`, *c.AttachmentURL())
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Complaint Received</h2>
			<p><strong>Subject:</strong> %s</p>
			<p><strong>From:</strong> %s (%s)</p>
			<p>%s</p>
			%s
		</body>
		</html>
	`, subject, name, email, body, attachmentLine)

	plainBody := fmt.Sprintf(`
New Complaint Received

Subject: %s
From: %s (%s)

%s
	`, subject, name, email, body)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.FromAddress, n.cfg.FromName))
	m.SetHeader("To", n.cfg.AdminAddress)
	m.SetHeader("Subject", "New complaint: "+subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send complaint notification: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return n.sanitizer.Sanitize(v)
}

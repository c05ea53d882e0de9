package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/url"

	"github.com/harshithgangone/Accredian-Backend-task/models"

	"gopkg.in/gomail.v2"
)

var friendTemplate = template.Must(template.New("friend").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 5px;">
  <h2 style="color: #333;">You've Been Referred!</h2>
  <p>Hello {{.FriendName}},</p>
  <p>Your friend <strong>{{.ReferrerName}}</strong> has referred you to our <strong>{{.Program}}</strong> program.</p>
  <p>We'd love to tell you more about this opportunity. One of our advisors will contact you soon to discuss how this program can benefit your career.</p>
  <div style="margin: 30px 0; text-align: center;">
    <a href="{{.ProgramLink}}" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 4px; font-weight: bold;">Learn More About The Program</a>
  </div>
  <p>If you have any immediate questions, feel free to contact us.</p>
  <p>Best regards,<br>The Education Team</p>
</div>
`))

var referrerTemplate = template.Must(template.New("referrer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 5px;">
  <h2 style="color: #333;">Referral Received!</h2>
  <p>Hello {{.ReferrerName}},</p>
  <p>Thank you for referring <strong>{{.FriendName}}</strong> to our <strong>{{.Program}}</strong> program.</p>
  <p>We've sent them an email and will be reaching out to them shortly. Once they enroll, you'll receive your referral reward!</p>
  <p>Thank you for spreading the word about our programs.</p>
  <p>Best regards,<br>The Education Team</p>
</div>
`))

type templateData struct {
	ReferrerName string
	FriendName   string
	Program      string
	ProgramLink  string
}

// Config holds the SMTP account and the public site URL used to build the
// call-to-action link in the friend email.
type Config struct {
	Host       string
	Port       int
	User       string
	Pass       string
	WebsiteURL string
}

type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

func New(cfg Config) *Mailer {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.WebsiteURL == "" {
		cfg.WebsiteURL = "https://example.com"
	}
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
	}
}

// SendReferralEmails notifies the referred friend, then confirms to the
// referrer. The sends are sequential over one SMTP account; the first
// failure is returned and the second email is not attempted.
func (m *Mailer) SendReferralEmails(referral models.Referral) error {
	data := templateData{
		ReferrerName: referral.ReferrerName,
		FriendName:   referral.FriendName,
		Program:      referral.Program,
		ProgramLink:  m.cfg.WebsiteURL + "/programs/" + url.PathEscape(referral.Program),
	}

	friendSubject := fmt.Sprintf("%s has referred you to our %s program!", referral.ReferrerName, referral.Program)
	if err := m.send(referral.FriendEmail, friendSubject, friendTemplate, data); err != nil {
		return fmt.Errorf("sending friend notification: %w", err)
	}
	log.Printf("Referral email sent to %s", referral.FriendEmail)

	if err := m.send(referral.ReferrerEmail, "Thank you for your referral!", referrerTemplate, data); err != nil {
		return fmt.Errorf("sending referrer confirmation: %w", err)
	}
	log.Printf("Confirmation email sent to %s", referral.ReferrerEmail)

	return nil
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data templateData) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	return m.dialer.DialAndSend(msg)
}

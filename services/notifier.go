package services

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"

	"anita-beauty-backend/config"
	"anita-beauty-backend/models"
)

// ContactNotifier announces a new contact message to the salon owner.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

// Notifier emails the owner through the transactional provider's SMTP
// endpoint and, when Twilio is configured, texts them as well. Channels
// that are not configured are skipped.
type Notifier struct {
	cfg    *config.Config
	dialer *gomail.Dialer
	twilio *twilio.RestClient
}

func NewNotifier(cfg *config.Config) *Notifier {
	n := &Notifier{cfg: cfg}

	if cfg.SMTPAPIKey != "" {
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			port = 587
		}
		n.dialer = gomail.NewDialer(cfg.SMTPHost, port, "apikey", cfg.SMTPAPIKey)
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return n
}

// NotifyContact blocks on the email send (bounded by ctx) and fires the
// SMS in the background. The email result decides the response copy the
// caller shows; the SMS result only gets logged.
func (n *Notifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	n.sendSMS(msg)
	return n.sendEmail(ctx, msg)
}

func (n *Notifier) sendEmail(ctx context.Context, msg models.ContactMessage) error {
	if n.dialer == nil {
		config.Log.Debug("email notifier not configured, skipping send")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.SenderEmail)
	m.SetHeader("To", n.cfg.NotifyEmail)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "Új üzenet érkezett: "+msg.Name)
	m.SetBody("text/html", contactEmailBody(msg))

	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) sendSMS(msg models.ContactMessage) {
	if n.twilio == nil || n.cfg.TwilioFrom == "" || n.cfg.NotifyPhone == "" {
		return
	}
	go func() {
		params := &twilioApi.CreateMessageParams{}
		params.SetFrom(n.cfg.TwilioFrom)
		params.SetTo(n.cfg.NotifyPhone)
		params.SetBody(fmt.Sprintf("Új üzenet a weboldalról: %s (%s)", msg.Name, msg.Email))

		if _, err := n.twilio.Api.CreateMessage(params); err != nil {
			config.Log.WithError(err).Warn("contact SMS failed")
		}
	}()
}

func contactEmailBody(msg models.ContactMessage) string {
	phone := "-"
	if msg.Phone != nil && *msg.Phone != "" {
		phone = *msg.Phone
	}
	return fmt.Sprintf(`<h2>Új kapcsolatfelvételi üzenet</h2>
<p><strong>Név:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telefon:</strong> %s</p>
<p><strong>Üzenet:</strong></p>
<p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(phone),
		html.EscapeString(msg.Message),
	)
}

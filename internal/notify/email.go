package notify

import (
	"fmt"
	"html"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"remind-chat-backend/internal/config"
)

const emailBodyTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background: linear-gradient(135deg, #f97316, #ea580c); border-radius: 15px;">
  <div style="background: white; padding: 30px; border-radius: 10px; text-align: center;">
    <h1 style="color: #f97316; margin-bottom: 20px;">🚨 Task Reminder!</h1>
    <div style="font-size: 18px; color: #333; margin-bottom: 20px;">
      It's time to: <strong style="color: #f97316;">%s</strong>
    </div>
    <div style="background: #f97316; color: white; padding: 15px; border-radius: 8px; font-weight: bold;">
      Don't forget to complete your task! 📝
    </div>
  </div>
</div>`

// EmailSender delivers reminders as templated HTML mail over SMTP. A
// sender built from an unconfigured SMTPConfig stays usable and
// reports every send as failed.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewEmailSender(cfg config.SMTPConfig, log *zap.Logger) *EmailSender {
	s := &EmailSender{from: cfg.User, log: log}
	if cfg.Enabled() {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return s
}

// Enabled reports whether SMTP credentials were configured.
func (s *EmailSender) Enabled() bool {
	return s.dialer != nil
}

// Send attempts one email delivery and reports the outcome. Transport
// faults are logged, never returned.
func (s *EmailSender) Send(to, taskText string) bool {
	if s.dialer == nil {
		s.log.Debug("email not configured, skipping")
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "🚨 Task Reminder - Don't Forget!")
	m.SetBody("text/html", fmt.Sprintf(emailBodyTemplate, html.EscapeString(taskText)))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Warn("email send failed", zap.String("to", to), zap.Error(err))
		return false
	}

	s.log.Info("email sent", zap.String("to", to))
	return true
}

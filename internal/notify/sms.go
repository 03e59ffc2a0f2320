package notify

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"remind-chat-backend/internal/config"
)

// SMSSender delivers reminders over Twilio SMS. A sender built from an
// unconfigured TwilioConfig stays usable and reports every send as
// failed.
type SMSSender struct {
	client *twilio.RestClient
	from   string
	log    *zap.Logger
}

func NewSMSSender(cfg config.TwilioConfig, log *zap.Logger) *SMSSender {
	s := &SMSSender{from: cfg.From, log: log}
	if cfg.Enabled() {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.SID,
			Password: cfg.Token,
		})
	}
	return s
}

// Enabled reports whether Twilio credentials were configured.
func (s *SMSSender) Enabled() bool {
	return s.client != nil
}

// Send attempts one SMS delivery and reports the outcome. Transport
// faults are logged, never returned.
func (s *SMSSender) Send(to, taskText string) bool {
	if s.client == nil {
		s.log.Debug("twilio not configured, skipping SMS")
		return false
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("🚨 Task Reminder: It's time to %s! Don't forget! 📝", taskText))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		s.log.Warn("SMS send failed", zap.String("to", to), zap.Error(err))
		return false
	}

	s.log.Info("SMS sent", zap.String("to", to))
	return true
}

package notify

import (
	"go.uber.org/zap"

	"remind-chat-backend/internal/tasks"
)

// Channel is a single best-effort delivery transport. Implementations
// swallow their own faults and report success as a boolean.
type Channel interface {
	Send(to, taskText string) bool
}

// Dispatcher picks a channel for a due task: SMS first if the task has
// a phone number, email as fallback. One attempt per channel, never
// more.
type Dispatcher struct {
	sms   Channel
	email Channel
	log   *zap.Logger
}

func NewDispatcher(sms, email Channel, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sms: sms, email: email, log: log}
}

// Dispatch reports whether any channel accepted the notification. The
// caller marks the task notified either way.
func (d *Dispatcher) Dispatch(t tasks.Task) bool {
	sent := false

	if t.Phone != "" {
		sent = d.sms.Send(t.Phone, t.Text)
	}
	if !sent && t.Email != "" {
		sent = d.email.Send(t.Email, t.Text)
	}

	if !sent {
		d.log.Info("no notification delivered", zap.Int("task_id", t.ID), zap.String("task", t.Text))
	}
	return sent
}

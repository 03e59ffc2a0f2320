package tasks

import "time"

// Task is a persisted reminder: what to do, when to fire, and where to
// send the notification. Phone and Email are empty when the user gave
// no contact info for that channel.
type Task struct {
	ID               int       `json:"id"`
	Text             string    `json:"text"`
	TimePhrase       string    `json:"time_phrase"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	NotificationSent bool      `json:"notification_sent"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

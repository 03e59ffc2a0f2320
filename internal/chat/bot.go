package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"remind-chat-backend/internal/tasks"
)

// Fixed replies. Every failure is a string reply, never an error to
// the HTTP caller.
const (
	replyHelp = "🤖 Sorry, I didn't understand that. Try commands like:\n" +
		"- Remind me to walk at 6 PM\n" +
		"- Show tasks\n" +
		"- Delete task 1"
	replyBadReminder = "❗ Please use: `Remind me to <task> at <time>`. " +
		"Example: 'Remind me to call mom at 6 PM'"
	replyNoTasks      = "📭 You have no pending tasks."
	replyBadOrdinal   = "❗ Invalid task number. Use 'show tasks' to see the list first."
	replyStoreFailure = "⚠️ Something went wrong. Please try again."
)

// TaskStore is the slice of task persistence the bot needs.
type TaskStore interface {
	Create(ctx context.Context, t tasks.Task) (*tasks.Task, error)
	ListPending(ctx context.Context) ([]tasks.Task, error)
	Complete(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

// Bot turns chat messages into task operations and reply text.
type Bot struct {
	store TaskStore
	log   *zap.Logger
	now   func() time.Time
}

func NewBot(store TaskStore, log *zap.Logger) *Bot {
	return &Bot{store: store, log: log, now: time.Now}
}

// Handle applies one chat message against the store and returns the
// reply text. Store failures are logged and surface as a generic
// reply.
func (b *Bot) Handle(ctx context.Context, message, phone, email string) string {
	cmd := Parse(message)

	switch cmd.Intent {
	case IntentCreate:
		return b.createReminder(ctx, cmd, phone, email)
	case IntentCreateInvalid:
		return replyBadReminder
	case IntentShow:
		return b.showTasks(ctx)
	case IntentDelete:
		return b.deleteTask(ctx, cmd.Ordinal)
	case IntentComplete:
		return b.completeTask(ctx, cmd.Ordinal)
	case IntentOrdinalInvalid:
		return replyBadOrdinal
	default:
		return replyHelp
	}
}

func (b *Bot) createReminder(ctx context.Context, cmd Command, phone, email string) string {
	scheduledAt, err := ParseTime(cmd.TimePhrase, b.now())
	if err != nil {
		return replyBadReminder
	}

	created, err := b.store.Create(ctx, tasks.Task{
		Text:        cmd.Task,
		TimePhrase:  cmd.TimePhrase,
		ScheduledAt: scheduledAt,
		Phone:       phone,
		Email:       email,
	})
	if err != nil {
		b.log.Error("failed to create task", zap.Error(err))
		return replyStoreFailure
	}

	channel := "browser notification"
	if phone != "" {
		channel = "SMS"
	} else if email != "" {
		channel = "email"
	}

	return fmt.Sprintf("✅ Perfect! I'll remind you to **%s** at **%s** (%s) via %s. 📲",
		created.Text, created.TimePhrase,
		scheduledAt.Format("1/2/2006, 3:04:05 PM"), channel)
}

func (b *Bot) showTasks(ctx context.Context) string {
	list, err := b.store.ListPending(ctx)
	if err != nil {
		b.log.Error("failed to list tasks", zap.Error(err))
		return replyStoreFailure
	}
	if len(list) == 0 {
		return replyNoTasks
	}

	var sb strings.Builder
	sb.WriteString("📋 **Your upcoming tasks:**\n")
	for i, t := range list {
		status := "⏰"
		if t.NotificationSent {
			status = "🔔"
		}
		contact := "🔕"
		if t.Phone != "" {
			contact = "📱"
		} else if t.Email != "" {
			contact = "✉️"
		}
		fmt.Fprintf(&sb, "\n%d. %s %s at %s %s", i+1, status, t.Text, t.TimePhrase, contact)
	}
	return sb.String()
}

// deleteTask resolves the ordinal against a fresh pending listing, so
// numbers can shift between a "show tasks" and the delete if tasks
// changed in between. That matches the listing the user last saw in
// the common case and is the accepted behavior.
func (b *Bot) deleteTask(ctx context.Context, n int) string {
	target, reply := b.taskAt(ctx, n)
	if target == nil {
		return reply
	}

	if err := b.store.Delete(ctx, target.ID); err != nil {
		b.log.Error("failed to delete task", zap.Int("id", target.ID), zap.Error(err))
		return replyStoreFailure
	}
	return fmt.Sprintf("🗑️ Deleted task: **%s**", target.Text)
}

func (b *Bot) completeTask(ctx context.Context, n int) string {
	target, reply := b.taskAt(ctx, n)
	if target == nil {
		return reply
	}

	if err := b.store.Complete(ctx, target.ID); err != nil {
		b.log.Error("failed to complete task", zap.Int("id", target.ID), zap.Error(err))
		return replyStoreFailure
	}
	return fmt.Sprintf("✅ Marked as completed: **%s**. Great job! 🎉", target.Text)
}

// taskAt returns the n-th (1-based) pending task, or nil plus the
// reply to send instead.
func (b *Bot) taskAt(ctx context.Context, n int) (*tasks.Task, string) {
	list, err := b.store.ListPending(ctx)
	if err != nil {
		b.log.Error("failed to list tasks", zap.Error(err))
		return nil, replyStoreFailure
	}
	if n < 1 || n > len(list) {
		return nil, replyBadOrdinal
	}
	return &list[n-1], ""
}

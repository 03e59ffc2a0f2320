package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCreateReminder(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantTask   string
		wantPhrase string
	}{
		{
			name:       "basic",
			message:    "remind me to call mom at 6 PM",
			wantTask:   "call mom",
			wantPhrase: "6 PM",
		},
		{
			name:       "no to",
			message:    "remind me walk the dog at 7:30 am",
			wantTask:   "walk the dog",
			wantPhrase: "7:30 am",
		},
		{
			name:       "task contains at, last one wins",
			message:    "remind me to look at the stars at 9 pm",
			wantTask:   "look at the stars",
			wantPhrase: "9 pm",
		},
		{
			name:       "mixed case prefix",
			message:    "Remind me to Buy Milk at 5 PM",
			wantTask:   "Buy Milk",
			wantPhrase: "5 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.message)
			assert.Equal(t, IntentCreate, cmd.Intent)
			assert.Equal(t, tt.wantTask, cmd.Task)
			assert.Equal(t, tt.wantPhrase, cmd.TimePhrase)
		})
	}
}

func TestParseCreateReminderMissingParts(t *testing.T) {
	for _, message := range []string{
		"remind me",
		"remind me to call mom",
		"remind me at 6 PM",
		"remind me to at 6 PM",
	} {
		t.Run(message, func(t *testing.T) {
			assert.Equal(t, IntentCreateInvalid, Parse(message).Intent)
		})
	}
}

func TestParseShowTasks(t *testing.T) {
	assert.Equal(t, IntentShow, Parse("show tasks").Intent)
	assert.Equal(t, IntentShow, Parse("please show tasks now").Intent)
	assert.Equal(t, IntentShow, Parse("Show Tasks").Intent)
}

func TestParseDeleteTask(t *testing.T) {
	cmd := Parse("delete task 2")
	assert.Equal(t, IntentDelete, cmd.Intent)
	assert.Equal(t, 2, cmd.Ordinal)

	assert.Equal(t, IntentOrdinalInvalid, Parse("delete task").Intent)
	assert.Equal(t, IntentOrdinalInvalid, Parse("delete task two").Intent)
}

func TestParseCompleteTask(t *testing.T) {
	cmd := Parse("complete task 1")
	assert.Equal(t, IntentComplete, cmd.Intent)
	assert.Equal(t, 1, cmd.Ordinal)

	// Substring match, unlike the delete prefix.
	cmd = Parse("please complete task 3")
	assert.Equal(t, IntentComplete, cmd.Intent)
	assert.Equal(t, 3, cmd.Ordinal)

	assert.Equal(t, IntentOrdinalInvalid, Parse("complete task abc").Intent)
}

func TestParseUnknown(t *testing.T) {
	for _, message := range []string{"", "hello", "what can you do", "remove task 1"} {
		assert.Equal(t, IntentUnknown, Parse(message).Intent, message)
	}
}

func TestParsePrecedence(t *testing.T) {
	// A remind-me prefix wins even when the text mentions other
	// command markers.
	cmd := Parse("remind me to show tasks to the team at 4 pm")
	assert.Equal(t, IntentCreate, cmd.Intent)
	assert.Equal(t, "show tasks to the team", cmd.Task)
}

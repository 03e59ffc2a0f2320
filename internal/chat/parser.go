package chat

import (
	"strconv"
	"strings"
)

// Intent classifies an inbound chat message.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentCreate
	IntentCreateInvalid
	IntentShow
	IntentDelete
	IntentComplete
	IntentOrdinalInvalid
)

// Command is a parsed chat message. Task and TimePhrase are set for
// IntentCreate, Ordinal for IntentDelete and IntentComplete.
type Command struct {
	Intent     Intent
	Task       string
	TimePhrase string
	Ordinal    int
}

const (
	remindPrefix   = "remind me"
	showMarker     = "show tasks"
	deletePrefix   = "delete task"
	completeMarker = "complete task"
)

// Parse classifies a raw message. Matching is case-insensitive; the
// first matching command shape wins.
func Parse(raw string) Command {
	msg := strings.TrimSpace(raw)
	folded := strings.ToLower(msg)

	switch {
	case strings.HasPrefix(folded, remindPrefix):
		return parseCreate(msg, folded)
	case strings.Contains(folded, showMarker):
		return Command{Intent: IntentShow}
	case strings.HasPrefix(folded, deletePrefix):
		return parseOrdinal(IntentDelete, folded[len(deletePrefix):])
	case strings.Contains(folded, completeMarker):
		rest := folded[strings.Index(folded, completeMarker)+len(completeMarker):]
		return parseOrdinal(IntentComplete, rest)
	default:
		return Command{Intent: IntentUnknown}
	}
}

// parseCreate splits "remind me [to] <task> at <time>" around the last
// " at ", so task descriptions may themselves contain "at".
func parseCreate(msg, folded string) Command {
	atIdx := strings.LastIndex(folded, " at ")
	if atIdx < len(remindPrefix) {
		return Command{Intent: IntentCreateInvalid}
	}

	// Slice the original-case message when it folds without length
	// changes, so the stored text keeps the user's casing.
	src := folded
	if len(msg) == len(folded) {
		src = msg
	}

	phrase := strings.TrimSpace(src[atIdx+len(" at "):])

	task := strings.TrimSpace(src[len(remindPrefix):atIdx])
	if strings.EqualFold(task, "to") {
		task = ""
	} else if len(task) >= 3 && strings.EqualFold(task[:3], "to ") {
		task = strings.TrimSpace(task[3:])
	}

	if task == "" || phrase == "" {
		return Command{Intent: IntentCreateInvalid}
	}
	return Command{Intent: IntentCreate, Task: task, TimePhrase: phrase}
}

func parseOrdinal(intent Intent, rest string) Command {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Command{Intent: IntentOrdinalInvalid}
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{Intent: IntentOrdinalInvalid}
	}
	return Command{Intent: intent, Ordinal: n}
}

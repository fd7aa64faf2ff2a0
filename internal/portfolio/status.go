package portfolio

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tone is the badge color family for a project status.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)

var statusTones = map[string]Tone{
	"completed":   ToneSuccess,
	"in progress": ToneWarning,
	"planning":    ToneInfo,
}

// StatusTone maps a free-text status to its badge tone. Unknown statuses are neutral.
func StatusTone(status string) Tone {
	key := cases.Fold().String(strings.TrimSpace(status))
	if tone, ok := statusTones[key]; ok {
		return tone
	}
	return ToneNeutral
}

// Badge is the status pill shown on a card.
type Badge struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// NewBadge builds the badge for status, keeping its original text as the label.
func NewBadge(status string) Badge {
	return Badge{Label: strings.TrimSpace(status), Tone: StatusTone(status)}
}

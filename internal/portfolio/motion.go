package portfolio

import (
	"time"

	"github.com/samber/lo"
)

// Part names an animated element of a project card.
type Part string

const (
	PartCard         Part = "card"
	PartImage        Part = "image"
	PartBadge        Part = "badge"
	PartContent      Part = "content"
	PartTitle        Part = "title"
	PartDate         Part = "date"
	PartDescription  Part = "description"
	PartTechnologies Part = "technologies"
	PartButtons      Part = "buttons"
)

// Cue is one row of the entrance timeline: the element starts Offset after
// the card's own stagger and runs for Duration.
type Cue struct {
	Part     Part
	Effect   string
	Offset   time.Duration
	Duration time.Duration
}

const (
	cardStagger = 100 * time.Millisecond
	chipOffset  = 600 * time.Millisecond
	chipStagger = 50 * time.Millisecond
	chipLength  = 300 * time.Millisecond
)

// cardTimeline is the entrance choreography for a single card.
var cardTimeline = []Cue{
	{Part: PartCard, Effect: "rise", Offset: 0, Duration: 600 * time.Millisecond},
	{Part: PartImage, Effect: "settle", Offset: 200 * time.Millisecond, Duration: 800 * time.Millisecond},
	{Part: PartContent, Effect: "lift", Offset: 300 * time.Millisecond, Duration: 500 * time.Millisecond},
	{Part: PartBadge, Effect: "pop", Offset: 400 * time.Millisecond, Duration: 400 * time.Millisecond},
	{Part: PartTitle, Effect: "slide-right", Offset: 400 * time.Millisecond, Duration: 500 * time.Millisecond},
	{Part: PartDate, Effect: "slide-left", Offset: 450 * time.Millisecond, Duration: 500 * time.Millisecond},
	{Part: PartDescription, Effect: "lift", Offset: 500 * time.Millisecond, Duration: 500 * time.Millisecond},
	{Part: PartButtons, Effect: "pop", Offset: 500 * time.Millisecond, Duration: 400 * time.Millisecond},
	{Part: PartTechnologies, Effect: "lift", Offset: 550 * time.Millisecond, Duration: 500 * time.Millisecond},
}

// Transition is a resolved delay and duration for one element.
type Transition struct {
	Effect   string        `json:"effect"`
	Delay    time.Duration `json:"delay"`
	Duration time.Duration `json:"duration"`
}

// DelayMS is the delay in whole milliseconds, for inline styles.
func (t Transition) DelayMS() int64 { return t.Delay.Milliseconds() }

// DurationMS is the duration in whole milliseconds, for inline styles.
func (t Transition) DurationMS() int64 { return t.Duration.Milliseconds() }

// Timing holds every transition of the card at one list position.
type Timing map[Part]Transition

// Of returns the transition for p. Unknown parts get a zero transition.
func (t Timing) Of(p Part) Transition {
	return t[p]
}

// Timeline returns the entrance timing of the card at list position index.
func Timeline(index int) Timing {
	base := stagger(index)
	return lo.Associate(cardTimeline, func(c Cue) (Part, Transition) {
		return c.Part, Transition{Effect: c.Effect, Delay: base + c.Offset, Duration: c.Duration}
	})
}

// ChipTimeline returns the timing of the technology chip at techIndex on
// the card at list position index.
func ChipTimeline(index, techIndex int) Transition {
	if techIndex < 0 {
		techIndex = 0
	}
	return Transition{
		Effect:   "pop",
		Delay:    stagger(index) + chipOffset + time.Duration(techIndex)*chipStagger,
		Duration: chipLength,
	}
}

func stagger(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * cardStagger
}

package portfolio

import "github.com/samber/lo"

// Chip is one technology tag with its own entrance timing.
type Chip struct {
	Name   string     `json:"name"`
	Motion Transition `json:"motion"`
}

// Card is everything the templates need to render one project.
type Card struct {
	Index   int           `json:"index"`
	Project ProjectRecord `json:"project"`
	Badge   Badge         `json:"badge"`
	Actions Actions       `json:"actions"`
	Chips   []Chip        `json:"chips"`
	Motion  Timing        `json:"-"`
}

// ShowImage reports whether the card renders the project image rather than the glyph.
func (c Card) ShowImage() bool { return c.Project.HasImage() }

// NewCard resolves rec into a card at list position index. Nothing is
// cached; calling it again re-derives everything from rec.
func NewCard(index int, rec ProjectRecord) Card {
	rec = rec.WithDefaults()
	return Card{
		Index:   index,
		Project: rec,
		Badge:   NewBadge(rec.Status),
		Actions: Resolve(rec),
		Chips: lo.Map(rec.Technologies, func(name string, i int) Chip {
			return Chip{Name: name, Motion: ChipTimeline(index, i)}
		}),
		Motion: Timeline(index),
	}
}

// Cards resolves records in order.
func Cards(records []ProjectRecord) []Card {
	return lo.Map(records, func(rec ProjectRecord, i int) Card {
		return NewCard(i, rec)
	})
}

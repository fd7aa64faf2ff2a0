package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineStaggersByIndex(t *testing.T) {
	first := Timeline(0)
	third := Timeline(2)

	assert.Equal(t, time.Duration(0), first.Of(PartCard).Delay)
	assert.Equal(t, 200*time.Millisecond, third.Of(PartCard).Delay)
	assert.Equal(t, 600*time.Millisecond, third.Of(PartCard).Duration)

	assert.Equal(t, 400*time.Millisecond, third.Of(PartImage).Delay)
	assert.Equal(t, 500*time.Millisecond, third.Of(PartContent).Delay)
	assert.Equal(t, 650*time.Millisecond, third.Of(PartDate).Delay)
	assert.Equal(t, 700*time.Millisecond, third.Of(PartButtons).Delay)
	assert.Equal(t, int64(750), third.Of(PartTechnologies).DelayMS())
	assert.Equal(t, int64(500), third.Of(PartTechnologies).DurationMS())
}

func TestTimelineClampsNegativeIndex(t *testing.T) {
	assert.Equal(t, Timeline(0), Timeline(-3))
	assert.Equal(t, Transition{}, Timeline(0).Of(Part("unknown")))
}

func TestChipTimeline(t *testing.T) {
	chip := ChipTimeline(1, 3)
	assert.Equal(t, 100*time.Millisecond+600*time.Millisecond+150*time.Millisecond, chip.Delay)
	assert.Equal(t, 300*time.Millisecond, chip.Duration)
}

func TestNewCard(t *testing.T) {
	card := NewCard(1, ProjectRecord{
		Technologies: []string{"Go", " ", "SQLite"},
		GithubURL:    "https://github.com/me/app",
		Status:       "planning",
	})

	assert.Equal(t, 1, card.Index)
	assert.Equal(t, DefaultTitle, card.Project.Title)
	assert.Equal(t, DefaultDescription, card.Project.Description)
	assert.Equal(t, DefaultDate, card.Project.Date)
	assert.Equal(t, Badge{Label: "planning", Tone: ToneInfo}, card.Badge)
	assert.False(t, card.ShowImage())

	require.Len(t, card.Chips, 2)
	assert.Equal(t, "Go", card.Chips[0].Name)
	assert.Equal(t, "SQLite", card.Chips[1].Name)
	assert.Equal(t, ChipTimeline(1, 1), card.Chips[1].Motion)

	require.Len(t, card.Actions.Repos, 1)
	assert.Equal(t, "Code", card.Actions.Repos[0].Label)
}

func TestNewCardEmptyRecord(t *testing.T) {
	card := NewCard(0, ProjectRecord{})

	assert.True(t, card.Actions.ComingSoon)
	assert.Equal(t, ToneSuccess, card.Badge.Tone)
	assert.Empty(t, card.Chips)
}

func TestCardsKeepsOrder(t *testing.T) {
	cards := Cards([]ProjectRecord{{Title: "a"}, {Title: "b"}, {Title: "c"}})

	require.Len(t, cards, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, cards[i].Project.Title)
		assert.Equal(t, i, cards[i].Index)
	}
}

func TestWithDefaultsDoesNotMutate(t *testing.T) {
	rec := ProjectRecord{Technologies: []string{" Go "}}
	_ = rec.WithDefaults()

	assert.Equal(t, "", rec.Title)
	assert.Equal(t, []string{" Go "}, rec.Technologies)
}

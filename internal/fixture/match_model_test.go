package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVenue(t *testing.T) {
	tests := []struct {
		name   string
		venue  string
		isHome bool
		want   string
	}{
		{"home fixture fills club ground", "", true, "The Oval"},
		{"away fixture fills opposition ground", "", false, "Memorial Park"},
		{"supplied venue wins at home", "Neutral Ground", true, "Neutral Ground"},
		{"supplied venue wins away", "Neutral Ground", false, "Neutral Ground"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVenue(tt.venue, tt.isHome, "The Oval", "Memorial Park")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusScheduled.Rank())
	assert.Equal(t, 1, StatusCompleted.Rank())
	assert.Equal(t, 2, StatusCancelled.Rank())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus(MatchStatus("postponed")))
	assert.False(t, ValidStatus(MatchStatus("")))
}

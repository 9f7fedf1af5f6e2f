package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/apperrors"
)

func TestSummarize(t *testing.T) {
	date := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}

	t.Run("counts are disjoint", func(t *testing.T) {
		responses := newFakeResponses()
		// Selected players are not double-counted in available/maybe.
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 1, Selected: true, Availability: availability(AvailabilityYes)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 2, Selected: true, Availability: availability(AvailabilityMaybe)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 3, Availability: availability(AvailabilityYes)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 4, Availability: availability(AvailabilityMaybe)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 5, Availability: availability(AvailabilityNo)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 6, Selected: true}))
		projector := NewProjector(&fakeRoster{}, fixtures, responses)

		summary, err := projector.Summarize(100)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.SelectedCount)
		assert.Equal(t, 1, summary.AvailableCount)
		assert.Equal(t, 1, summary.MaybeCount)
	})

	t.Run("unknown match", func(t *testing.T) {
		projector := NewProjector(&fakeRoster{}, fixtures, newFakeResponses())

		_, err := projector.Summarize(999)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestSummarizeMatches(t *testing.T) {
	// Ordering is status rank first (scheduled, completed, cancelled), then
	// date ascending within a rank.
	fixtures := &fakeFixtures{matches: []fixture.Match{
		newMatch(1, 10, fixture.StatusCancelled, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
		newMatch(2, 10, fixture.StatusScheduled, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
		newMatch(3, 10, fixture.StatusCompleted, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		newMatch(4, 10, fixture.StatusScheduled, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		newMatch(5, 99, fixture.StatusScheduled, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}}
	responses := newFakeResponses()
	require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 2, PlayerID: 1, Selected: true}))
	require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 2, PlayerID: 2, Availability: availability(AvailabilityYes)}))
	projector := NewProjector(&fakeRoster{}, fixtures, responses)

	entries, err := projector.SummarizeMatches(10)
	require.NoError(t, err)

	require.Len(t, entries, 4, "other clubs' fixtures are excluded")
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Match.ID)
	}
	assert.Equal(t, []uint{4, 2, 3, 1}, ids)

	assert.Equal(t, 1, entries[1].Summary.SelectedCount)
	assert.Equal(t, 1, entries[1].Summary.AvailableCount)
	assert.Zero(t, entries[0].Summary.SelectedCount)
}

func TestPlayerSchedule(t *testing.T) {
	fixtures := &fakeFixtures{matches: []fixture.Match{
		newMatch(1, 10, fixture.StatusScheduled, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		newMatch(2, 10, fixture.StatusScheduled, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
	}}
	roster := &fakeRoster{players: []player.Player{
		newPlayer(1, 10, "Alice", true),
		newPlayer(2, 10, "Bob", true),
	}}
	responses := newFakeResponses()
	require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 1, PlayerID: 1, Selected: true, Availability: availability(AvailabilityYes)}))
	require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 1, PlayerID: 2, Selected: true}))
	projector := NewProjector(roster, fixtures, responses)

	entries, err := projector.PlayerSchedule(1)
	require.NoError(t, err)
	require.Len(t, entries, 2, "every club fixture appears, responded or not")

	first := entries[0]
	assert.Equal(t, uint(1), first.Match.ID)
	assert.True(t, first.Responded)
	assert.True(t, first.IsSelected)
	require.NotNil(t, first.Availability)
	assert.Equal(t, AvailabilityYes, *first.Availability)
	assert.Equal(t, 2, first.SelectedCount, "count covers the whole match, not just the subject")

	second := entries[1]
	assert.Equal(t, uint(2), second.Match.ID)
	assert.False(t, second.Responded)
	assert.Nil(t, second.Availability)
	assert.Zero(t, second.SelectedCount)

	_, err = projector.PlayerSchedule(999)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

package selection

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/apperrors"
)

type pairKey struct {
	matchID  uint
	playerID uint
}

type fakeRoster struct {
	players []player.Player
}

func (f *fakeRoster) ActivePlayers(clubID uint) ([]player.Player, error) {
	var out []player.Player
	for _, p := range f.players {
		if p.ClubID == clubID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRoster) GetPlayerByID(id uint) (*player.Player, error) {
	for i := range f.players {
		if f.players[i].ID == id {
			p := f.players[i]
			return &p, nil
		}
	}
	return nil, nil
}

type fakeFixtures struct {
	matches []fixture.Match
}

func (f *fakeFixtures) GetMatchByID(id uint) (*fixture.Match, error) {
	for i := range f.matches {
		if f.matches[i].ID == id {
			m := f.matches[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeFixtures) MatchesOfClub(clubID uint) ([]fixture.Match, error) {
	var out []fixture.Match
	for _, m := range f.matches {
		if m.ClubID == clubID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Status.Rank() != out[j].Status.Rank() {
			return out[i].Status.Rank() < out[j].Status.Rank()
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

type fakeResponses struct {
	records map[pairKey]MatchPlayer
	nextID  uint
	saves   int
}

func newFakeResponses() *fakeResponses {
	return &fakeResponses{records: make(map[pairKey]MatchPlayer), nextID: 1}
}

func (f *fakeResponses) GetResponse(matchID, playerID uint) (*MatchPlayer, error) {
	if record, ok := f.records[pairKey{matchID, playerID}]; ok {
		copied := record
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeResponses) ResponsesOfMatch(matchID uint) ([]MatchPlayer, error) {
	var out []MatchPlayer
	for _, record := range f.records {
		if record.MatchID == matchID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeResponses) ResponsesOfPlayer(playerID uint) ([]MatchPlayer, error) {
	var out []MatchPlayer
	for _, record := range f.records {
		if record.PlayerID == playerID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeResponses) SaveResponse(mp *MatchPlayer) error {
	if mp.ID == 0 {
		mp.ID = f.nextID
		f.nextID++
	}
	f.records[pairKey{mp.MatchID, mp.PlayerID}] = *mp
	f.saves++
	return nil
}

func (f *fakeResponses) SelectedCounts(matchIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int)
	for _, record := range f.records {
		if record.Selected {
			counts[record.MatchID]++
		}
	}
	out := make(map[uint]int, len(matchIDs))
	for _, id := range matchIDs {
		out[id] = counts[id]
	}
	return out, nil
}

func (f *fakeResponses) WithTransaction(fn func(ResponseStore) error) error {
	return fn(f)
}

func newPlayer(id, clubID uint, name string, active bool) player.Player {
	return player.Player{
		Model:  gorm.Model{ID: id},
		ClubID: clubID,
		Name:   name,
		Role:   player.RolePlayer,
		Active: active,
	}
}

func newMatch(id, clubID uint, status fixture.MatchStatus, date time.Time) fixture.Match {
	return fixture.Match{
		Model:        gorm.Model{ID: id},
		ClubID:       clubID,
		OppositionID: 1,
		Date:         date,
		Status:       status,
	}
}

func newTestEngine(roster *fakeRoster, fixtures *fakeFixtures, responses *fakeResponses) *Engine {
	return NewEngine(roster, fixtures, responses)
}

func availability(v Availability) *Availability { return &v }

func entryNames(entries []PlayerEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestSetAvailability(t *testing.T) {
	date := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

	t.Run("creates the record lazily on first write", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{newPlayer(1, 10, "Alice", true)}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		engine := newTestEngine(roster, fixtures, responses)

		require.NoError(t, engine.SetAvailability(100, 1, AvailabilityYes))

		record, err := responses.GetResponse(100, 1)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, AvailabilityYes, *record.Availability)
		assert.False(t, record.Selected)
	})

	t.Run("overwrites availability without touching selection", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{newPlayer(1, 10, "Alice", true)}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 1, Selected: true}))
		engine := newTestEngine(roster, fixtures, responses)

		require.NoError(t, engine.SetAvailability(100, 1, AvailabilityYes))
		require.NoError(t, engine.SetAvailability(100, 1, AvailabilityNo))

		record, err := responses.GetResponse(100, 1)
		require.NoError(t, err)
		assert.Equal(t, AvailabilityNo, *record.Availability)
		assert.True(t, record.Selected, "selection axis must survive availability writes")
	})

	t.Run("rejects bad values and identities", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "Alice", true),
			newPlayer(2, 20, "Other Club", true),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		engine := newTestEngine(roster, fixtures, newFakeResponses())

		tests := []struct {
			name     string
			matchID  uint
			playerID uint
			value    Availability
			wantCode string
		}{
			{"invalid availability value", 100, 1, Availability("perhaps"), "INVALID_INPUT"},
			{"unknown match", 999, 1, AvailabilityYes, "NOT_FOUND"},
			{"unknown player", 100, 999, AvailabilityYes, "NOT_FOUND"},
			{"player from another club", 100, 2, AvailabilityYes, "INVALID_INPUT"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := engine.SetAvailability(tt.matchID, tt.playerID, tt.value)
				require.Error(t, err)
				appErr, ok := apperrors.As(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, appErr.Code)
			})
		}
	})
}

func TestBulkTransition(t *testing.T) {
	date := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

	setup := func() (*Engine, *fakeResponses) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "Alice", true),
			newPlayer(2, 10, "Bob", true),
			newPlayer(3, 10, "Carol", false),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		return newTestEngine(roster, fixtures, responses), responses
	}

	t.Run("add_to_team creates record with selection only", func(t *testing.T) {
		engine, responses := setup()

		affected, err := engine.BulkTransition(100, []uint{1}, ActionAddToTeam)
		require.NoError(t, err)
		assert.Equal(t, 1, affected)

		record, err := responses.GetResponse(100, 1)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.True(t, record.Selected)
		assert.Nil(t, record.Availability, "adding to the team must not manufacture a response")
	})

	t.Run("availability actions leave selection alone", func(t *testing.T) {
		engine, responses := setup()
		_, err := engine.BulkTransition(100, []uint{1}, ActionAddToTeam)
		require.NoError(t, err)

		_, err = engine.BulkTransition(100, []uint{1, 2}, ActionSetMaybe)
		require.NoError(t, err)

		one, _ := responses.GetResponse(100, 1)
		two, _ := responses.GetResponse(100, 2)
		assert.True(t, one.Selected)
		assert.Equal(t, AvailabilityMaybe, *one.Availability)
		assert.False(t, two.Selected)
		assert.Equal(t, AvailabilityMaybe, *two.Availability)
	})

	t.Run("is idempotent", func(t *testing.T) {
		engine, responses := setup()

		_, err := engine.BulkTransition(100, []uint{1, 2}, ActionSetAvailable)
		require.NoError(t, err)
		first := make(map[pairKey]MatchPlayer, len(responses.records))
		for k, v := range responses.records {
			first[k] = v
		}

		affected, err := engine.BulkTransition(100, []uint{1, 2}, ActionSetAvailable)
		require.NoError(t, err)
		assert.Equal(t, 2, affected)
		assert.Equal(t, first, responses.records)
	})

	t.Run("rejects the whole batch before any write", func(t *testing.T) {
		engine, responses := setup()

		// Player 3 is inactive, player 99 unknown; nothing may land.
		for _, bad := range [][]uint{{1, 3}, {1, 99}} {
			_, err := engine.BulkTransition(100, bad, ActionSetAvailable)
			require.Error(t, err)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, "INVALID_INPUT", appErr.Code)
			assert.Zero(t, responses.saves, "no record may be written when the batch is invalid")
		}
	})

	t.Run("rejects empty id list and unknown action", func(t *testing.T) {
		engine, _ := setup()

		_, err := engine.BulkTransition(100, nil, ActionSetAvailable)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_INPUT", appErr.Code)

		_, err = engine.BulkTransition(100, []uint{1}, TransitionAction("promote"))
		appErr, ok = apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_INPUT", appErr.Code)
	})

	t.Run("counts duplicate ids once", func(t *testing.T) {
		engine, _ := setup()

		affected, err := engine.BulkTransition(100, []uint{1, 1, 2}, ActionAddToTeam)
		require.NoError(t, err)
		assert.Equal(t, 2, affected)
	})
}

func TestCategorize(t *testing.T) {
	date := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

	t.Run("players without records land in awaiting", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "Alice", true),
			newPlayer(2, 10, "Bob", true),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		engine := newTestEngine(roster, fixtures, newFakeResponses())

		sheet, err := engine.Categorize(100, TeamSelectionMode)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, entryNames(sheet.Awaiting))
		assert.Empty(t, sheet.Selected)
		assert.Empty(t, sheet.Available)

		missing, err := engine.NotResponded(100)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, entryNames(missing))
	})

	t.Run("selection trumps availability in team-selection mode", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "Alice", true),
			newPlayer(2, 10, "Bob", true),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		require.NoError(t, responses.SaveResponse(&MatchPlayer{
			MatchID: 100, PlayerID: 1, Selected: true, Availability: availability(AvailabilityNo),
		}))
		engine := newTestEngine(roster, fixtures, responses)

		sheet, err := engine.Categorize(100, TeamSelectionMode)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice"}, entryNames(sheet.Selected))
		assert.Empty(t, sheet.Unavailable, "a selected player never appears in an availability bucket")
		assert.Equal(t, []string{"Alice"}, entryNames(sheet.UnavailableSelected))
	})

	t.Run("bulk mode keeps selected players in their availability bucket", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{newPlayer(1, 10, "Alice", true)}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		require.NoError(t, responses.SaveResponse(&MatchPlayer{
			MatchID: 100, PlayerID: 1, Selected: true, Availability: availability(AvailabilityMaybe),
		}))
		engine := newTestEngine(roster, fixtures, responses)

		sheet, err := engine.Categorize(100, BulkAvailabilityMode)
		require.NoError(t, err)
		assert.Empty(t, sheet.Selected)
		require.Len(t, sheet.Maybe, 1)
		assert.True(t, sheet.Maybe[0].IsSelected)
		assert.Equal(t, []string{"Alice"}, entryNames(sheet.UnavailableSelected))
	})

	t.Run("selected bucket sorts by availability precedence then name", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "zoe", true),
			newPlayer(2, 10, "Adam", true),
			newPlayer(3, 10, "Mia", true),
			newPlayer(4, 10, "Ben", true),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 1, Selected: true, Availability: availability(AvailabilityYes)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 2, Selected: true, Availability: availability(AvailabilityNo)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 3, Selected: true})) // absent response
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 4, Selected: true, Availability: availability(AvailabilityMaybe)}))
		engine := newTestEngine(roster, fixtures, responses)

		sheet, err := engine.Categorize(100, TeamSelectionMode)
		require.NoError(t, err)
		// yes < maybe < absent < no
		assert.Equal(t, []string{"zoe", "Ben", "Mia", "Adam"}, entryNames(sheet.Selected))
	})

	t.Run("total available counts yes responses across both buckets", func(t *testing.T) {
		roster := &fakeRoster{players: []player.Player{
			newPlayer(1, 10, "A", true),
			newPlayer(2, 10, "B", true),
			newPlayer(3, 10, "C", true),
			newPlayer(4, 10, "D", true),
			newPlayer(5, 10, "E", true),
		}}
		fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
		responses := newFakeResponses()
		// 3 available, 2 selected (one yes, one maybe).
		for _, id := range []uint{1, 2, 3} {
			require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: id, Availability: availability(AvailabilityYes)}))
		}
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 4, Selected: true, Availability: availability(AvailabilityYes)}))
		require.NoError(t, responses.SaveResponse(&MatchPlayer{MatchID: 100, PlayerID: 5, Selected: true, Availability: availability(AvailabilityMaybe)}))
		engine := newTestEngine(roster, fixtures, responses)

		sheet, err := engine.Categorize(100, TeamSelectionMode)
		require.NoError(t, err)
		assert.Len(t, sheet.Available, 3)
		assert.Len(t, sheet.Selected, 2)
		assert.Equal(t, 4, sheet.TotalAvailable)
	})
}

func TestEngineEndToEnd(t *testing.T) {
	date := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	roster := &fakeRoster{players: []player.Player{
		newPlayer(1, 10, "P1", true),
		newPlayer(2, 10, "P2", true),
		newPlayer(3, 10, "P3", false),
	}}
	fixtures := &fakeFixtures{matches: []fixture.Match{newMatch(100, 10, fixture.StatusScheduled, date)}}
	responses := newFakeResponses()
	engine := newTestEngine(roster, fixtures, responses)
	projector := NewProjector(roster, fixtures, responses)

	require.NoError(t, engine.SetAvailability(100, 1, AvailabilityYes))
	_, err := engine.BulkTransition(100, []uint{1}, ActionAddToTeam)
	require.NoError(t, err)
	require.NoError(t, engine.SetAvailability(100, 2, AvailabilityNo))

	sheet, err := engine.Categorize(100, TeamSelectionMode)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1"}, entryNames(sheet.Selected))
	assert.Equal(t, []string{"P2"}, entryNames(sheet.Unavailable))
	assert.Empty(t, sheet.Awaiting, "inactive players are excluded entirely")
	assert.Empty(t, sheet.UnavailableSelected, "P1 said yes, so no warning")

	summary, err := projector.Summarize(100)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SelectedCount)
	assert.Equal(t, 0, summary.AvailableCount)
	assert.Equal(t, 0, summary.MaybeCount)
}

package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/apperrors"
)

// RosterStore is the slice of the roster repository the engine reads.
type RosterStore interface {
	ActivePlayers(clubID uint) ([]player.Player, error)
	GetPlayerByID(id uint) (*player.Player, error)
}

// FixtureStore is the slice of the match repository the engine reads.
type FixtureStore interface {
	GetMatchByID(id uint) (*fixture.Match, error)
	MatchesOfClub(clubID uint) ([]fixture.Match, error)
}

// Engine owns every write to MatchPlayer records and the categorized
// read-side views. It performs no authorization: callers check permissions at
// the boundary before invoking it.
type Engine struct {
	roster    RosterStore
	fixtures  FixtureStore
	responses ResponseStore
}

func NewEngine(roster RosterStore, fixtures FixtureStore, responses ResponseStore) *Engine {
	return &Engine{roster: roster, fixtures: fixtures, responses: responses}
}

func (e *Engine) getMatch(matchID uint) (*fixture.Match, error) {
	m, err := e.fixtures.GetMatchByID(matchID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch match", err)
	}
	if m == nil {
		return nil, apperrors.NotFound("match", matchID)
	}
	return m, nil
}

// SetAvailability records one player's response for one match. The record is
// created on first write; afterwards only the availability axis is
// overwritten, never the selection.
func (e *Engine) SetAvailability(matchID, playerID uint, value Availability) error {
	if !ValidAvailability(value) {
		return apperrors.InvalidInput(fmt.Sprintf("invalid availability %q", value))
	}

	m, err := e.getMatch(matchID)
	if err != nil {
		return err
	}

	p, err := e.roster.GetPlayerByID(playerID)
	if err != nil {
		return apperrors.Internal("failed to fetch player", err)
	}
	if p == nil {
		return apperrors.NotFound("player", playerID)
	}
	if p.ClubID != m.ClubID {
		return apperrors.InvalidInput(fmt.Sprintf("player %d does not belong to the match's club", playerID))
	}

	return e.responses.WithTransaction(func(store ResponseStore) error {
		record, err := store.GetResponse(matchID, playerID)
		if err != nil {
			return apperrors.Internal("failed to fetch response", err)
		}
		if record == nil {
			record = &MatchPlayer{MatchID: matchID, PlayerID: playerID}
		}
		record.Availability = &value
		if err := store.SaveResponse(record); err != nil {
			return apperrors.Internal("failed to save response", err)
		}
		return nil
	})
}

// BulkTransition applies one action to every player id, creating records
// lazily. The whole batch is validated against the match's active roster
// before anything is written, then applied in a single transaction so a bulk
// call cannot half-land. Returns the number of players affected.
func (e *Engine) BulkTransition(matchID uint, playerIDs []uint, action TransitionAction) (int, error) {
	if len(playerIDs) == 0 {
		return 0, apperrors.InvalidInput("no players given")
	}
	if !ValidAction(action) {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid action %q", action))
	}

	m, err := e.getMatch(matchID)
	if err != nil {
		return 0, err
	}

	active, err := e.roster.ActivePlayers(m.ClubID)
	if err != nil {
		return 0, apperrors.Internal("failed to fetch roster", err)
	}
	roster := make(map[uint]struct{}, len(active))
	for _, p := range active {
		roster[p.ID] = struct{}{}
	}

	seen := make(map[uint]struct{}, len(playerIDs))
	ids := make([]uint, 0, len(playerIDs))
	var invalid []string
	for _, id := range playerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := roster[id]; !ok {
			invalid = append(invalid, fmt.Sprintf("%d", id))
			continue
		}
		ids = append(ids, id)
	}
	if len(invalid) > 0 {
		return 0, apperrors.InvalidInput(
			"players not on the match's active roster: " + strings.Join(invalid, ", "))
	}

	err = e.responses.WithTransaction(func(store ResponseStore) error {
		for _, id := range ids {
			record, err := store.GetResponse(matchID, id)
			if err != nil {
				return apperrors.Internal("failed to fetch response", err)
			}
			if record == nil {
				record = &MatchPlayer{MatchID: matchID, PlayerID: id}
			}
			applyAction(record, action)
			if err := store.SaveResponse(record); err != nil {
				return apperrors.Internal("failed to save response", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// applyAction mutates exactly one axis of the record. Adding a player to the
// team does not manufacture an availability response.
func applyAction(record *MatchPlayer, action TransitionAction) {
	switch action {
	case ActionSetAvailable:
		v := AvailabilityYes
		record.Availability = &v
	case ActionSetMaybe:
		v := AvailabilityMaybe
		record.Availability = &v
	case ActionSetUnavailable:
		v := AvailabilityNo
		record.Availability = &v
	case ActionAddToTeam:
		record.Selected = true
	case ActionRemoveFromTeam:
		record.Selected = false
	}
}

// Categorize classifies every active player of the match's club into exactly
// one bucket. Pure read side: no records are created or modified.
func (e *Engine) Categorize(matchID uint, mode ProjectionMode) (*TeamSheet, error) {
	m, err := e.getMatch(matchID)
	if err != nil {
		return nil, err
	}

	entries, err := e.rosterEntries(m)
	if err != nil {
		return nil, err
	}

	sheet := &TeamSheet{
		MatchID:             matchID,
		Mode:                mode,
		Available:           []PlayerEntry{},
		Maybe:               []PlayerEntry{},
		Awaiting:            []PlayerEntry{},
		Unavailable:         []PlayerEntry{},
		UnavailableSelected: []PlayerEntry{},
	}

	for _, entry := range entries {
		if mode == TeamSelectionMode && entry.IsSelected {
			sheet.Selected = append(sheet.Selected, entry)
		} else {
			switch {
			case entry.Availability == nil:
				sheet.Awaiting = append(sheet.Awaiting, entry)
			case *entry.Availability == AvailabilityYes:
				sheet.Available = append(sheet.Available, entry)
			case *entry.Availability == AvailabilityMaybe:
				sheet.Maybe = append(sheet.Maybe, entry)
			default:
				sheet.Unavailable = append(sheet.Unavailable, entry)
			}
		}

		if entry.IsSelected && (entry.Availability == nil || *entry.Availability != AvailabilityYes) {
			sheet.UnavailableSelected = append(sheet.UnavailableSelected, entry)
		}
		if entry.Availability != nil && *entry.Availability == AvailabilityYes {
			// Equal to |Available| + |selected with yes| whichever mode splits them.
			sheet.TotalAvailable++
		}
	}

	sortByName(sheet.Available)
	sortByName(sheet.Maybe)
	sortByName(sheet.Awaiting)
	sortByName(sheet.Unavailable)
	sortByName(sheet.UnavailableSelected)
	sortSelected(sheet.Selected)

	return sheet, nil
}

// NotResponded lists active players with no MatchPlayer record at all for the
// match, regardless of which axis a record would have set.
func (e *Engine) NotResponded(matchID uint) ([]PlayerEntry, error) {
	m, err := e.getMatch(matchID)
	if err != nil {
		return nil, err
	}

	entries, err := e.rosterEntries(m)
	if err != nil {
		return nil, err
	}

	missing := []PlayerEntry{}
	for _, entry := range entries {
		if !entry.Responded {
			missing = append(missing, entry)
		}
	}
	sortByName(missing)
	return missing, nil
}

// rosterEntries joins the active roster with whatever MatchPlayer records
// exist for the match. Players without a record get a nil availability and
// Responded=false.
func (e *Engine) rosterEntries(m *fixture.Match) ([]PlayerEntry, error) {
	active, err := e.roster.ActivePlayers(m.ClubID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch roster", err)
	}

	records, err := e.responses.ResponsesOfMatch(m.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch responses", err)
	}
	byPlayer := make(map[uint]MatchPlayer, len(records))
	for _, record := range records {
		byPlayer[record.PlayerID] = record
	}

	entries := make([]PlayerEntry, 0, len(active))
	for _, p := range active {
		entry := PlayerEntry{PlayerID: p.ID, Name: p.Name}
		if record, ok := byPlayer[p.ID]; ok {
			entry.Availability = record.Availability
			entry.IsSelected = record.Selected
			entry.Responded = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func sortByName(entries []PlayerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// sortSelected orders the selected bucket by availability precedence
// (yes < maybe < absent < no), then name.
func sortSelected(entries []PlayerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := availabilityRank(entries[i].Availability), availabilityRank(entries[j].Availability)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

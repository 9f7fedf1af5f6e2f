package selection

import (
	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/pkg/apperrors"
)

// MatchListEntry pairs a fixture with its dashboard counts.
type MatchListEntry struct {
	Match   fixture.MatchResponse `json:"match"`
	Summary MatchSummary          `json:"summary"`
}

// ScheduleEntry is one line of a player's cross-match view: the fixture, the
// player's own response, and how many players are already selected for it.
type ScheduleEntry struct {
	Match         fixture.MatchResponse `json:"match"`
	Availability  *Availability         `json:"availability,omitempty"`
	IsSelected    bool                  `json:"is_selected"`
	Responded     bool                  `json:"responded"`
	SelectedCount int                   `json:"selected_count"`
}

// Projector derives the aggregate views consumed by presentation. Like the
// engine it is a pure read side over the stores.
type Projector struct {
	roster    RosterStore
	fixtures  FixtureStore
	responses ResponseStore
}

func NewProjector(roster RosterStore, fixtures FixtureStore, responses ResponseStore) *Projector {
	return &Projector{roster: roster, fixtures: fixtures, responses: responses}
}

// Summarize computes the disjoint counts for one match: selected trumps
// nothing here, it is simply a separate fact, and selected players are
// excluded from the available/maybe tallies so each record is displayed once.
func (p *Projector) Summarize(matchID uint) (*MatchSummary, error) {
	m, err := p.fixtures.GetMatchByID(matchID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch match", err)
	}
	if m == nil {
		return nil, apperrors.NotFound("match", matchID)
	}

	records, err := p.responses.ResponsesOfMatch(matchID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch responses", err)
	}

	summary := &MatchSummary{MatchID: matchID}
	for _, record := range records {
		summarizeRecord(summary, record)
	}
	return summary, nil
}

// SummarizeMatches builds the match-list view for a club: every fixture in
// status-rank-then-date order with its summary counts.
func (p *Projector) SummarizeMatches(clubID uint) ([]MatchListEntry, error) {
	matches, err := p.fixtures.MatchesOfClub(clubID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch matches", err)
	}

	entries := make([]MatchListEntry, 0, len(matches))
	for i := range matches {
		records, err := p.responses.ResponsesOfMatch(matches[i].ID)
		if err != nil {
			return nil, apperrors.Internal("failed to fetch responses", err)
		}
		summary := MatchSummary{MatchID: matches[i].ID}
		for _, record := range records {
			summarizeRecord(&summary, record)
		}
		entries = append(entries, MatchListEntry{
			Match:   fixture.FilterMatchRecord(&matches[i]),
			Summary: summary,
		})
	}
	return entries, nil
}

func summarizeRecord(summary *MatchSummary, record MatchPlayer) {
	if record.Selected {
		summary.SelectedCount++
		return
	}
	if record.Availability == nil {
		return
	}
	switch *record.Availability {
	case AvailabilityYes:
		summary.AvailableCount++
	case AvailabilityMaybe:
		summary.MaybeCount++
	}
}

// PlayerSchedule is the per-player cross-match view: every fixture of the
// player's club in status-rank-then-date order, with the player's own
// response and the match's selected-player count.
func (p *Projector) PlayerSchedule(playerID uint) ([]ScheduleEntry, error) {
	subject, err := p.roster.GetPlayerByID(playerID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch player", err)
	}
	if subject == nil {
		return nil, apperrors.NotFound("player", playerID)
	}

	matches, err := p.fixtures.MatchesOfClub(subject.ClubID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch matches", err)
	}

	records, err := p.responses.ResponsesOfPlayer(playerID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch responses", err)
	}
	byMatch := make(map[uint]MatchPlayer, len(records))
	for _, record := range records {
		byMatch[record.MatchID] = record
	}

	matchIDs := make([]uint, 0, len(matches))
	for i := range matches {
		matchIDs = append(matchIDs, matches[i].ID)
	}
	selectedCounts, err := p.responses.SelectedCounts(matchIDs)
	if err != nil {
		return nil, apperrors.Internal("failed to count selections", err)
	}

	entries := make([]ScheduleEntry, 0, len(matches))
	for i := range matches {
		entry := ScheduleEntry{
			Match:         fixture.FilterMatchRecord(&matches[i]),
			SelectedCount: selectedCounts[matches[i].ID],
		}
		if record, ok := byMatch[matches[i].ID]; ok {
			entry.Availability = record.Availability
			entry.IsSelected = record.Selected
			entry.Responded = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

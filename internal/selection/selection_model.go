package selection

import (
	"gorm.io/gorm"
)

// Availability is a player's self-reported response for one match. The
// absence of a value (nil pointer, or no MatchPlayer row at all) means the
// player has not responded yet, which every view must keep distinguishable
// from an explicit answer.
type Availability string

const (
	AvailabilityYes   Availability = "yes"
	AvailabilityMaybe Availability = "maybe"
	AvailabilityNo    Availability = "no"
)

// ValidAvailability reports whether a is an explicit response value.
func ValidAvailability(a Availability) bool {
	switch a {
	case AvailabilityYes, AvailabilityMaybe, AvailabilityNo:
		return true
	}
	return false
}

// availabilityRank orders responses for the selected-bucket sort:
// yes < maybe < absent < no.
func availabilityRank(a *Availability) int {
	if a == nil {
		return 2
	}
	switch *a {
	case AvailabilityYes:
		return 0
	case AvailabilityMaybe:
		return 1
	default:
		return 3
	}
}

// TransitionAction is the closed set of bulk state transitions.
type TransitionAction string

const (
	ActionSetAvailable   TransitionAction = "set_available"
	ActionSetMaybe       TransitionAction = "set_maybe"
	ActionSetUnavailable TransitionAction = "set_unavailable"
	ActionAddToTeam      TransitionAction = "add_to_team"
	ActionRemoveFromTeam TransitionAction = "remove_from_team"
)

// ValidAction reports whether a is a known transition action.
func ValidAction(a TransitionAction) bool {
	switch a {
	case ActionSetAvailable, ActionSetMaybe, ActionSetUnavailable, ActionAddToTeam, ActionRemoveFromTeam:
		return true
	}
	return false
}

// MatchPlayer is the per-(match, player) response record. At most one row
// exists per pair, created lazily on the first write; a whole roster is never
// pre-populated. Availability and Selected are independent axes: a selected
// player may be unavailable, and views surface that as a warning rather than
// correcting it.
type MatchPlayer struct {
	gorm.Model
	MatchID      uint          `gorm:"uniqueIndex:idx_match_player;not null" json:"match_id"`
	PlayerID     uint          `gorm:"uniqueIndex:idx_match_player;not null" json:"player_id"`
	Availability *Availability `gorm:"type:varchar(10)" json:"availability,omitempty"`
	Selected     bool          `gorm:"not null;default:false" json:"selected"`
}

// ProjectionMode selects which of the two bucketing rules Categorize applies.
// The team-selection view hoists selected players into their own bucket; the
// bulk-availability view keeps them in their availability bucket and reports
// selection as an attribute. The divergence is deliberate.
type ProjectionMode int

const (
	TeamSelectionMode ProjectionMode = iota
	BulkAvailabilityMode
)

// PlayerEntry is the read-only per-player line of a projection. Derived
// state lives here, never on the persisted Player record.
type PlayerEntry struct {
	PlayerID     uint          `json:"player_id"`
	Name         string        `json:"name"`
	Availability *Availability `json:"availability,omitempty"`
	IsSelected   bool          `json:"is_selected"`
	Responded    bool          `json:"responded"`
}

// TeamSheet is the categorized view of one match's roster. Every active
// player of the club lands in exactly one bucket. Selected is populated in
// team-selection mode only.
type TeamSheet struct {
	MatchID             uint           `json:"match_id"`
	Mode                ProjectionMode `json:"-"`
	Selected            []PlayerEntry  `json:"selected,omitempty"`
	Available           []PlayerEntry  `json:"available"`
	Maybe               []PlayerEntry  `json:"maybe"`
	Awaiting            []PlayerEntry  `json:"awaiting"`
	Unavailable         []PlayerEntry  `json:"unavailable"`
	UnavailableSelected []PlayerEntry  `json:"unavailable_selected"`
	TotalAvailable      int            `json:"total_available"`
}

// MatchSummary carries the disjoint dashboard counts for one match: selected
// players are subtracted out of the available/maybe tallies so a player is
// never displayed twice.
type MatchSummary struct {
	MatchID        uint `json:"match_id"`
	SelectedCount  int  `json:"selected_count"`
	AvailableCount int  `json:"available_count"`
	MaybeCount     int  `json:"maybe_count"`
}

type SetAvailabilityRequest struct {
	Availability Availability `json:"availability" binding:"required,oneof=yes maybe no"`
	// PlayerID targets another club member; admins and captains only.
	PlayerID uint `json:"player_id"`
}

type BulkTransitionRequest struct {
	PlayerIDs []uint           `json:"player_ids" binding:"required"`
	Action    TransitionAction `json:"action" binding:"required,oneof=set_available set_maybe set_unavailable add_to_team remove_from_team"`
}

package fixture

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

// ValidStatus reports whether s is one of the three match statuses.
func ValidStatus(s MatchStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Rank orders statuses for listing: upcoming fixtures first, then played,
// then cancelled.
func (s MatchStatus) Rank() int {
	switch s {
	case StatusCompleted:
		return 1
	case StatusCancelled:
		return 2
	default:
		return 0
	}
}

// Match is a fixture against one opposition. The opposition must belong to
// the same club as the match.
type Match struct {
	gorm.Model
	ClubID       uint            `gorm:"index;not null" json:"club_id"`
	OppositionID uint            `gorm:"index;not null" json:"opposition_id"`
	Date         time.Time       `gorm:"index;not null" json:"date"`
	StartTime    string          `json:"start_time"`
	Venue        string          `json:"venue"`
	IsHome       bool            `gorm:"not null;default:true" json:"is_home"`
	MatchFee     decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0" json:"match_fee"`
	Status       MatchStatus     `gorm:"index;not null;default:'scheduled'" json:"status"`
}

// ResolveVenue applies the creation-time venue fill: an empty venue becomes
// the club's home ground for home fixtures, the opposition's otherwise. A
// supplied venue is never overwritten. Applied once at creation only.
func ResolveVenue(venue string, isHome bool, clubGround, oppositionGround string) string {
	if venue != "" {
		return venue
	}
	if isHome {
		return clubGround
	}
	return oppositionGround
}

type CreateMatchRequest struct {
	OppositionID uint             `json:"opposition_id" binding:"required"`
	Date         time.Time        `json:"date" binding:"required"`
	StartTime    string           `json:"start_time" binding:"omitempty,max=20"`
	Venue        string           `json:"venue" binding:"omitempty,max=200"`
	IsHome       *bool            `json:"is_home"`
	MatchFee     *decimal.Decimal `json:"match_fee"`
}

type UpdateMatchRequest struct {
	OppositionID *uint            `json:"opposition_id"`
	Date         *time.Time       `json:"date"`
	StartTime    *string          `json:"start_time" binding:"omitempty,max=20"`
	Venue        *string          `json:"venue" binding:"omitempty,max=200"`
	IsHome       *bool            `json:"is_home"`
	MatchFee     *decimal.Decimal `json:"match_fee"`
	Status       *MatchStatus     `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

type MatchResponse struct {
	ID           uint            `json:"id"`
	ClubID       uint            `json:"club_id"`
	OppositionID uint            `json:"opposition_id"`
	Date         time.Time       `json:"date"`
	StartTime    string          `json:"start_time"`
	Venue        string          `json:"venue"`
	IsHome       bool            `json:"is_home"`
	MatchFee     decimal.Decimal `json:"match_fee"`
	Status       MatchStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FilterMatchRecord(m *Match) MatchResponse {
	return MatchResponse{
		ID:           m.ID,
		ClubID:       m.ClubID,
		OppositionID: m.OppositionID,
		Date:         m.Date,
		StartTime:    m.StartTime,
		Venue:        m.Venue,
		IsHome:       m.IsHome,
		MatchFee:     m.MatchFee,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

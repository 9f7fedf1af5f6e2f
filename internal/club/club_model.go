package club

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Club is the tenant boundary: players, oppositions and matches all hang off
// exactly one club.
type Club struct {
	gorm.Model
	Name            string          `gorm:"not null" json:"name"`
	HomeGround      string          `json:"home_ground"`
	DefaultMatchFee decimal.Decimal `gorm:"type:decimal(7,2);not null;default:10.00" json:"default_match_fee"`
	CreatedByID     uint            `gorm:"index;not null" json:"created_by_id"`
}

type CreateClubRequest struct {
	Name            string           `json:"name" binding:"required,min=1,max=200"`
	HomeGround      string           `json:"home_ground" binding:"omitempty,max=100"`
	DefaultMatchFee *decimal.Decimal `json:"default_match_fee"`
}

type UpdateClubRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	HomeGround      *string          `json:"home_ground" binding:"omitempty,max=100"`
	DefaultMatchFee *decimal.Decimal `json:"default_match_fee"`
}

type ClubResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	HomeGround      string          `json:"home_ground"`
	DefaultMatchFee decimal.Decimal `json:"default_match_fee"`
	CreatedByID     uint            `json:"created_by_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FilterClubRecord(c *Club) ClubResponse {
	return ClubResponse{
		ID:              c.ID,
		Name:            c.Name,
		HomeGround:      c.HomeGround,
		DefaultMatchFee: c.DefaultMatchFee,
		CreatedByID:     c.CreatedByID,
		CreatedAt:       c.CreatedAt,
	}
}

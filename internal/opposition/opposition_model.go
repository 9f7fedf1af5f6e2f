package opposition

import (
	"time"

	"gorm.io/gorm"
)

// Opposition is a team the club plays against. It exists only as a match
// counterparty and as the away-venue fallback.
type Opposition struct {
	gorm.Model
	ClubID     uint   `gorm:"index;not null" json:"club_id"`
	Name       string `gorm:"not null" json:"name"`
	HomeGround string `json:"home_ground"`
}

type CreateOppositionRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	HomeGround string `json:"home_ground" binding:"omitempty,max=100"`
}

type UpdateOppositionRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	HomeGround *string `json:"home_ground" binding:"omitempty,max=100"`
}

type OppositionResponse struct {
	ID         uint      `json:"id"`
	ClubID     uint      `json:"club_id"`
	Name       string    `json:"name"`
	HomeGround string    `json:"home_ground"`
	CreatedAt  time.Time `json:"created_at"`
}

func FilterOppositionRecord(o *Opposition) OppositionResponse {
	return OppositionResponse{
		ID:         o.ID,
		ClubID:     o.ClubID,
		Name:       o.Name,
		HomeGround: o.HomeGround,
		CreatedAt:  o.CreatedAt,
	}
}

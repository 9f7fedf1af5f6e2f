package player

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
	RolePlayer  Role = "player"
)

// ValidRole reports whether r is one of the three club roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleCaptain, RolePlayer:
		return true
	}
	return false
}

// Player is a club roster entry. The owning club never changes after
// creation. AccountID is nil until the player is linked to an authenticating
// account by email match; email uniqueness is deliberately not enforced, so
// several unlinked players may share an email before linkage.
type Player struct {
	gorm.Model
	ClubID    uint   `gorm:"index;not null" json:"club_id"`
	AccountID *uint  `gorm:"index" json:"account_id,omitempty"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"index" json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `gorm:"not null;default:'player'" json:"role"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
}

type CreatePlayerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
	Role  Role   `json:"role" binding:"omitempty,oneof=admin captain player"`
}

type UpdatePlayerRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,max=30"`
	Role   *Role   `json:"role" binding:"omitempty,oneof=admin captain player"`
	Active *bool   `json:"active"`
	// Explicit relink only; linkage is otherwise never overwritten.
	AccountID *uint `json:"account_id"`
}

type PlayerResponse struct {
	ID        uint      `json:"id"`
	ClubID    uint      `json:"club_id"`
	AccountID *uint     `json:"account_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterPlayerRecord(p *Player) PlayerResponse {
	return PlayerResponse{
		ID:        p.ID,
		ClubID:    p.ClubID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      p.Role,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

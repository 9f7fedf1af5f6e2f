package club

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/internal/player"
)

// ClubRepository defines the interface for club data operations.
type ClubRepository interface {
	// CreateClub stores the club and seeds its roster with the creator as the
	// first admin player, in one transaction.
	CreateClub(c *Club, creatorName, creatorEmail string) error
	GetClubByID(id uint) (*Club, error)
	GetClubsForAccount(accountID uint, page, limit int) ([]Club, int64, error)
	UpdateClub(c *Club) error
	// DeleteClub removes the club and everything belonging to it: match
	// players, matches, oppositions, players.
	DeleteClub(id uint) error

	IsAdminOrCaptain(clubID, accountID uint) (bool, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(c *Club, creatorName, creatorEmail string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		accountID := c.CreatedByID
		founder := player.Player{
			ClubID:    c.ID,
			AccountID: &accountID,
			Name:      creatorName,
			Email:     creatorEmail,
			Role:      player.RoleAdmin,
			Active:    true,
		}
		return tx.Create(&founder).Error
	})
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var c Club
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) GetClubsForAccount(accountID uint, page, limit int) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{}).
		Joins("JOIN players ON players.club_id = clubs.id").
		Where("players.account_id = ? AND players.deleted_at IS NULL", accountID)
	query.Count(&total)
	offset := (page - 1) * limit
	err := query.Order("clubs.name ASC").Offset(offset).Limit(limit).Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) UpdateClub(c *Club) error {
	return r.db.Save(c).Error
}

func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM match_players WHERE match_id IN (SELECT id FROM matches WHERE club_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM matches WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM oppositions WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("club_id = ?", id).Delete(&player.Player{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Club{}, id).Error
	})
}

func (r *clubRepository) IsAdminOrCaptain(clubID, accountID uint) (bool, error) {
	return player.NewPlayerRepository(r.db).IsAdminOrCaptain(clubID, accountID)
}

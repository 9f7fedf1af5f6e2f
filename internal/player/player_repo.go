package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for roster data operations.
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	UpdatePlayer(p *Player) error
	DeletePlayer(id uint) error

	PlayersOfClub(clubID uint, page, limit int) ([]Player, int64, error)
	ActivePlayers(clubID uint) ([]Player, error)

	PlayerForAccount(accountID, clubID uint) (*Player, error)
	PlayersForAccount(accountID uint) ([]Player, error)
	IsAdminOrCaptain(clubID, accountID uint) (bool, error)

	// LinkUnlinkedByEmail attaches every unlinked player whose email matches
	// (case-insensitively) to the given account. Returns the number linked.
	LinkUnlinkedByEmail(email string, accountID uint) (int64, error)
	// AccountIDByEmail returns the id of the account with the given email, or
	// zero when none exists.
	AccountIDByEmail(email string) (uint, error)
	ClubExists(clubID uint) (bool, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) UpdatePlayer(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM match_players WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Player{}, id).Error
	})
}

func (r *playerRepository) PlayersOfClub(clubID uint, page, limit int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{}).Where("club_id = ?", clubID)
	query.Count(&total)
	offset := (page - 1) * limit
	err := query.Order("LOWER(name) ASC").Offset(offset).Limit(limit).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) ActivePlayers(clubID uint) ([]Player, error) {
	var players []Player
	err := r.db.Where("club_id = ? AND active = ?", clubID, true).
		Order("LOWER(name) ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) PlayerForAccount(accountID, clubID uint) (*Player, error) {
	var p Player
	err := r.db.Where("account_id = ? AND club_id = ?", accountID, clubID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) PlayersForAccount(accountID uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("account_id = ?", accountID).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) IsAdminOrCaptain(clubID, accountID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Player{}).
		Where("club_id = ? AND account_id = ? AND active = ? AND role IN ?",
			clubID, accountID, true, []Role{RoleAdmin, RoleCaptain}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playerRepository) AccountIDByEmail(email string) (uint, error) {
	var id uint
	result := r.db.Table("accounts").
		Select("id").
		Where("LOWER(email) = LOWER(?) AND deleted_at IS NULL", email).
		Limit(1).
		Scan(&id)
	if result.Error != nil {
		return 0, result.Error
	}
	return id, nil
}

func (r *playerRepository) ClubExists(clubID uint) (bool, error) {
	var count int64
	if err := r.db.Table("clubs").Where("id = ? AND deleted_at IS NULL", clubID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playerRepository) LinkUnlinkedByEmail(email string, accountID uint) (int64, error) {
	if email == "" {
		return 0, nil
	}
	result := r.db.Model(&Player{}).
		Where("LOWER(email) = LOWER(?) AND account_id IS NULL", email).
		Update("account_id", accountID)
	return result.RowsAffected, result.Error
}

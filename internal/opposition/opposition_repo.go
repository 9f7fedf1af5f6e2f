package opposition

import (
	"errors"

	"gorm.io/gorm"
)

type OppositionRepository interface {
	CreateOpposition(o *Opposition) error
	GetOppositionByID(id uint) (*Opposition, error)
	OppositionsOfClub(clubID uint) ([]Opposition, error)
	UpdateOpposition(o *Opposition) error
	DeleteOpposition(id uint) error
}

type oppositionRepository struct {
	db *gorm.DB
}

func NewOppositionRepository(db *gorm.DB) OppositionRepository {
	return &oppositionRepository{db: db}
}

func (r *oppositionRepository) CreateOpposition(o *Opposition) error {
	return r.db.Create(o).Error
}

func (r *oppositionRepository) GetOppositionByID(id uint) (*Opposition, error) {
	var o Opposition
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *oppositionRepository) OppositionsOfClub(clubID uint) ([]Opposition, error) {
	var oppositions []Opposition
	if err := r.db.Where("club_id = ?", clubID).Order("name ASC").Find(&oppositions).Error; err != nil {
		return nil, err
	}
	return oppositions, nil
}

func (r *oppositionRepository) UpdateOpposition(o *Opposition) error {
	return r.db.Save(o).Error
}

func (r *oppositionRepository) DeleteOpposition(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM match_players WHERE match_id IN (SELECT id FROM matches WHERE opposition_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM matches WHERE opposition_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Opposition{}, id).Error
	})
}

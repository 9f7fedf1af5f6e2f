package fixture

import (
	"errors"

	"gorm.io/gorm"
)

// statusRankExpr mirrors MatchStatus.Rank for SQL ordering.
const statusRankExpr = "CASE status WHEN 'scheduled' THEN 0 WHEN 'completed' THEN 1 ELSE 2 END"

type MatchRepository interface {
	CreateMatch(m *Match) error
	GetMatchByID(id uint) (*Match, error)
	// MatchesOfClub returns every fixture of the club ordered by status rank
	// (scheduled, completed, cancelled) then date ascending. The engine and
	// projections need the full list.
	MatchesOfClub(clubID uint) ([]Match, error)
	// MatchesOfClubPaged is the listing variant, same ordering.
	MatchesOfClubPaged(clubID uint, page, limit int) ([]Match, int64, error)
	UpdateMatch(m *Match) error
	DeleteMatch(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) MatchesOfClub(clubID uint) ([]Match, error) {
	var matches []Match
	err := r.db.Where("club_id = ?", clubID).
		Order(statusRankExpr + ", date ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) MatchesOfClubPaged(clubID uint, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{}).Where("club_id = ?", clubID)
	query.Count(&total)
	offset := (page - 1) * limit
	err := query.Order(statusRankExpr + ", date ASC").Offset(offset).Limit(limit).Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM match_players WHERE match_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Match{}, id).Error
	})
}

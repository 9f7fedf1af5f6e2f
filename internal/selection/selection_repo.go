package selection

import (
	"errors"

	"gorm.io/gorm"
)

// ResponseStore owns the MatchPlayer records. Absence of a record is valid
// state, so lookups return nil rather than an error when nothing exists.
type ResponseStore interface {
	GetResponse(matchID, playerID uint) (*MatchPlayer, error)
	ResponsesOfMatch(matchID uint) ([]MatchPlayer, error)
	ResponsesOfPlayer(playerID uint) ([]MatchPlayer, error)
	SaveResponse(mp *MatchPlayer) error
	// SelectedCounts returns the number of selected players per match id.
	SelectedCounts(matchIDs []uint) (map[uint]int, error)
	WithTransaction(fn func(ResponseStore) error) error
}

type responseStore struct {
	db *gorm.DB
}

func NewResponseStore(db *gorm.DB) ResponseStore {
	return &responseStore{db: db}
}

func (r *responseStore) GetResponse(matchID, playerID uint) (*MatchPlayer, error) {
	var mp MatchPlayer
	err := r.db.Where("match_id = ? AND player_id = ?", matchID, playerID).First(&mp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mp, nil
}

func (r *responseStore) ResponsesOfMatch(matchID uint) ([]MatchPlayer, error) {
	var responses []MatchPlayer
	if err := r.db.Where("match_id = ?", matchID).Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseStore) ResponsesOfPlayer(playerID uint) ([]MatchPlayer, error) {
	var responses []MatchPlayer
	if err := r.db.Where("player_id = ?", playerID).Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseStore) SaveResponse(mp *MatchPlayer) error {
	return r.db.Save(mp).Error
}

func (r *responseStore) SelectedCounts(matchIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(matchIDs))
	if len(matchIDs) == 0 {
		return counts, nil
	}

	type row struct {
		MatchID uint
		Total   int
	}
	var rows []row
	err := r.db.Model(&MatchPlayer{}).
		Select("match_id, COUNT(*) AS total").
		Where("match_id IN ? AND selected = ?", matchIDs, true).
		Group("match_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.MatchID] = rw.Total
	}
	return counts, nil
}

func (r *responseStore) WithTransaction(fn func(ResponseStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&responseStore{db: tx})
	})
}

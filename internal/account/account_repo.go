package account

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type AccountRepository interface {
	CreateAccount(a *Account) error
	GetAccountByEmail(email string) (*Account, error)
	GetAccountByID(id uint) (*Account, error)

	SaveRefreshToken(token *RefreshToken) error
	GetRefreshToken(tokenString string) (*RefreshToken, error)
	InvalidateRefreshToken(tokenString string) error
	InvalidateAllRefreshTokensForAccount(accountID uint) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateAccount(a *Account) error {
	return r.db.Create(a).Error
}

func (r *accountRepository) GetAccountByEmail(email string) (*Account, error) {
	var a Account
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) GetAccountByID(id uint) (*Account, error) {
	var a Account
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) SaveRefreshToken(token *RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *accountRepository) GetRefreshToken(tokenString string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.db.Where("token = ? AND expires_at > ? AND revoked = ?", tokenString, time.Now(), false).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *accountRepository) InvalidateRefreshToken(tokenString string) error {
	return r.db.Model(&RefreshToken{}).Where("token = ?", tokenString).Update("revoked", true).Error
}

func (r *accountRepository) InvalidateAllRefreshTokensForAccount(accountID uint) error {
	return r.db.Model(&RefreshToken{}).
		Where("account_id = ? AND revoked = ?", accountID, false).
		Update("revoked", true).Error
}

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yourhonour365/matchfeemate/pkg/token"
)

const (
	AuthAccountIDKey = "auth_account_id"
	AuthAccountKey   = "auth_account"
)

// AuthAccount is the slim view of the authenticated account stashed in the
// request context. Kept here rather than in the account package so the
// middleware has no domain imports.
type AuthAccount struct {
	ID    uint
	Name  string
	Email string
}

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var acct AuthAccount
		result := db.Table("accounts").
			Select("id, name, email").
			Where("id = ? AND deleted_at IS NULL", claims.AccountID).
			Scan(&acct)
		if result.Error != nil || result.RowsAffected == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found or inactive"})
			return
		}

		c.Set(AuthAccountIDKey, claims.AccountID)
		c.Set(AuthAccountKey, acct)
		c.Next()
	}
}

// GetAccountIDFromContext extracts the authenticated account id from the context.
func GetAccountIDFromContext(c *gin.Context) (uint, error) {
	accountID, exists := c.Get(AuthAccountIDKey)
	if !exists {
		return 0, errors.New("account ID not found in context")
	}

	id, ok := accountID.(uint)
	if !ok {
		return 0, fmt.Errorf("account ID has unexpected type: %T", accountID)
	}

	return id, nil
}

// GetAccountFromContext returns the authenticated account stored by the middleware.
func GetAccountFromContext(c *gin.Context) (AuthAccount, bool) {
	value, exists := c.Get(AuthAccountKey)
	if !exists {
		return AuthAccount{}, false
	}
	acct, ok := value.(AuthAccount)
	return acct, ok
}

package account

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/logger"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
	"github.com/Yourhonour365/matchfeemate/pkg/token"
	"github.com/Yourhonour365/matchfeemate/utils"
)

// AccountController handles authentication HTTP requests.
type AccountController struct {
	repo       AccountRepository
	playerRepo player.PlayerRepository
	appConfig  *config.Config
	log        logger.Logger
}

func NewAccountController(repo AccountRepository, playerRepo player.PlayerRepository, appConfig *config.Config, log logger.Logger) *AccountController {
	return &AccountController{
		repo:       repo,
		playerRepo: playerRepo,
		appConfig:  appConfig,
		log:        log,
	}
}

func generateOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (ac *AccountController) issueTokens(acct *Account) (*AuthResponse, error) {
	accessToken, err := token.GenerateJWT(acct.ID, ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refreshString, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}
	refresh := RefreshToken{
		AccountID: acct.ID,
		Token:     refreshString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.appConfig.JWT.RefreshTokenExpiryDays),
	}
	if err := ac.repo.SaveRefreshToken(&refresh); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshString,
		Account:      FilterAccountRecord(acct),
	}, nil
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account and links any unlinked players sharing its email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AccountController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	existing, err := ac.repo.GetAccountByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing account")
		return
	}
	if existing != nil {
		responses.Conflict(c, "An account with this email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}

	acct := Account{Name: req.Name, Email: req.Email, Password: hashed}
	if err := ac.repo.CreateAccount(&acct); err != nil {
		responses.InternalServerError(c, "Failed to create account")
		return
	}

	// Claim any roster entries created for this email before signup.
	linked, err := ac.playerRepo.LinkUnlinkedByEmail(acct.Email, acct.ID)
	if err != nil {
		ac.log.Error("failed to link players on registration", "account_id", acct.ID, "error", err)
	} else if linked > 0 {
		ac.log.Info("linked players to new account", "account_id", acct.ID, "count", linked)
	}

	auth, err := ac.issueTokens(&acct)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account registered successfully", auth)
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AccountController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	acct, err := ac.repo.GetAccountByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up account")
		return
	}
	if acct == nil || !utils.CheckPassword(acct.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	auth, err := ac.issueTokens(acct)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", auth)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (ac *AccountController) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up refresh token")
		return
	}
	if stored == nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	acct, err := ac.repo.GetAccountByID(stored.AccountID)
	if err != nil || acct == nil {
		responses.Unauthorized(c, "Account no longer exists")
		return
	}

	// Rotate: the used token is revoked and a fresh pair issued.
	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}

	auth, err := ac.issueTokens(acct)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed", auth)
}

// Logout revokes the supplied refresh token, or all of the caller's tokens
// when none is given.
func (ac *AccountController) Logout(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		err = ac.repo.InvalidateRefreshToken(req.RefreshToken)
	} else {
		err = ac.repo.InvalidateAllRefreshTokensForAccount(accountID)
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to log out")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Current account profile
// @Description Returns the account plus the player records linked to it.
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AccountController) Me(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	acct, err := ac.repo.GetAccountByID(accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch account")
		return
	}
	if acct == nil {
		responses.NotFound(c, "Account")
		return
	}

	players, err := ac.playerRepo.PlayersForAccount(accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch linked players")
		return
	}

	playerViews := make([]player.PlayerResponse, 0, len(players))
	for i := range players {
		playerViews = append(playerViews, player.FilterPlayerRecord(&players[i]))
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"account": FilterAccountRecord(acct),
		"players": playerViews,
	})
}

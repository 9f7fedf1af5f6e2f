package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
)

// PlayerController handles roster HTTP requests.
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{repo: repo, appConfig: appConfig}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

func (pc *PlayerController) requireAdminOrCaptain(c *gin.Context, clubID uint) (uint, bool) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return 0, false
	}
	allowed, err := pc.repo.IsAdminOrCaptain(clubID, accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club permissions")
		return 0, false
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can manage the roster")
		return 0, false
	}
	return accountID, true
}

// CreatePlayer godoc
// @Summary Add a player to a club roster
// @Description Creates a roster entry; if the email matches an existing account, the player is linked immediately.
// @Tags Players
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} responses.SuccessResponse{data=PlayerResponse}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	exists, err := pc.repo.ClubExists(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club")
		return
	}
	if !exists {
		responses.NotFound(c, "Club")
		return
	}

	if _, ok := pc.requireAdminOrCaptain(c, clubID); !ok {
		return
	}

	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = RolePlayer
	}

	p := Player{
		ClubID: clubID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   role,
		Active: true,
	}

	// Link to an existing account on creation when the email already matches.
	if req.Email != "" {
		accountID, err := pc.repo.AccountIDByEmail(req.Email)
		if err != nil {
			responses.InternalServerError(c, "Failed to check account linkage")
			return
		}
		if accountID != 0 {
			p.AccountID = &accountID
		}
	}

	if err := pc.repo.CreatePlayer(&p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player added to roster", FilterPlayerRecord(&p))
}

// ListPlayers godoc
// @Summary List a club's roster
// @Tags Players
// @Produce json
// @Param club_id path int true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]PlayerResponse}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	exists, err := pc.repo.ClubExists(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club")
		return
	}
	if !exists {
		responses.NotFound(c, "Club")
		return
	}

	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	self, err := pc.repo.PlayerForAccount(accountID, clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club membership")
		return
	}
	if self == nil {
		responses.Forbidden(c, "You are not a member of this club")
		return
	}

	players, total, err := pc.repo.PlayersOfClub(clubID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch roster")
		return
	}

	result := make([]PlayerResponse, 0, len(players))
	for i := range players {
		result = append(result, FilterPlayerRecord(&players[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Roster retrieved successfully", result, total, page, limit)
}

// GetPlayer returns a single roster entry.
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	if p.AccountID == nil || *p.AccountID != accountID {
		allowed, err := pc.repo.IsAdminOrCaptain(p.ClubID, accountID)
		if err != nil {
			responses.InternalServerError(c, "Failed to check club permissions")
			return
		}
		if !allowed {
			responses.Forbidden(c, "")
			return
		}
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterPlayerRecord(p))
}

// UpdatePlayer edits a roster entry. The owning club is immutable.
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if _, ok := pc.requireAdminOrCaptain(c, p.ClubID); !ok {
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Role != nil {
		if !ValidRole(*req.Role) {
			responses.BadRequest(c, "Invalid role")
			return
		}
		p.Role = *req.Role
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.AccountID != nil {
		if *req.AccountID == 0 {
			p.AccountID = nil
		} else {
			p.AccountID = req.AccountID
		}
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", FilterPlayerRecord(p))
}

// DeletePlayer removes a roster entry and its match responses.
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if _, ok := pc.requireAdminOrCaptain(c, p.ClubID); !ok {
		return
	}

	if err := pc.repo.DeletePlayer(playerID); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}

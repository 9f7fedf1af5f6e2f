package fixture

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/opposition"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
)

// MatchController handles fixture HTTP requests.
type MatchController struct {
	repo           MatchRepository
	clubRepo       club.ClubRepository
	oppositionRepo opposition.OppositionRepository
	appConfig      *config.Config
}

func NewMatchController(repo MatchRepository, clubRepo club.ClubRepository, oppositionRepo opposition.OppositionRepository, appConfig *config.Config) *MatchController {
	return &MatchController{
		repo:           repo,
		clubRepo:       clubRepo,
		oppositionRepo: oppositionRepo,
		appConfig:      appConfig,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

func (mc *MatchController) requireAdminOrCaptain(c *gin.Context, clubID uint) bool {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return false
	}
	allowed, err := mc.clubRepo.IsAdminOrCaptain(clubID, accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club permissions")
		return false
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can manage fixtures")
		return false
	}
	return true
}

// CreateMatch godoc
// @Summary Create a fixture
// @Description Creates a match; an empty venue is filled from the club or opposition home ground, and the fee defaults to the club's.
// @Tags Matches
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} responses.SuccessResponse{data=MatchResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	owner, err := mc.clubRepo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if owner == nil {
		responses.NotFound(c, "Club")
		return
	}

	if !mc.requireAdminOrCaptain(c, clubID) {
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	opp, err := mc.oppositionRepo.GetOppositionByID(req.OppositionID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch opposition")
		return
	}
	if opp == nil {
		responses.NotFound(c, "Opposition")
		return
	}
	if opp.ClubID != clubID {
		responses.BadRequest(c, "Opposition does not belong to this club")
		return
	}

	isHome := true
	if req.IsHome != nil {
		isHome = *req.IsHome
	}

	fee := owner.DefaultMatchFee
	if req.MatchFee != nil {
		fee = *req.MatchFee
	}
	if fee.IsNegative() {
		responses.BadRequest(c, "Match fee cannot be negative")
		return
	}

	m := Match{
		ClubID:       clubID,
		OppositionID: req.OppositionID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Venue:        ResolveVenue(req.Venue, isHome, owner.HomeGround, opp.HomeGround),
		IsHome:       isHome,
		MatchFee:     fee,
		Status:       StatusScheduled,
	}
	if err := mc.repo.CreateMatch(&m); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", FilterMatchRecord(&m))
}

// ListMatches godoc
// @Summary List a club's fixtures, scheduled first then by date
// @Tags Matches
// @Produce json
// @Param club_id path int true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]MatchResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/matches [get]
func (mc *MatchController) ListMatches(c *gin.Context) {
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

	owner, err := mc.clubRepo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if owner == nil {
		responses.NotFound(c, "Club")
		return
	}

	matches, total, err := mc.repo.MatchesOfClubPaged(clubID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}

	result := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		result = append(result, FilterMatchRecord(&matches[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", result, total, page, limit)
}

// GetMatch returns a single fixture.
func (mc *MatchController) GetMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterMatchRecord(m))
}

// UpdateMatch edits a fixture. The venue fill is never applied retroactively:
// updates store exactly what was sent.
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if !mc.requireAdminOrCaptain(c, m.ClubID) {
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.OppositionID != nil {
		opp, err := mc.oppositionRepo.GetOppositionByID(*req.OppositionID)
		if err != nil {
			responses.InternalServerError(c, "Failed to fetch opposition")
			return
		}
		if opp == nil {
			responses.NotFound(c, "Opposition")
			return
		}
		if opp.ClubID != m.ClubID {
			responses.BadRequest(c, "Opposition does not belong to this club")
			return
		}
		m.OppositionID = *req.OppositionID
	}
	if req.Date != nil {
		m.Date = *req.Date
	}
	if req.StartTime != nil {
		m.StartTime = *req.StartTime
	}
	if req.Venue != nil {
		m.Venue = *req.Venue
	}
	if req.IsHome != nil {
		m.IsHome = *req.IsHome
	}
	if req.MatchFee != nil {
		if req.MatchFee.IsNegative() {
			responses.BadRequest(c, "Match fee cannot be negative")
			return
		}
		m.MatchFee = *req.MatchFee
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			responses.BadRequest(c, "Invalid match status")
			return
		}
		m.Status = *req.Status
	}

	if err := mc.repo.UpdateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to update match")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", FilterMatchRecord(m))
}

// DeleteMatch removes the fixture and its player responses.
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if !mc.requireAdminOrCaptain(c, m.ClubID) {
		return
	}

	if err := mc.repo.DeleteMatch(matchID); err != nil {
		responses.InternalServerError(c, "Failed to delete match")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

package selection

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/fixture"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/internal/player"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
)

// SelectionController exposes the engine and projections over HTTP. All
// permission checks live here, at the boundary; the engine itself performs
// none.
type SelectionController struct {
	engine     *Engine
	projector  *Projector
	playerRepo player.PlayerRepository
	clubRepo   club.ClubRepository
	matchRepo  fixture.MatchRepository
	appConfig  *config.Config
}

func NewSelectionController(
	engine *Engine,
	projector *Projector,
	playerRepo player.PlayerRepository,
	clubRepo club.ClubRepository,
	matchRepo fixture.MatchRepository,
	appConfig *config.Config,
) *SelectionController {
	return &SelectionController{
		engine:     engine,
		projector:  projector,
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		matchRepo:  matchRepo,
		appConfig:  appConfig,
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

// matchClub resolves the match and the caller's account id.
func (sc *SelectionController) matchClub(c *gin.Context, matchID uint) (*fixture.Match, uint, bool) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil, 0, false
	}
	m, err := sc.matchRepo.GetMatchByID(matchID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return nil, 0, false
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return nil, 0, false
	}
	return m, accountID, true
}

func (sc *SelectionController) isAdminOrCaptain(c *gin.Context, clubID, accountID uint) (bool, bool) {
	allowed, err := sc.clubRepo.IsAdminOrCaptain(clubID, accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club permissions")
		return false, false
	}
	return allowed, true
}

// SetAvailability godoc
// @Summary Record a player's availability for a match
// @Description Sets the caller's own response, or another player's when the caller is an admin or captain.
// @Tags Selection
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param body body SetAvailabilityRequest true "Availability"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{id}/availability [post]
func (sc *SelectionController) SetAvailability(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, accountID, ok := sc.matchClub(c, matchID)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	self, err := sc.playerRepo.PlayerForAccount(accountID, m.ClubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve club membership")
		return
	}

	targetID := req.PlayerID
	if targetID == 0 {
		if self == nil {
			responses.Forbidden(c, "You are not a member of this club")
			return
		}
		targetID = self.ID
	} else if self == nil || targetID != self.ID {
		allowed, ok := sc.isAdminOrCaptain(c, m.ClubID, accountID)
		if !ok {
			return
		}
		if !allowed {
			responses.Forbidden(c, "Only club admins and captains can set another player's availability")
			return
		}
	}

	if err := sc.engine.SetAvailability(matchID, targetID, req.Availability); err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Availability updated", nil)
}

// BulkTransition godoc
// @Summary Apply a selection or availability action to a set of players
// @Tags Selection
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param body body BulkTransitionRequest true "Player ids and action"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /matches/{id}/selection [post]
func (sc *SelectionController) BulkTransition(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, accountID, ok := sc.matchClub(c, matchID)
	if !ok {
		return
	}

	allowed, ok := sc.isAdminOrCaptain(c, m.ClubID, accountID)
	if !ok {
		return
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can manage selection")
		return
	}

	var req BulkTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	affected, err := sc.engine.BulkTransition(matchID, req.PlayerIDs, req.Action)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	message := fmt.Sprintf("%d player(s) updated", affected)
	responses.SendSuccess(c, http.StatusOK, message, gin.H{"affected": affected})
}

// TeamSheet returns the team-selection projection: selected players in their
// own bucket ahead of the availability buckets.
func (sc *SelectionController) TeamSheet(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, accountID, ok := sc.matchClub(c, matchID)
	if !ok {
		return
	}

	self, err := sc.playerRepo.PlayerForAccount(accountID, m.ClubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve club membership")
		return
	}
	if self == nil {
		responses.Forbidden(c, "You are not a member of this club")
		return
	}

	sheet, err := sc.engine.Categorize(matchID, TeamSelectionMode)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", sheet)
}

// AvailabilityBoard returns the bulk-availability projection: selection is an
// attribute, not a bucket.
func (sc *SelectionController) AvailabilityBoard(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, accountID, ok := sc.matchClub(c, matchID)
	if !ok {
		return
	}

	allowed, ok := sc.isAdminOrCaptain(c, m.ClubID, accountID)
	if !ok {
		return
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can use the bulk editor")
		return
	}

	sheet, err := sc.engine.Categorize(matchID, BulkAvailabilityMode)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", sheet)
}

// NotResponded lists active players who have not touched the match at all.
func (sc *SelectionController) NotResponded(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, accountID, ok := sc.matchClub(c, matchID)
	if !ok {
		return
	}

	allowed, ok := sc.isAdminOrCaptain(c, m.ClubID, accountID)
	if !ok {
		return
	}
	if !allowed {
		responses.Forbidden(c, "")
		return
	}

	missing, err := sc.engine.NotResponded(matchID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", missing)
}

// MatchSummaries returns the club's match list with dashboard counts.
func (sc *SelectionController) MatchSummaries(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	self, err := sc.playerRepo.PlayerForAccount(accountID, clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve club membership")
		return
	}
	if self == nil {
		responses.Forbidden(c, "You are not a member of this club")
		return
	}

	entries, err := sc.projector.SummarizeMatches(clubID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", entries)
}

// MySchedule returns the caller's availability across every club they are
// linked in.
func (sc *SelectionController) MySchedule(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	players, err := sc.playerRepo.PlayersForAccount(accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch linked players")
		return
	}

	type playerSchedule struct {
		Player  player.PlayerResponse `json:"player"`
		Entries []ScheduleEntry       `json:"entries"`
	}
	result := make([]playerSchedule, 0, len(players))
	for i := range players {
		entries, err := sc.projector.PlayerSchedule(players[i].ID)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		result = append(result, playerSchedule{
			Player:  player.FilterPlayerRecord(&players[i]),
			Entries: entries,
		})
	}

	responses.SendSuccess(c, http.StatusOK, "", result)
}

// PlayerSchedule is the admin/captain view of one player's availability
// across the club's matches.
func (sc *SelectionController) PlayerSchedule(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	subject, err := sc.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if subject == nil {
		responses.NotFound(c, "Player")
		return
	}

	isSelf := subject.AccountID != nil && *subject.AccountID == accountID
	if !isSelf {
		allowed, ok := sc.isAdminOrCaptain(c, subject.ClubID, accountID)
		if !ok {
			return
		}
		if !allowed {
			responses.Forbidden(c, "Only club admins and captains can view another player's availability")
			return
		}
	}

	entries, err := sc.projector.PlayerSchedule(playerID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"player":  player.FilterPlayerRecord(subject),
		"entries": entries,
	})
}

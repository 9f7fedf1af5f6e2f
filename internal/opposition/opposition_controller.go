package opposition

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/club"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
)

// OppositionController handles opposition HTTP requests.
type OppositionController struct {
	repo      OppositionRepository
	clubRepo  club.ClubRepository
	appConfig *config.Config
}

func NewOppositionController(repo OppositionRepository, clubRepo club.ClubRepository, appConfig *config.Config) *OppositionController {
	return &OppositionController{repo: repo, clubRepo: clubRepo, appConfig: appConfig}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

func (oc *OppositionController) requireAdminOrCaptain(c *gin.Context, clubID uint) bool {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return false
	}
	allowed, err := oc.clubRepo.IsAdminOrCaptain(clubID, accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club permissions")
		return false
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can manage oppositions")
		return false
	}
	return true
}

// CreateOpposition godoc
// @Summary Add an opposition team to a club
// @Tags Oppositions
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param opposition body CreateOppositionRequest true "Opposition data"
// @Success 201 {object} responses.SuccessResponse{data=OppositionResponse}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/oppositions [post]
func (oc *OppositionController) CreateOpposition(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	owner, err := oc.clubRepo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if owner == nil {
		responses.NotFound(c, "Club")
		return
	}

	if !oc.requireAdminOrCaptain(c, clubID) {
		return
	}

	var req CreateOppositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	o := Opposition{
		ClubID:     clubID,
		Name:       req.Name,
		HomeGround: req.HomeGround,
	}
	if err := oc.repo.CreateOpposition(&o); err != nil {
		responses.InternalServerError(c, "Failed to create opposition")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Opposition created successfully", FilterOppositionRecord(&o))
}

// ListOppositions returns the club's opposition teams.
func (oc *OppositionController) ListOppositions(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	owner, err := oc.clubRepo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if owner == nil {
		responses.NotFound(c, "Club")
		return
	}

	oppositions, err := oc.repo.OppositionsOfClub(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch oppositions")
		return
	}

	result := make([]OppositionResponse, 0, len(oppositions))
	for i := range oppositions {
		result = append(result, FilterOppositionRecord(&oppositions[i]))
	}
	responses.SendSuccess(c, http.StatusOK, "", result)
}

// UpdateOpposition edits an opposition record.
func (oc *OppositionController) UpdateOpposition(c *gin.Context) {
	oppositionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := oc.repo.GetOppositionByID(oppositionID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch opposition")
		return
	}
	if o == nil {
		responses.NotFound(c, "Opposition")
		return
	}

	if !oc.requireAdminOrCaptain(c, o.ClubID) {
		return
	}

	var req UpdateOppositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.HomeGround != nil {
		o.HomeGround = *req.HomeGround
	}

	if err := oc.repo.UpdateOpposition(o); err != nil {
		responses.InternalServerError(c, "Failed to update opposition")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Opposition updated successfully", FilterOppositionRecord(o))
}

// DeleteOpposition removes the opposition and its matches.
func (oc *OppositionController) DeleteOpposition(c *gin.Context) {
	oppositionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := oc.repo.GetOppositionByID(oppositionID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch opposition")
		return
	}
	if o == nil {
		responses.NotFound(c, "Opposition")
		return
	}

	if !oc.requireAdminOrCaptain(c, o.ClubID) {
		return
	}

	if err := oc.repo.DeleteOpposition(oppositionID); err != nil {
		responses.InternalServerError(c, "Failed to delete opposition")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Opposition deleted successfully", nil)
}

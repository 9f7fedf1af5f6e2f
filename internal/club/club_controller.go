package club

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Yourhonour365/matchfeemate/config"
	"github.com/Yourhonour365/matchfeemate/internal/middleware"
	"github.com/Yourhonour365/matchfeemate/pkg/responses"
)

// ClubController handles club-related HTTP requests.
type ClubController struct {
	repo      ClubRepository
	appConfig *config.Config
}

func NewClubController(repo ClubRepository, appConfig *config.Config) *ClubController {
	return &ClubController{repo: repo, appConfig: appConfig}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// requireAdminOrCaptain resolves the caller and checks their role on the club.
// Returns the account id when the caller may manage the club.
func (cc *ClubController) requireAdminOrCaptain(c *gin.Context, clubID uint) (uint, bool) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return 0, false
	}
	allowed, err := cc.repo.IsAdminOrCaptain(clubID, accountID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check club permissions")
		return 0, false
	}
	if !allowed {
		responses.Forbidden(c, "Only club admins and captains can do this")
		return 0, false
	}
	return accountID, true
}

// CreateClub godoc
// @Summary Create a new club
// @Description Creates a club; the authenticated account becomes its first admin player.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club data"
// @Success 201 {object} responses.SuccessResponse{data=ClubResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	fee := decimal.NewFromFloat(10.00)
	if req.DefaultMatchFee != nil {
		fee = *req.DefaultMatchFee
	}
	if fee.IsNegative() {
		responses.BadRequest(c, "Default match fee cannot be negative")
		return
	}

	creator, ok := middleware.GetAccountFromContext(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	club := Club{
		Name:            req.Name,
		HomeGround:      req.HomeGround,
		DefaultMatchFee: fee,
		CreatedByID:     accountID,
	}
	if err := cc.repo.CreateClub(&club, creator.Name, creator.Email); err != nil {
		responses.InternalServerError(c, "Failed to create club")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", FilterClubRecord(&club))
}

// GetClub godoc
// @Summary Get a club
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=ClubResponse}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [get]
func (cc *ClubController) GetClub(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterClubRecord(club))
}

// MyClubs godoc
// @Summary List the clubs the caller is a roster member of
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]ClubResponse}
// @Security ApiKeyAuth
// @Router /clubs/mine [get]
func (cc *ClubController) MyClubs(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
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

	clubs, total, err := cc.repo.GetClubsForAccount(accountID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch clubs")
		return
	}

	result := make([]ClubResponse, 0, len(clubs))
	for i := range clubs {
		result = append(result, FilterClubRecord(&clubs[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Clubs retrieved successfully", result, total, page, limit)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param club body UpdateClubRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=ClubResponse}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if _, ok := cc.requireAdminOrCaptain(c, clubID); !ok {
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.HomeGround != nil {
		club.HomeGround = *req.HomeGround
	}
	if req.DefaultMatchFee != nil {
		if req.DefaultMatchFee.IsNegative() {
			responses.BadRequest(c, "Default match fee cannot be negative")
			return
		}
		club.DefaultMatchFee = *req.DefaultMatchFee
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.InternalServerError(c, "Failed to update club")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", FilterClubRecord(club))
}

// DeleteClub godoc
// @Summary Delete a club and everything belonging to it
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, ok := parseIDParam(c, "club_id")
	if !ok {
		return
	}

	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if _, ok := cc.requireAdminOrCaptain(c, clubID); !ok {
		return
	}

	if err := cc.repo.DeleteClub(clubID); err != nil {
		responses.InternalServerError(c, "Failed to delete club")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}

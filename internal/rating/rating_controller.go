package rating

import (
	"net/http"

	"github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/pkg/responses"
	"github.com/gin-gonic/gin"
)

type RatingController struct {
	repo RatingRepository
}

func NewRatingController(repo RatingRepository) *RatingController {
	return &RatingController{repo: repo}
}

// profileOrDefault returns the stored profile, or an unsaved starting profile
// for users who have not played yet.
func (rc *RatingController) profileOrDefault(c *gin.Context, userID uint) (*UserProfile, bool) {
	p, err := rc.repo.GetProfile(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve profile: "+err.Error())
		return nil, false
	}
	if p == nil {
		fresh := newProfile(userID)
		p = &fresh
	}
	return p, true
}

// GetProfile godoc
// @Summary Get a user's rating profile
// @Tags Ratings
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=UserProfile}
// @Router /ratings/users/{user_id} [get]
func (rc *RatingController) GetProfile(c *gin.Context) {
	userID, ok := responses.UintParam(c, "user_id")
	if !ok {
		return
	}
	p, ok := rc.profileOrDefault(c, userID)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", p)
}

// GetMyProfile godoc
// @Summary Get the caller's rating profile
// @Tags Ratings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserProfile}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /ratings/me [get]
func (rc *RatingController) GetMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	p, ok := rc.profileOrDefault(c, userID)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", p)
}

// GetHistory godoc
// @Summary List a user's rating changes, newest first
// @Tags Ratings
// @Produce json
// @Param user_id path uint true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]RatingHistory}
// @Router /ratings/users/{user_id}/history [get]
func (rc *RatingController) GetHistory(c *gin.Context) {
	userID, ok := responses.UintParam(c, "user_id")
	if !ok {
		return
	}
	page, limit := responses.PageParams(c)
	rows, total, err := rc.repo.GetHistory(userID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rating history: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Rating history retrieved successfully", rows, total, page, limit)
}

// GetAchievements godoc
// @Summary List a user's achievements, newest first
// @Tags Ratings
// @Produce json
// @Param user_id path uint true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Achievement}
// @Router /ratings/users/{user_id}/achievements [get]
func (rc *RatingController) GetAchievements(c *gin.Context) {
	userID, ok := responses.UintParam(c, "user_id")
	if !ok {
		return
	}
	page, limit := responses.PageParams(c)
	rows, total, err := rc.repo.GetAchievements(userID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve achievements: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Achievements retrieved successfully", rows, total, page, limit)
}

// GetLeaderboard godoc
// @Summary Users ranked by current rating
// @Tags Ratings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]UserProfile}
// @Router /ratings/leaderboard [get]
func (rc *RatingController) GetLeaderboard(c *gin.Context) {
	page, limit := responses.PageParams(c)
	rows, total, err := rc.repo.GetLeaderboard(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve leaderboard: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Leaderboard retrieved successfully", rows, total, page, limit)
}

// GetCareer godoc
// @Summary Career statistics of a user
// @Description Rating, win percentage, batting average and strike rate, bowling average.
// @Tags Ratings
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=Career}
// @Router /ratings/users/{user_id}/career [get]
func (rc *RatingController) GetCareer(c *gin.Context) {
	userID, ok := responses.UintParam(c, "user_id")
	if !ok {
		return
	}
	p, ok := rc.profileOrDefault(c, userID)
	if !ok {
		return
	}
	figures, err := rc.repo.GetCareerFigures(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute career: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Career retrieved successfully", BuildCareer(p, figures))
}

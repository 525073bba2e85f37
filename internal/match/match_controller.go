package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/cricsim/internal/condition"
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/internal/team"
	"github.com/DhavalSuthar-24/cricsim/internal/user"
	"github.com/DhavalSuthar-24/cricsim/pkg/distributed"
	"github.com/DhavalSuthar-24/cricsim/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match and tournament requests
type MatchController struct {
	repo       MatchRepository
	teamRepo   team.TeamRepository
	conditions condition.ConditionRepository
	service    *Service
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, conditions condition.ConditionRepository, service *Service) *MatchController {
	return &MatchController{
		repo:       repo,
		teamRepo:   teamRepo,
		conditions: conditions,
		service:    service,
	}
}

// --- DTOs for requests ---

type CreateMatchRequest struct {
	Team1ID            uint       `json:"team1_id" binding:"required,gt=0"`
	Team2ID            uint       `json:"team2_id" binding:"required,gt=0,nefield=Team1ID"`
	TournamentID       *uint      `json:"tournament_id" binding:"omitempty,gt=0"`
	PitchConditionID   *uint      `json:"pitch_condition_id" binding:"omitempty,gt=0"`
	WeatherConditionID *uint      `json:"weather_condition_id" binding:"omitempty,gt=0"`
	MatchType          MatchType  `json:"match_type" binding:"omitempty,oneof=T20 ODI CUSTOM"`
	Overs              int        `json:"overs" binding:"omitempty,gte=1,lte=50"`
	ScheduledAt        *time.Time `json:"scheduled_at"`
}

type SimulateMatchRequest struct {
	MaxOvers int `json:"max_overs" binding:"omitempty,gte=1,lte=50"`
}

type SimulateBallRequest struct {
	BowlerID  uint  `json:"bowler_id" binding:"required,gt=0"`
	BatsmanID uint  `json:"batsman_id" binding:"required,gt=0"`
	KeeperID  *uint `json:"keeper_id" binding:"omitempty,gt=0"`
}

type CreateTournamentRequest struct {
	Name           string     `json:"name" binding:"required,min=3,max=100"`
	Description    string     `json:"description"`
	TournamentType string     `json:"tournament_type" binding:"omitempty,oneof=LEAGUE KNOCKOUT"`
	RatingFactor   float64    `json:"rating_factor" binding:"omitempty,gt=0,lte=5"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

// --- Match Handlers ---

// CreateMatch godoc
// @Summary Schedule a match
// @Description Schedules a match between two teams. The caller must own one of them.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} responses.SuccessResponse{data=Match} "Match scheduled"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Caller owns neither team"
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	team1, err := mc.teamRepo.GetTeamByID(req.Team1ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load team: "+err.Error())
		return
	}
	team2, err := mc.teamRepo.GetTeamByID(req.Team2ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load team: "+err.Error())
		return
	}
	if team1 == nil || team2 == nil {
		responses.BadRequest(c, "Both teams must exist")
		return
	}
	if team1.OwnerID != userID && team2.OwnerID != userID && !isAdmin(c) {
		responses.Forbidden(c, "You must own one of the teams")
		return
	}

	if req.TournamentID != nil {
		t, err := mc.repo.GetTournamentByID(*req.TournamentID)
		if err != nil {
			responses.InternalServerError(c, "Failed to load tournament: "+err.Error())
			return
		}
		if t == nil {
			responses.BadRequest(c, "Tournament does not exist")
			return
		}
	}
	if req.PitchConditionID != nil {
		p, err := mc.conditions.GetPitchByID(*req.PitchConditionID)
		if err != nil {
			responses.InternalServerError(c, "Failed to load pitch: "+err.Error())
			return
		}
		if p == nil {
			responses.BadRequest(c, "Pitch condition does not exist")
			return
		}
	}
	if req.WeatherConditionID != nil {
		w, err := mc.conditions.GetWeatherByID(*req.WeatherConditionID)
		if err != nil {
			responses.InternalServerError(c, "Failed to load weather: "+err.Error())
			return
		}
		if w == nil {
			responses.BadRequest(c, "Weather condition does not exist")
			return
		}
	}

	match := Match{
		TournamentID:       req.TournamentID,
		Team1ID:            req.Team1ID,
		Team2ID:            req.Team2ID,
		PitchConditionID:   req.PitchConditionID,
		WeatherConditionID: req.WeatherConditionID,
		MatchType:          MatchTypeT20,
		Status:             StatusScheduled,
		ScheduledAt:        req.ScheduledAt,
	}
	if req.MatchType != "" {
		match.MatchType = req.MatchType
	}
	match.Overs = match.MatchType.DefaultOvers()
	if req.Overs > 0 {
		match.Overs = req.Overs
	}
	if match.Overs == 0 {
		responses.BadRequest(c, "CUSTOM matches need an overs value")
		return
	}

	if err := mc.repo.CreateMatch(&match); err != nil {
		responses.InternalServerError(c, "Failed to create match: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled successfully", match)
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "SCHEDULED, COMPLETED or CANCELLED"
// @Param team_id query int false "Matches involving this team"
// @Param tournament_id query int false "Matches of this tournament"
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, limit := responses.PageParams(c)

	filters := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filters["status"] = MatchStatus(status)
	}
	for _, key := range []string{"team_id", "tournament_id"} {
		if raw := c.Query(key); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				filters[key] = uint(id)
			}
		}
	}

	matches, total, err := mc.repo.GetMatches(filters, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve matches: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match with ball-by-ball detail
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	match, err := mc.repo.GetMatchDetail(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if match == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", match)
}

// GetPerformances godoc
// @Summary Player performances of a match
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=[]PlayerPerformance}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/performances [get]
func (mc *MatchController) GetPerformances(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	match, err := mc.repo.GetMatchByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if match == nil {
		responses.NotFound(c, "Match")
		return
	}
	perfs, err := mc.repo.GetPerformances(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve performances: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Performances retrieved successfully", perfs)
}

// SimulateMatch godoc
// @Summary Simulate a scheduled match
// @Description Plays the match ball by ball, stores the result and updates both owners' ratings.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param body body SimulateMatchRequest false "Overs per innings, defaults to the match format"
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Caller owns neither team"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match is not scheduled"
// @Failure 422 {object} responses.ErrorResponse "A team cannot field a side"
// @Security ApiKeyAuth
// @Router /matches/{id}/simulate [post]
func (mc *MatchController) SimulateMatch(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	if !mc.authorizeParticipant(c, id) {
		return
	}

	var req SimulateMatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.SendValidationError(c, err)
			return
		}
	}

	summary, err := mc.service.Simulate(c.Request.Context(), id, req.MaxOvers)
	if err != nil {
		sendSimulationError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, summary.Result, summary)
}

// SimulateBall godoc
// @Summary Preview a single delivery
// @Description Draws one ball for the given bowler and batsman under the match's conditions. Nothing is stored.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param body body SimulateBallRequest true "Players"
// @Success 200 {object} responses.SuccessResponse{data=BallPreview}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Match or player not found"
// @Security ApiKeyAuth
// @Router /matches/{id}/simulate-ball [post]
func (mc *MatchController) SimulateBall(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	var req SimulateBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	preview, err := mc.service.PreviewBall(c.Request.Context(), id, req.BowlerID, req.BatsmanID, req.KeeperID)
	if err != nil {
		sendSimulationError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ball simulated", preview)
}

func (mc *MatchController) authorizeParticipant(c *gin.Context, matchID uint) bool {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return false
	}
	match, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return false
	}
	if match == nil {
		responses.NotFound(c, "Match")
		return false
	}
	if isAdmin(c) {
		return true
	}
	for _, t := range []*team.Team{match.Team1, match.Team2} {
		if t != nil && t.OwnerID == userID {
			return true
		}
	}
	responses.Forbidden(c, "Only the owners of the teams can simulate this match")
	return false
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(middleware.AuthRoleKey) == user.RoleAdmin
}

func sendSimulationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMatchNotFound):
		responses.NotFound(c, "Match")
	case errors.Is(err, ErrPlayerNotFound):
		responses.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMatchNotScheduled):
		responses.SendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, distributed.ErrLockNotAcquired):
		responses.SendError(c, http.StatusConflict, "A rating update for one of the owners is in progress, retry shortly")
	case errors.Is(err, ErrInvalidMaxOvers), errors.Is(err, ErrSameTeam):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, engine.ErrEmptyRoster), errors.Is(err, engine.ErrNoLineup), errors.Is(err, ErrTeamNotFound):
		responses.SendError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		responses.InternalServerError(c, "Simulation failed: "+err.Error())
	}
}

// --- Tournament Handlers ---

// CreateTournament godoc
// @Summary Create a tournament
// @Description Admin only. rating_factor scales the K-factor of every rated match in the tournament.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament data"
// @Success 201 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /tournaments [post]
func (mc *MatchController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		responses.BadRequest(c, "end_date must not be before start_date")
		return
	}

	tournament := Tournament{
		Name:           req.Name,
		Description:    req.Description,
		TournamentType: "LEAGUE",
		Status:         "REGISTRATION",
		RatingFactor:   1,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if req.TournamentType != "" {
		tournament.TournamentType = req.TournamentType
	}
	if req.RatingFactor > 0 {
		tournament.RatingFactor = req.RatingFactor
	}
	if err := mc.repo.CreateTournament(&tournament); err != nil {
		responses.InternalServerError(c, "Failed to create tournament: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", tournament)
}

// GetTournaments godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament}
// @Router /tournaments [get]
func (mc *MatchController) GetTournaments(c *gin.Context) {
	page, limit := responses.PageParams(c)
	tournaments, total, err := mc.repo.GetTournaments(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve tournaments: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Tournaments retrieved successfully", tournaments, total, page, limit)
}

// GetTournamentByID godoc
// @Summary Get a tournament
// @Tags Tournaments
// @Produce json
// @Param id path uint true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Router /tournaments/{id} [get]
func (mc *MatchController) GetTournamentByID(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	tournament, err := mc.repo.GetTournamentByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve tournament: "+err.Error())
		return
	}
	if tournament == nil {
		responses.NotFound(c, "Tournament")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament retrieved successfully", tournament)
}

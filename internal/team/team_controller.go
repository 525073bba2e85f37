package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/cricsim/config"
	"github.com/DhavalSuthar-24/cricsim/internal/engine"
	"github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/DhavalSuthar-24/cricsim/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo       TeamRepository
	playerRepo player.PlayerRepository
	appConfig  *config.Config
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, playerRepo player.PlayerRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:       repo,
		playerRepo: playerRepo,
		appConfig:  appConfig,
	}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name   string `json:"name" binding:"required,min=3,max=100"`
	Budget int    `json:"budget" binding:"omitempty,gte=0"`
}

type SetFirstElevenRequest struct {
	PlayerIDs []uint `json:"player_ids" binding:"required,min=1,dive,gt=0"`
}

// LineupEntry is one selected player in batting order.
type LineupEntry struct {
	Position     int    `json:"position"`
	PlayerID     uint   `json:"player_id"`
	Name         string `json:"name"`
	OverallSkill int    `json:"overall_skill"`
	FirstEleven  bool   `json:"first_eleven"`
	Bowls        bool   `json:"bowls"`
	KeepsWicket  bool   `json:"keeps_wicket"`
}

type PlayingElevenResponse struct {
	TeamID          uint          `json:"team_id"`
	TeamName        string        `json:"team_name"`
	Lineup          []LineupEntry `json:"lineup"`
	FieldingAverage float64       `json:"fielding_average"`
}

// --- Team Handlers ---

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team owned by the authenticated user.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Team} "Team created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 409 {object} responses.ErrorResponse "Team name already exists"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to check team name: "+err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Team name already exists")
		return
	}

	team := Team{Name: req.Name, OwnerID: userID, Budget: 1000000, MoneyLeft: 1000000}
	if req.Budget > 0 {
		team.Budget, team.MoneyLeft = req.Budget, req.Budget
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Description Retrieves a team with its full roster.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := responses.UintParam(c, "team_id")
	if !ok {
		return
	}

	team, err := tc.repo.GetTeamWithRoster(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// GetAllTeams godoc
// @Summary Get all teams
// @Description Retrieves teams with optional filters and pagination.
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param owner_id query int false "Filter by owner"
// @Param name query string false "Search by team name (case-insensitive, partial match)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Team} "List of teams"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, limit := responses.PageParams(c)

	filters := make(map[string]interface{})
	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		if ownerID, err := strconv.ParseUint(ownerStr, 10, 32); err == nil {
			filters["owner_id"] = uint(ownerID)
		}
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetMyTeams godoc
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Security ApiKeyAuth
// @Router /users/me/teams [get]
func (tc *TeamController) GetMyTeams(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	page, limit := responses.PageParams(c)

	teams, total, err := tc.repo.GetTeamsByOwnerID(userID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetPlayingEleven godoc
// @Summary Preview a team's playing eleven
// @Description Selects the eleven the simulator would field: flagged first-eleven players, then the most skilled of the rest.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=PlayingElevenResponse}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 422 {object} responses.ErrorResponse "Team has no players"
// @Router /teams/{team_id}/playing-eleven [get]
func (tc *TeamController) GetPlayingEleven(c *gin.Context) {
	teamID, ok := responses.UintParam(c, "team_id")
	if !ok {
		return
	}

	team, err := tc.repo.GetTeamWithRoster(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	resp, err := BuildPlayingEleven(team)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyRoster) || errors.Is(err, engine.ErrNoLineup) {
			responses.SendError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Playing eleven selected", resp)
}

// BuildPlayingEleven resolves the side exactly as a simulation would.
func BuildPlayingEleven(team *Team) (*PlayingElevenResponse, error) {
	side, err := engine.NewSide(team.ToEngine())
	if err != nil {
		return nil, err
	}

	bowls := make(map[uint]bool, len(side.Bowlers))
	for _, b := range side.Bowlers {
		bowls[b.ID] = true
	}
	resp := &PlayingElevenResponse{
		TeamID:          team.ID,
		TeamName:        team.Name,
		FieldingAverage: side.FieldingAverage,
	}
	for i, p := range side.Lineup {
		resp.Lineup = append(resp.Lineup, LineupEntry{
			Position:     i + 1,
			PlayerID:     p.ID,
			Name:         p.Name,
			OverallSkill: p.Overall,
			FirstEleven:  p.FirstEleven,
			Bowls:        bowls[p.ID],
			KeepsWicket:  side.Keeper != nil && side.Keeper.ID == p.ID,
		})
	}
	return resp, nil
}

// SetFirstEleven godoc
// @Summary Flag a team's first-eleven players
// @Description Replaces the team's first-eleven flags. Only the owner may do this.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param body body SetFirstElevenRequest true "Player IDs"
// @Success 200 {object} responses.SuccessResponse{data=PlayingElevenResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Not the team owner"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/first-eleven [put]
func (tc *TeamController) SetFirstEleven(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}
	teamID, ok := responses.UintParam(c, "team_id")
	if !ok {
		return
	}

	var req SetFirstElevenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	team, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	if team.OwnerID != userID {
		responses.Forbidden(c, "Only the team owner can change the first eleven")
		return
	}

	if err := tc.playerRepo.SetFirstEleven(teamID, req.PlayerIDs); err != nil {
		responses.InternalServerError(c, "Failed to update first eleven: "+err.Error())
		return
	}

	team, err = tc.repo.GetTeamWithRoster(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	resp, err := BuildPlayingEleven(team)
	if err != nil {
		responses.SendError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "First eleven updated", resp)
}

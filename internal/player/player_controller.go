package player

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/cricsim/pkg/responses"
	"github.com/gin-gonic/gin"
)

// PlayerController serves read-only player data.
type PlayerController struct {
	repo PlayerRepository
}

func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// GetAllPlayers godoc
// @Summary List players
// @Description Players ordered by overall skill, strongest first.
// @Tags Players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param team_id query int false "Filter by team"
// @Param player_type query string false "BATSMAN, BOWLER, ALL_ROUNDER or WICKET_KEEPER"
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, limit := responses.PageParams(c)

	filters := make(map[string]interface{})
	if raw := c.Query("team_id"); raw != "" {
		teamID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.BadRequest(c, "team_id must be a positive integer")
			return
		}
		filters["team_id"] = uint(teamID)
	}
	if pt := c.Query("player_type"); pt != "" {
		filters["player_type"] = PlayerType(pt)
	}

	players, total, err := pc.repo.GetAllPlayers(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve players: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player with attribute records
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, ok := responses.UintParam(c, "player_id")
	if !ok {
		return
	}
	p, err := pc.repo.GetPlayerByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player: "+err.Error())
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

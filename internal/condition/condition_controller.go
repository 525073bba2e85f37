package condition

import (
	"net/http"

	"github.com/DhavalSuthar-24/cricsim/pkg/responses"
	"github.com/gin-gonic/gin"
)

type ConditionController struct {
	repo ConditionRepository
}

func NewConditionController(repo ConditionRepository) *ConditionController {
	return &ConditionController{repo: repo}
}

type CreatePitchRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Condition    string `json:"condition" binding:"omitempty,max=30"`
	Spin         int    `json:"spin" binding:"gte=0,lte=100"`
	Seam         int    `json:"seam" binding:"gte=0,lte=100"`
	Swing        int    `json:"swing" binding:"gte=0,lte=100"`
	ReverseSwing int    `json:"reverse_swing" binding:"gte=0,lte=100"`
	BoundarySize int    `json:"boundary_size" binding:"omitempty,gte=40,lte=100"`
}

type CreateWeatherRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Condition string `json:"condition" binding:"omitempty,max=30"`
	Spin      int    `json:"spin" binding:"gte=0,lte=100"`
	Swing     int    `json:"swing" binding:"gte=0,lte=100"`
	Seam      int    `json:"seam" binding:"gte=0,lte=100"`
	Humidity  int    `json:"humidity" binding:"gte=0,lte=100"`
}

// GetPitches godoc
// @Summary List pitch conditions
// @Tags Conditions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]PitchCondition}
// @Router /conditions/pitches [get]
func (cc *ConditionController) GetPitches(c *gin.Context) {
	pitches, err := cc.repo.GetAllPitches()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve pitches: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Pitches retrieved successfully", pitches)
}

// GetPitch godoc
// @Summary Get a pitch condition
// @Tags Conditions
// @Produce json
// @Param id path uint true "Pitch ID"
// @Success 200 {object} responses.SuccessResponse{data=PitchCondition}
// @Failure 404 {object} responses.ErrorResponse
// @Router /conditions/pitches/{id} [get]
func (cc *ConditionController) GetPitch(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	pitch, err := cc.repo.GetPitchByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve pitch: "+err.Error())
		return
	}
	if pitch == nil {
		responses.NotFound(c, "Pitch")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Pitch retrieved successfully", pitch)
}

// CreatePitch godoc
// @Summary Create a pitch condition
// @Description Admin only.
// @Tags Conditions
// @Accept json
// @Produce json
// @Param pitch body CreatePitchRequest true "Pitch profile"
// @Success 201 {object} responses.SuccessResponse{data=PitchCondition}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /conditions/pitches [post]
func (cc *ConditionController) CreatePitch(c *gin.Context) {
	var req CreatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	pitch := PitchCondition{
		Name:         req.Name,
		Condition:    req.Condition,
		Spin:         req.Spin,
		Seam:         req.Seam,
		Swing:        req.Swing,
		ReverseSwing: req.ReverseSwing,
		BoundarySize: req.BoundarySize,
	}
	if pitch.Condition == "" {
		pitch.Condition = "BALANCED"
	}
	if pitch.BoundarySize == 0 {
		pitch.BoundarySize = 65
	}
	if err := cc.repo.CreatePitch(&pitch); err != nil {
		responses.InternalServerError(c, "Failed to create pitch: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Pitch created successfully", pitch)
}

// GetWeather godoc
// @Summary List weather conditions
// @Tags Conditions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]WeatherCondition}
// @Router /conditions/weather [get]
func (cc *ConditionController) GetWeather(c *gin.Context) {
	weather, err := cc.repo.GetAllWeather()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve weather: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Weather retrieved successfully", weather)
}

// GetWeatherByID godoc
// @Summary Get a weather condition
// @Tags Conditions
// @Produce json
// @Param id path uint true "Weather ID"
// @Success 200 {object} responses.SuccessResponse{data=WeatherCondition}
// @Failure 404 {object} responses.ErrorResponse
// @Router /conditions/weather/{id} [get]
func (cc *ConditionController) GetWeatherByID(c *gin.Context) {
	id, ok := responses.UintParam(c, "id")
	if !ok {
		return
	}
	weather, err := cc.repo.GetWeatherByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve weather: "+err.Error())
		return
	}
	if weather == nil {
		responses.NotFound(c, "Weather")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Weather retrieved successfully", weather)
}

// CreateWeather godoc
// @Summary Create a weather condition
// @Description Admin only.
// @Tags Conditions
// @Accept json
// @Produce json
// @Param weather body CreateWeatherRequest true "Weather profile"
// @Success 201 {object} responses.SuccessResponse{data=WeatherCondition}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /conditions/weather [post]
func (cc *ConditionController) CreateWeather(c *gin.Context) {
	var req CreateWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	weather := WeatherCondition{
		Name:      req.Name,
		Condition: req.Condition,
		Spin:      req.Spin,
		Swing:     req.Swing,
		Seam:      req.Seam,
		Humidity:  req.Humidity,
	}
	if weather.Condition == "" {
		weather.Condition = "SUNNY"
	}
	if err := cc.repo.CreateWeather(&weather); err != nil {
		responses.InternalServerError(c, "Failed to create weather: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Weather created successfully", weather)
}

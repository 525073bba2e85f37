package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/cricsim/config"
	"github.com/DhavalSuthar-24/cricsim/internal/rating"
	"github.com/DhavalSuthar-24/cricsim/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t, Models()...)

	cfg := &config.Config{}
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.JWT.AccessTokenSecret = "router-secret"
	cfg.Sim.DefaultMaxOvers = 20
	r := SetupRoutes(cfg, db, rating.NoLocks())

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/teams", http.StatusOK},
		{http.MethodGet, "/api/players", http.StatusOK},
		{http.MethodGet, "/api/matches", http.StatusOK},
		{http.MethodGet, "/api/tournaments", http.StatusOK},
		{http.MethodGet, "/api/conditions/pitches", http.StatusOK},
		{http.MethodGet, "/api/ratings/leaderboard", http.StatusOK},
		{http.MethodGet, "/api/matches/1", http.StatusNotFound},
		{http.MethodPost, "/api/matches/1/simulate", http.StatusUnauthorized},
		{http.MethodPost, "/api/matches", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

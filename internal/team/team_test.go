package team

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/cricsim/config"
	"github.com/DhavalSuthar-24/cricsim/internal/models"
	"github.com/DhavalSuthar-24/cricsim/internal/player"
	"github.com/DhavalSuthar-24/cricsim/internal/testutil"
	"github.com/DhavalSuthar-24/cricsim/internal/user"
	"github.com/DhavalSuthar-24/cricsim/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "team-secret"

type fixture struct {
	db     *gorm.DB
	router *gin.Engine
	owner  *user.User
	other  *user.User
	team   *Team
	squad  []player.Player
}

func newFixture(t *testing.T, squadSize int) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t,
		&user.User{}, &user.Role{}, &Team{},
		&player.Player{}, &player.BowlingAttributes{}, &player.BattingAttributes{}, &player.KeepingAttributes{},
	)

	users := user.NewUserRepository(db)
	f := &fixture{
		db:    db,
		owner: &user.User{Username: "owner", Email: "owner@example.com"},
		other: &user.User{Username: "other", Email: "other@example.com"},
	}
	require.NoError(t, users.CreateUser(f.owner))
	require.NoError(t, users.CreateUser(f.other))

	f.team = &Team{Name: "Strikers", OwnerID: f.owner.ID, Budget: 1000, MoneyLeft: 1000}
	require.NoError(t, NewTeamRepository(db).CreateTeam(f.team))

	players := player.NewPlayerRepository(db)
	for i := 0; i < squadSize; i++ {
		p := player.Player{
			Name:         fmt.Sprintf("P%02d", i+1),
			OverallSkill: 40 + i,
			TeamID:       &f.team.ID,
			Batting:      models.NewSkill(60),
			Fielding:     models.NewSkill(50 + i),
		}
		if i%3 == 0 {
			p.Bowling = models.NewSkill(70)
		}
		if i == squadSize-1 {
			p.Wicketkeeping = models.NewSkill(80)
			p.KeepingAttributes = &player.KeepingAttributes{OverallSkill: models.NewSkill(80)}
		}
		require.NoError(t, players.CreatePlayer(&p))
		f.squad = append(f.squad, p)
	}

	f.router = gin.New()
	TeamRoutes(f.router.Group("/api"), db, &config.Config{}, testSecret)
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}, as *user.User) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		signed, err := token.GenerateJWT(as.ID, "", testSecret, 5)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestGetTeamWithRoster_LoadsAttributes(t *testing.T) {
	f := newFixture(t, 4)
	team, err := NewTeamRepository(f.db).GetTeamWithRoster(f.team.ID)
	require.NoError(t, err)
	require.Len(t, team.Players, 4)
	assert.Equal(t, "P01", team.Players[0].Name)
	require.NotNil(t, team.Players[3].KeepingAttributes)

	et := team.ToEngine()
	assert.Equal(t, f.owner.ID, et.OwnerID)
	require.NotNil(t, et.Players[3].KeepingProfile)
	assert.Nil(t, et.Players[0].KeepingProfile)

	missing, err := NewTeamRepository(f.db).GetTeamWithRoster(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetPlayingEleven_PicksMostSkilled(t *testing.T) {
	f := newFixture(t, 13)

	w := f.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d/playing-eleven", f.team.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp PlayingElevenResponse
	decodeData(t, w, &resp)
	require.Len(t, resp.Lineup, 11)
	assert.Equal(t, "P13", resp.Lineup[0].Name)
	assert.Equal(t, 1, resp.Lineup[0].Position)
	assert.True(t, resp.Lineup[0].KeepsWicket)
	for _, e := range resp.Lineup {
		assert.NotEqual(t, "P01", e.Name)
		assert.NotEqual(t, "P02", e.Name)
	}
}

func TestGetPlayingEleven_EmptyRoster(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(t, http.MethodGet, fmt.Sprintf("/api/teams/%d/playing-eleven", f.team.ID), nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = f.do(t, http.MethodGet, "/api/teams/999/playing-eleven", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetFirstEleven(t *testing.T) {
	f := newFixture(t, 13)
	path := fmt.Sprintf("/api/teams/%d/first-eleven", f.team.ID)
	body := SetFirstElevenRequest{PlayerIDs: []uint{f.squad[0].ID, f.squad[1].ID}}

	t.Run("unauthenticated", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodPut, path, body, nil).Code)
	})
	t.Run("not the owner", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodPut, path, body, f.other).Code)
	})
	t.Run("empty list", func(t *testing.T) {
		w := f.do(t, http.MethodPut, path, SetFirstElevenRequest{}, f.owner)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("owner", func(t *testing.T) {
		w := f.do(t, http.MethodPut, path, body, f.owner)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp PlayingElevenResponse
		decodeData(t, w, &resp)
		require.Len(t, resp.Lineup, 11)
		assert.Equal(t, "P01", resp.Lineup[0].Name)
		assert.True(t, resp.Lineup[0].FirstEleven)
		assert.Equal(t, "P02", resp.Lineup[1].Name)
		assert.Equal(t, "P13", resp.Lineup[2].Name)
	})
}

func TestCreateTeam(t *testing.T) {
	f := newFixture(t, 0)

	w := f.do(t, http.MethodPost, "/api/teams", CreateTeamRequest{Name: "Chargers"}, f.other)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created Team
	decodeData(t, w, &created)
	assert.Equal(t, f.other.ID, created.OwnerID)
	assert.Equal(t, 1000000, created.MoneyLeft)

	w = f.do(t, http.MethodPost, "/api/teams", CreateTeamRequest{Name: "Strikers"}, f.other)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(t, http.MethodGet, "/api/users/me/teams", nil, f.other)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []Team
	decodeData(t, w, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "Chargers", mine[0].Name)

	w = f.do(t, http.MethodGet, "/api/teams?name=strik", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []Team
	decodeData(t, w, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Strikers", found[0].Name)
}

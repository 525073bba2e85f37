package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type payload struct {
	Name  string `json:"name" binding:"required"`
	Overs int    `json:"overs" binding:"min=1,max=50"`
}

func TestSendValidationError(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			SendValidationError(c, err)
			return
		}
		SendSuccess(c, http.StatusOK, "", p)
	})

	tests := []struct {
		name   string
		body   string
		code   int
		fields []string
	}{
		{"valid", `{"name":"x","overs":20}`, http.StatusOK, nil},
		{"missing name and bad overs", `{"overs":60}`, http.StatusBadRequest, []string{"name", "overs"}},
		{"malformed", `{`, http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				return
			}
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			for _, f := range tt.fields {
				assert.Contains(t, resp.Errors, f)
			}
		})
	}
}

func TestSendPaginated(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		page, limit := PageParams(c)
		SendPaginated(c, http.StatusOK, "", []int{1, 2}, 25, page, limit)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?page=2&limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
	require.NotNil(t, resp.Pagination.NextPage)
	assert.Equal(t, 3, *resp.Pagination.NextPage)
}

func TestPageParams_Bounds(t *testing.T) {
	tests := []struct {
		query       string
		page, limit int
	}{
		{"", 1, 10},
		{"?page=0&limit=-1", 1, 10},
		{"?page=abc&limit=500", 1, 100},
		{"?page=4&limit=25", 4, 25},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
		page, limit := PageParams(c)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.limit, limit, tt.query)
	}
}

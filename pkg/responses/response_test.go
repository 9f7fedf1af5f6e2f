package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourhonour365/matchfeemate/pkg/apperrors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSendPaginated(t *testing.T) {
	tests := []struct {
		name        string
		totalItems  int64
		currentPage int
		pageSize    int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"middle page", 25, 2, 10, 3, true, true},
		{"first page", 25, 1, 10, 3, true, false},
		{"last page", 25, 3, 10, 3, false, true},
		{"single partial page", 4, 1, 10, 1, false, false},
		{"empty list", 0, 1, 10, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			SendPaginated(c, http.StatusOK, "", []string{"a"}, tt.totalItems, tt.currentPage, tt.pageSize)

			assert.Equal(t, http.StatusOK, w.Code)
			var body PaginatedResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "success", body.Status)
			assert.Equal(t, tt.totalItems, body.Pagination.TotalItems)
			assert.Equal(t, tt.wantPages, body.Pagination.TotalPages)
			assert.Equal(t, tt.currentPage, body.Pagination.CurrentPage)
			assert.Equal(t, tt.pageSize, body.Pagination.PageSize)
			assert.Equal(t, tt.wantNext, body.Pagination.HasNextPage)
			assert.Equal(t, tt.wantPrev, body.Pagination.HasPrevPage)
		})
	}
}

func TestSendAppError(t *testing.T) {
	t.Run("renders the carried status", func(t *testing.T) {
		c, w := newTestContext(t)
		SendAppError(c, apperrors.PermissionDenied("members only"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "members only", body.Message)
		assert.Equal(t, http.StatusForbidden, body.Code)
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		c, w := newTestContext(t)
		SendAppError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "fail", decodeError(t, w).Status)
	})
}

func TestBoundaryHelpers(t *testing.T) {
	tests := []struct {
		name        string
		send        func(c *gin.Context)
		wantStatus  int
		wantMessage string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, "Unauthorized access"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "captains only") }, http.StatusForbidden, "captains only"},
		{"conflict", func(c *gin.Context) { Conflict(c, "email already registered") }, http.StatusConflict, "email already registered"},
		{"bad request default", func(c *gin.Context) { BadRequest(c, "") }, http.StatusBadRequest, "Invalid request payload or parameters"},
		{"not found", func(c *gin.Context) { NotFound(c, "Club") }, http.StatusNotFound, "Club not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			tt.send(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

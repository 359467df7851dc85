package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		wantP, wantPer int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative", -3, -1, 1, 10},
		{"capped", 2, 500, 2, 100},
		{"kept", 4, 25, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, per := ClampPage(tt.page, tt.perPage)
			assert.Equal(t, tt.wantP, p)
			assert.Equal(t, tt.wantPer, per)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 21)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestFailWithError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   ErrCode
	}{
		{repository.ErrNotFound, http.StatusNotFound, ErrNotFound},
		{fmt.Errorf("add enrollment: %w", repository.ErrUnknownReference), http.StatusUnprocessableEntity, ErrUnknownReference},
		{repository.ErrDuplicateEmail, http.StatusConflict, ErrConflict},
		{assert.AnError, http.StatusInternalServerError, ErrInternal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FailWithError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, GetMessage(tt.code), body.Error.Message)
			assert.NotEmpty(t, body.Metadata.RequestID)
		})
	}
}

func TestRequestIDMiddleware_EchoesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { Success(c, http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc-123", body.Metadata.RequestID)
}

func TestRequestIDMiddleware_ReplacesUnusableHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { Success(c, http.StatusOK, "ok") })

	for _, bad := range []string{"forged\nline", "has space", strings.Repeat("a", maxRequestIDLen+1)} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", bad)
		r.ServeHTTP(w, req)

		got := w.Header().Get("X-Request-ID")
		assert.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestRequestIDMiddleware_LoggerCarriesID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestIDMiddleware(zerolog.New(&buf)))
	r.GET("/", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("handled")
		Success(c, http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "handled", line["message"])
}

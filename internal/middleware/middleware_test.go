package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/auth"
)

func TestOutcomeStatusCode(t *testing.T) {
	tests := []struct {
		status models.OutcomeStatus
		want   int
	}{
		{models.OutcomeOK, http.StatusOK},
		{models.OutcomeCreated, http.StatusCreated},
		{models.OutcomeAlreadyPresent, http.StatusConflict},
		{models.OutcomeNotFound, http.StatusNotFound},
		{models.OutcomeNotAllocated, http.StatusNotFound},
		{models.OutcomeInsufficientStock, http.StatusUnprocessableEntity},
		{models.OutcomeUnavailable, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeStatusCode(models.Outcome{Status: tt.status}))
		})
	}
}

func TestErrorToDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  dto.ErrorCode
	}{
		{"student not found", fmt.Errorf("student S1: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"key not found", apperrors.ErrKeyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid argument", apperrors.NewInvalidArgumentError("club \"Chess\" not found"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("bad grade"), http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"persistence disabled", apperrors.ErrPersistenceDisabled, http.StatusServiceUnavailable, dto.ErrorCodeUnavailableDB},
		{"cancelled", fmt.Errorf("shelving: %w", context.Canceled), http.StatusServiceUnavailable, dto.ErrorCodeInternalServer},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := errorToDetail(tt.err)
			assert.Equal(t, tt.wantCode, status)
			assert.Equal(t, tt.wantErr, detail.Code)
		})
	}
}

func newAuthRouter(t *testing.T, svc *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(svc)
	router := gin.New()
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	router := newAuthRouter(t, svc)

	adminToken, _, err := svc.GenerateAccessToken("admin", auth.RoleAdmin)
	require.NoError(t, err)
	viewerToken, _, err := svc.GenerateAccessToken("viewer", "VIEWER")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewerToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
		{"quoted admin", "\"Bearer " + adminToken + "\"", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	type gradeRequest struct {
		Grade string `json:"grade" binding:"required,grade"`
	}

	router := gin.New()
	router.POST("/grades", func(c *gin.Context) {
		var req gradeRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"grade":"A+"}`, http.StatusNoContent},
		{"invalid grade", `{"grade":"Z"}`, http.StatusBadRequest},
		{"missing grade", `{}`, http.StatusBadRequest},
		{"malformed", `{"grade":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRespondOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondOutcome(c, models.NewOutcome(models.OutcomeInsufficientStock, "No copies of %s", "Compilers"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, models.OutcomeInsufficientStock, resp.Outcome.Status)
	assert.Equal(t, "No copies of Compilers", resp.Message)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

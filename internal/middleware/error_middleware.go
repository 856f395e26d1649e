package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorToDetail(err error) (int, *dto.ErrorDetail) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrClubNotFound,
		apperrors.ErrSocietyNotFound,
		apperrors.ErrHostelNotFound,
		apperrors.ErrCanteenNotFound,
		apperrors.ErrKeyNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrPersistenceDisabled):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeUnavailableDB, "Database persistence is disabled")
	case apperrors.Is(err, context.Canceled, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Request interrupted")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// OutcomeStatusCode maps an operation outcome to its HTTP status
func OutcomeStatusCode(o models.Outcome) int {
	switch o.Status {
	case models.OutcomeOK:
		return http.StatusOK
	case models.OutcomeCreated:
		return http.StatusCreated
	case models.OutcomeAlreadyPresent:
		return http.StatusConflict
	case models.OutcomeNotFound, models.OutcomeNotAllocated:
		return http.StatusNotFound
	case models.OutcomeInsufficientStock, models.OutcomeUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}

// RespondOutcome writes the outcome envelope with the status of the outcome
func RespondOutcome(c *gin.Context, o models.Outcome, data interface{}) {
	c.JSON(OutcomeStatusCode(o), dto.NewOutcomeResponse(o, data))
}

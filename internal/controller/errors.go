package controller

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Anything
// unrecognized is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	var violation *model.InvariantViolation
	if errors.As(err, &violation) {
		util.Error(c, http.StatusUnprocessableEntity, violation.Error())
		return
	}

	switch {
	case errors.Is(err, model.ErrPermissionDenied):
		util.Forbidden(c)
	case errors.Is(err, model.ErrDuplicateAnswer),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrAlreadyOnCourse):
		util.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidScore),
		errors.Is(err, model.ErrAnswerAlreadyGraded),
		errors.Is(err, util.ErrInvalidInviteCode),
		errors.Is(err, util.ErrVerificationExpired),
		errors.Is(err, util.ErrInvalidCredentials),
		errors.Is(err, util.ErrUserNotVerified),
		errors.Is(err, util.ErrFileTooLarge):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrPostNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrAnswerNotFound),
		errors.Is(err, util.ErrInviteNotFound),
		errors.Is(err, util.ErrSubjectNotFound):
		util.NotFound(c)
	default:
		util.LogInternalError(c, err)
	}
}

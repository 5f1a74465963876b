package leaveerrors

import (
	"fmt"
	"net/http"

	"faculty-ops/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrFacultyNotFound = apperror.New(
		apperror.CodeNotFound,
		"faculty record not found, contact your administrator",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrToDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"to_date is required for multiple-day leave",
		http.StatusBadRequest,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave application not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave application is not in your review queue",
		http.StatusBadRequest,
	)
	ErrNotAReviewer = apperror.New(
		apperror.CodeForbidden,
		"role cannot review leave applications",
		http.StatusForbidden,
	)
)

// LimitExceeded names the category, mirroring the message applicants see.
func LimitExceeded(leaveType string) *apperror.AppError {
	return apperror.New(
		apperror.CodeLimitReached,
		fmt.Sprintf("You have exceeded the allowed limit for %s leaves.", leaveType),
		http.StatusUnprocessableEntity,
	)
}

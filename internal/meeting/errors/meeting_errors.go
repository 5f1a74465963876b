package meetingerrors

import (
	"net/http"

	"faculty-ops/internal/shared/apperror"
)

var (
	ErrInvalidOrganizerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid organizer id",
		http.StatusBadRequest,
	)
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"meeting not found",
		http.StatusNotFound,
	)
)

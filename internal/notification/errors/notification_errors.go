package notificationerrors

import (
	"net/http"

	"faculty-ops/internal/shared/apperror"
)

var ErrInvalidViewerID = apperror.New(
	apperror.CodeInvalidInput,
	"invalid viewer id",
	http.StatusBadRequest,
)

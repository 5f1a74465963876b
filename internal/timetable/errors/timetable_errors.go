package timetableerrors

import (
	"net/http"

	"faculty-ops/internal/shared/apperror"
)

var (
	ErrUnsupportedFileType = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported file type, expected .csv or .xlsx",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"file has no data rows",
		http.StatusBadRequest,
	)
	ErrMissingColumns = apperror.New(
		apperror.CodeInvalidInput,
		"header row is missing required columns (faculty, date, day, time, subject, class)",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)

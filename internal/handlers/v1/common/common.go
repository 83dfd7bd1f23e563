// Package common holds the request parsing and error mapping shared by the
// v1 handlers.
package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-engine/internal/service"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseOwner parses the X-Owner-ID header set by the authenticating proxy.
func ParseOwner(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID header")
	}
	return id, nil
}

// ParseID parses a UUID field named field.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields nil.
func ParseDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected YYYY-MM-DD", err)
	}
	return &date, nil
}

// FormatDate renders t as YYYY-MM-DD, or "" when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ServiceError maps a service error onto an HTTP error. message is used for
// storage failures so internal detail does not leak.
func ServiceError(err error, message string) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

package net

import (
	"net/http"

	perr "prokontra/internal/platform/errors"
)

// HTTPStatus maps a service error to its HTTP status, with nil meaning 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/devserver"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// ErrEmptyAuthorizationHeader is logged when a protected route is called
// without an "Authorization" header.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	errorResponse
}{
	{devserver.ErrInvalidData, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{devserver.ErrInvalidPagination, errorResponse{http.StatusBadRequest, app.MsgInvalidPagination}},
	{devserver.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidEmailPassword}},
	{devserver.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{devserver.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{devserver.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError maps a backend error to its status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}

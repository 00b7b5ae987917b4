package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// It extracts the token from the "Authorization" header, validates it with
// the backend and stores the user ID in the request context under
// [utils.UserIDCtxKey]. Requests without a header, with a malformed header
// or with an invalid or expired token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.backend.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}

// currentUser returns the authenticated user of r. The auth middleware
// guarantees it is set on protected routes.
func currentUser(r *http.Request) models.ID {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type registerResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// registerRequest mirrors models.RegisterRequest; the client never sends the
// confirmation.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.backend.Register(ctx, models.RegisterRequest{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, registerResponse{Message: "user created", User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, user, err := h.backend.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID.String()).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, loginResponse{Token: token, User: user}, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const defaultPageLimit = 10

type transactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	HasNextPage  bool                 `json:"hasNextPage"`
}

// decodeBody decodes the JSON body into v and answers 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}

// ── accounts ────────────────────────────────────────────────────────────────

// listAccounts answers with a single object when the user has exactly one
// account and with an array otherwise.
func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.backend.ListAccounts(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if len(accounts) == 1 {
		_, _ = utils.WriteJSON(w, accounts[0], http.StatusOK)
		return
	}
	_, _ = utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if !decodeBody(w, r, &account) {
		return
	}

	created, err := h.backend.CreateAccount(r.Context(), currentUser(r), account)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if !decodeBody(w, r, &account) {
		return
	}

	updated, err := h.backend.UpdateAccount(r.Context(), currentUser(r), account)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

// ── categories ──────────────────────────────────────────────────────────────

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.backend.ListCategories(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeBody(w, r, &category) {
		return
	}

	created, err := h.backend.CreateCategory(r.Context(), currentUser(r), category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeBody(w, r, &category) {
		return
	}

	updated, err := h.backend.UpdateCategory(r.Context(), currentUser(r), pathID(r), category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.DeleteCategory(r.Context(), currentUser(r), pathID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── transactions ────────────────────────────────────────────────────────────

// queryInt reads a positive integer query parameter. A missing parameter
// yields def; anything unparsable yields 0, which the backend rejects.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageLimit)

	result, err := h.backend.ListTransactions(r.Context(), currentUser(r), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, transactionsResponse{
		Transactions: result.Transactions,
		HasNextPage:  result.HasMore,
	}, http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction models.Transaction
	if !decodeBody(w, r, &transaction) {
		return
	}

	created, err := h.backend.CreateTransaction(r.Context(), currentUser(r), transaction)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction models.Transaction
	if !decodeBody(w, r, &transaction) {
		return
	}

	updated, err := h.backend.UpdateTransaction(r.Context(), currentUser(r), pathID(r), transaction)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.DeleteTransaction(r.Context(), currentUser(r), pathID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

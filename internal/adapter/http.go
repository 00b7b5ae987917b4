package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/normalize"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	// apiPrefix is appended to the configured address.
	apiPrefix = "/api"

	// HeaderRequestID correlates client and backend log lines.
	HeaderRequestID = "X-Request-ID"
)

// Collection field names the backend may wrap lists in.
const (
	fieldAccounts     = "accounts"
	fieldCategories   = "categories"
	fieldTransactions = "transactions"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. Requests go to adapterCfg.HTTPAddress + "/api" and carry
// the token currently returned by tokens.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	h.client.OnBeforeRequest(h.attachCredentials)
	h.client.OnAfterResponse(h.logResponse)

	return h, nil
}

// normalizeBaseURL validates raw and returns it with the "/api" prefix.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	base := strings.TrimRight(u.String(), "/")
	if !strings.HasSuffix(base, apiPrefix) {
		base += apiPrefix
	}
	return base, nil
}

// attachCredentials runs before every request. It sets the bearer token when
// one is held and leaves the header out otherwise.
func (h *httpServerAdapter) attachCredentials(_ *resty.Client, req *resty.Request) error {
	if h.tokens != nil {
		if token := strings.TrimSpace(h.tokens.Token()); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.SetHeader(HeaderRequestID, h.ids.Generate())
	}
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend response")
	return nil
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return transportError("register request", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. POST /api/auth/login; the token and
// profile are extracted by [ExtractLoginResult].
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/auth/login")
	if err != nil {
		return models.LoginResult{}, transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	result, err := ExtractLoginResult(resp.Body())
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "httpServerAdapter.Login").Msg("unusable login response")
		return models.LoginResult{}, err
	}

	return result, nil
}

// ListCategories implements [ServerAdapter]. GET /api/categories.
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	body, err := h.get(ctx, "/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return decodeCollection[models.Category](body, fieldCategories)
}

// CreateCategory implements [ServerAdapter]. POST /api/categories.
func (h *httpServerAdapter) CreateCategory(ctx context.Context, category models.Category) error {
	return h.send(ctx, resty.MethodPost, "/categories", category, "create category")
}

// UpdateCategory implements [ServerAdapter]. PUT /api/categories/{id}.
func (h *httpServerAdapter) UpdateCategory(ctx context.Context, id models.ID, category models.Category) error {
	return h.send(ctx, resty.MethodPut, "/categories/"+url.PathEscape(id.String()), category, "update category")
}

// DeleteCategory implements [ServerAdapter]. DELETE /api/categories/{id}.
func (h *httpServerAdapter) DeleteCategory(ctx context.Context, id models.ID) error {
	return h.send(ctx, resty.MethodDelete, "/categories/"+url.PathEscape(id.String()), nil, "delete category")
}

// ListAccounts implements [ServerAdapter]. GET /api/account. The backend
// answers with an array, an {"accounts": [...]} object or a single account.
func (h *httpServerAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	body, err := h.get(ctx, "/account", nil)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return decodeCollection[models.Account](body, fieldAccounts)
}

// CreateAccount implements [ServerAdapter]. POST /api/account.
func (h *httpServerAdapter) CreateAccount(ctx context.Context, account models.Account) error {
	return h.send(ctx, resty.MethodPost, "/account", account, "create account")
}

// UpdateAccount implements [ServerAdapter]. PUT /api/account.
func (h *httpServerAdapter) UpdateAccount(ctx context.Context, account models.Account) error {
	return h.send(ctx, resty.MethodPut, "/account", account, "update account")
}

// ListTransactions implements [ServerAdapter].
// GET /api/transactions?page=&limit=.
func (h *httpServerAdapter) ListTransactions(ctx context.Context, page, limit int) (models.TransactionPage, error) {
	body, err := h.get(ctx, "/transactions", map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	})
	if err != nil {
		return models.TransactionPage{}, fmt.Errorf("list transactions: %w", err)
	}

	items, err := decodeCollection[models.Transaction](body, fieldTransactions)
	if err != nil {
		return models.TransactionPage{}, err
	}

	return models.TransactionPage{
		Page:         page,
		Transactions: items,
		HasMore:      hasNextPage(body),
	}, nil
}

// CreateTransaction implements [ServerAdapter]. POST /api/transactions.
func (h *httpServerAdapter) CreateTransaction(ctx context.Context, transaction models.Transaction) error {
	return h.send(ctx, resty.MethodPost, "/transactions", transaction, "create transaction")
}

// UpdateTransaction implements [ServerAdapter]. PUT /api/transactions/{id}.
func (h *httpServerAdapter) UpdateTransaction(ctx context.Context, id models.ID, transaction models.Transaction) error {
	return h.send(ctx, resty.MethodPut, "/transactions/"+url.PathEscape(id.String()), transaction, "update transaction")
}

// DeleteTransaction implements [ServerAdapter]. DELETE /api/transactions/{id}.
func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, id models.ID) error {
	return h.send(ctx, resty.MethodDelete, "/transactions/"+url.PathEscape(id.String()), nil, "delete transaction")
}

func (h *httpServerAdapter) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := h.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, transportError("request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) send(ctx context.Context, method, path string, body any, op string) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func decodeCollection[T any](body []byte, field string) ([]T, error) {
	items, err := normalize.Slice[T](body, field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return items, nil
}

// hasNextPage reads the "hasNextPage" flag of a wrapped transactions page.
// Any other shape has no next page.
func hasNextPage(body []byte) bool {
	var page struct {
		HasNextPage bool `json:"hasNextPage"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return false
	}
	return page.HasNextPage
}

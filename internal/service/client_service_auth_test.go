package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/session"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// newTestAuthSvc builds a clientAuthService over mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionManager) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)

	svc := NewClientAuthService(mockAdapter, mockSession, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockSession
}

func mustUser(t *testing.T, raw string) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	return u
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.RegisterRequest) error {
			assert.Equal(t, "Ann", req.Name)
			assert.Equal(t, "ann@example.com", req.Email)
			return nil
		},
	)

	err := svc.Register(ctx, models.RegisterRequest{
		Name: "  Ann ", Email: " ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
}

func TestClientAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   models.RegisterRequest
		field string
	}{
		{name: "no name", req: models.RegisterRequest{Email: "a@b", Password: "secret1", ConfirmPassword: "secret1"}, field: "name"},
		{name: "blank name", req: models.RegisterRequest{Name: "  ", Email: "a@b", Password: "secret1", ConfirmPassword: "secret1"}, field: "name"},
		{name: "no email", req: models.RegisterRequest{Name: "A", Password: "secret1", ConfirmPassword: "secret1"}, field: "email"},
		{name: "no password", req: models.RegisterRequest{Name: "A", Email: "a@b"}, field: "password"},
		{name: "short password", req: models.RegisterRequest{Name: "A", Email: "a@b", Password: "12345", ConfirmPassword: "12345"}, field: "password"},
		{name: "mismatch", req: models.RegisterRequest{Name: "A", Email: "a@b", Password: "secret1", ConfirmPassword: "secret2"}, field: "confirmation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no adapter call is expected
			svc, _, _ := newTestAuthSvc(t, ctrl)

			err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestClientAuthService_Register_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	reqErr := adapter.NewRequestError(409, "email already exists")
	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(reqErr)

	err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "A", Email: "a@b", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrRequestFailed)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, "email already exists", UserMessage(err, "fallback"))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := mustUser(t, `{"id":1,"name":"Ann"}`)

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, models.Credentials{Email: "a@b", Password: "pw"}).
			Return(models.LoginResult{Token: "t", User: user}, nil),
		mockSession.EXPECT().Login(ctx, user, "t").Return(nil),
	)

	got, err := svc.Login(ctx, models.Credentials{Email: " a@b ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

func TestClientAuthService_Login_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Login(context.Background(), models.Credentials{Password: "pw"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestClientAuthService_Login_AdapterErrorLeavesSessionAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, adapter.ErrInvalidCredentialResponse)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b", Password: "pw"})
	assert.ErrorIs(t, err, adapter.ErrInvalidCredentialResponse)
	assert.Equal(t, "invalid response from server", UserMessage(err, "fallback"))
}

func TestClientAuthService_Login_EmptyProfileIsInvalidResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{Token: "t"}, nil)
	mockSession.EXPECT().Login(gomock.Any(), models.User{}, "t").Return(session.ErrEmptyUser)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b", Password: "pw"})
	assert.ErrorIs(t, err, adapter.ErrInvalidCredentialResponse)
	assert.ErrorIs(t, err, session.ErrEmptyUser)
}

func TestClientAuthService_Login_PersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)

	diskFull := errors.New("disk full")
	user := mustUser(t, `{"id":1}`)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{Token: "t", User: user}, nil)
	mockSession.EXPECT().Login(gomock.Any(), user, "t").Return(diskFull)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b", Password: "pw"})
	assert.ErrorIs(t, err, diskFull)
	assert.NotErrorIs(t, err, adapter.ErrInvalidCredentialResponse)
}

func TestClientAuthService_Login_WithRealSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	sess := session.New(store.NewMemoryTokenStore(), logger.Nop())
	require.NoError(t, sess.Init(context.Background()))
	svc := NewClientAuthService(mockAdapter, sess, logger.Nop())

	user := mustUser(t, `{"id":7,"email":"a@b"}`)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{Token: "tok", User: user}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, session.Authenticated, sess.State())
	assert.Equal(t, "tok", sess.Token())

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, session.Anonymous, sess.State())
	assert.Empty(t, sess.Token())
}

func TestClientAuthService_Login_EmptyNestedUserKeepsAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	sess := session.New(store.NewMemoryTokenStore(), logger.Nop())
	require.NoError(t, sess.Init(context.Background()))
	svc := NewClientAuthService(mockAdapter, sess, logger.Nop())

	result, err := adapter.ExtractLoginResult([]byte(`{"token":"t","user":{}}`))
	require.NoError(t, err)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(result, nil)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "a@b", Password: "pw"})
	assert.ErrorIs(t, err, adapter.ErrInvalidCredentialResponse)
	assert.Equal(t, session.Anonymous, sess.State())
	assert.Empty(t, sess.Token())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)

	mockSession.EXPECT().Logout(gomock.Any()).Return(errors.New("locked"))

	err := svc.Logout(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logout")
}

func TestClientServices_LogoutDropsLoadedTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)
	services := NewClientServices(mockAdapter, mockSession, 10, logger.Nop())
	ctx := context.Background()

	mockAdapter.EXPECT().ListTransactions(gomock.Any(), 1, 10).
		Return(models.TransactionPage{Transactions: []models.Transaction{{ID: "t1"}}, HasMore: true}, nil)
	_, err := services.TransactionFeed.Reload(ctx)
	require.NoError(t, err)
	require.Len(t, services.TransactionFeed.State().Items, 1)

	mockSession.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, services.AuthService.Logout(ctx))

	state := services.TransactionFeed.State()
	assert.Empty(t, state.Items)
	assert.False(t, state.HasMore)
}

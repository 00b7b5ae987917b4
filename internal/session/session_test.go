package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

func newTestSession(t *testing.T) (*Session, *mock.MockTokenStore) {
	ctrl := gomock.NewController(t)
	tokenStore := mock.NewMockTokenStore(ctrl)
	return New(tokenStore, logger.Nop()), tokenStore
}

func sampleUser(t *testing.T) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Ann"}`), &u))
	return u
}

func TestNew_StartsInitializing(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, Initializing, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestInit_NothingPersisted(t *testing.T) {
	s, tokenStore := newTestSession(t)
	tokenStore.EXPECT().Load(gomock.Any()).Return(models.PersistedSession{}, false, nil)

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, Anonymous, s.State())
}

func TestInit_RestoresPersistedSession(t *testing.T) {
	s, tokenStore := newTestSession(t)
	user := sampleUser(t)
	tokenStore.EXPECT().Load(gomock.Any()).Return(models.PersistedSession{Token: "tok", User: user}, true, nil)

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, Authenticated, s.State())
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok", s.Token())

	got, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestInit_StorageErrorFallsBackToAnonymous(t *testing.T) {
	s, tokenStore := newTestSession(t)
	tokenStore.EXPECT().Load(gomock.Any()).Return(models.PersistedSession{}, false, errors.New("io"))

	err := s.Init(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Anonymous, s.State())
}

func TestInit_ReadsStoreOnce(t *testing.T) {
	s, tokenStore := newTestSession(t)
	tokenStore.EXPECT().Load(gomock.Any()).
		Return(models.PersistedSession{Token: "tok", User: sampleUser(t)}, true, nil).
		Times(1)

	require.NoError(t, s.Init(context.Background()))
	tokenStore.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, s.Logout(context.Background()))
	// a second Init must not resurrect the persisted session
	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, Anonymous, s.State())
}

func TestLogin_Validation(t *testing.T) {
	s, _ := newTestSession(t)

	assert.ErrorIs(t, s.Login(context.Background(), sampleUser(t), ""), ErrEmptyToken)
	assert.ErrorIs(t, s.Login(context.Background(), models.User{}, "tok"), ErrEmptyUser)
	assert.Equal(t, Initializing, s.State())
}

func TestLogin_WritesThroughBeforeTransition(t *testing.T) {
	s, tokenStore := newTestSession(t)
	user := sampleUser(t)

	tokenStore.EXPECT().Save(gomock.Any(), user, "tok").DoAndReturn(
		func(_ context.Context, _ models.User, _ string) error {
			// still not authenticated while the write is in progress
			assert.Empty(t, s.token)
			return nil
		})

	require.NoError(t, s.Login(context.Background(), user, "tok"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok", s.Token())
}

func TestLogin_StoreFailureKeepsState(t *testing.T) {
	s, tokenStore := newTestSession(t)
	tokenStore.EXPECT().Load(gomock.Any()).Return(models.PersistedSession{}, false, nil)
	require.NoError(t, s.Init(context.Background()))

	tokenStore.EXPECT().Save(gomock.Any(), gomock.Any(), "tok").Return(errors.New("disk full"))

	err := s.Login(context.Background(), sampleUser(t), "tok")
	require.Error(t, err)
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Token())
}

func TestLogout_ClearsEvenOnStoreError(t *testing.T) {
	s, tokenStore := newTestSession(t)
	tokenStore.EXPECT().Save(gomock.Any(), gomock.Any(), "tok").Return(nil)
	require.NoError(t, s.Login(context.Background(), sampleUser(t), "tok"))

	tokenStore.EXPECT().Clear(gomock.Any()).Return(errors.New("readonly"))

	err := s.Logout(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestInit_DoesNotOverrideEarlierLogin(t *testing.T) {
	s, tokenStore := newTestSession(t)
	user := sampleUser(t)

	tokenStore.EXPECT().Save(gomock.Any(), user, "fresh").Return(nil)
	require.NoError(t, s.Login(context.Background(), user, "fresh"))

	tokenStore.EXPECT().Load(gomock.Any()).Return(models.PersistedSession{Token: "stale", User: user}, true, nil)
	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, "fresh", s.Token())
}

func TestSession_RestartRoundTrip(t *testing.T) {
	ctx := context.Background()
	tokenStore := store.NewMemoryTokenStore()
	user := sampleUser(t)

	first := New(tokenStore, logger.Nop())
	require.NoError(t, first.Init(ctx))
	require.NoError(t, first.Login(ctx, user, "tok"))

	second := New(tokenStore, logger.Nop())
	require.NoError(t, second.Init(ctx))
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "tok", second.Token())

	require.NoError(t, second.Logout(ctx))
	third := New(tokenStore, logger.Nop())
	require.NoError(t, third.Init(ctx))
	assert.Equal(t, Anonymous, third.State())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemoryTokenStore(), logger.Nop())
	require.NoError(t, s.Init(ctx))
	user := sampleUser(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Login(ctx, user, "tok")
			_ = s.Logout(ctx)
		}()
		go func() {
			defer wg.Done()
			// token and state are always observed as a consistent pair
			if s.IsAuthenticated() {
				_ = s.Token()
			}
		}()
	}
	wg.Wait()

	assert.NotEqual(t, Initializing, s.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initializing", Initializing.String())
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unknown", State(42).String())
}

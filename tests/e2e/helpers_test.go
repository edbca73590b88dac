//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/textcomm/textcomm-server/internal/adapter/blob"
	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	authmethodrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/authmethod"
	dmrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/directmessage"
	grouprepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/group"
	"github.com/textcomm/textcomm-server/internal/adapter/postgres/testhelper"
	userrepo "github.com/textcomm/textcomm-server/internal/adapter/postgres/user"
	"github.com/textcomm/textcomm-server/internal/auth"
	"github.com/textcomm/textcomm-server/internal/authz"
	"github.com/textcomm/textcomm-server/internal/config"
	accountsvc "github.com/textcomm/textcomm-server/internal/service/account"
	authsvc "github.com/textcomm/textcomm-server/internal/service/auth"
	chatsvc "github.com/textcomm/textcomm-server/internal/service/chat"
	groupsvc "github.com/textcomm/textcomm-server/internal/service/group"
	"github.com/textcomm/textcomm-server/internal/transport/middleware"
	"github.com/textcomm/textcomm-server/internal/transport/rest"
)

const (
	seedAdminEmail    = "admin@tc.local"
	seedAdminPassword = "admin123"
)

var emailCounter atomic.Int64

// uniqueEmail returns a fresh address so tests sharing the database
// never collide on the email uniqueness constraint.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), emailCounter.Add(1))
}

// testServer is the full application stack over a real database.
type testServer struct {
	*httptest.Server
}

// newTestServer boots the whole stack: migrated PostgreSQL, repositories,
// services, seed admin, middleware chain, and an httptest server.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		JWTSecret:         "e2e-secret-thats-long-enough-for-validation",
		JWTIssuer:         "textcomm-e2e",
		AccessTokenTTL:    time.Hour,
		PasswordHashCost:  bcrypt.MinCost,
		MinPasswordLength: 6,
		SeedAdminEmail:    seedAdminEmail,
		SeedAdminPassword: seedAdminPassword,
	}

	blobs, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	users := userrepo.New(pool)
	groups := grouprepo.New(pool)
	messages := dmrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	guard := authz.NewGuard(authCfg.SeedAdminEmail)
	jwtManager := auth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, authMethods, tx, jwtManager, authCfg)
	chatService := chatsvc.NewService(logger, users, messages)
	groupService := groupsvc.NewService(logger, groups, guard, tx)
	accountService := accountsvc.NewService(logger, users, messages, groups, authMethods, blobs, guard, tx,
		config.UploadsConfig{Dir: t.TempDir(), MaxSizeBytes: 2 << 20})

	require.NoError(t, authService.EnsureSeedAdmin(context.Background()))

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Chat:    rest.NewChatHandler(chatService, logger),
		Group:   rest.NewGroupHandler(groupService, logger),
		Profile: rest.NewProfileHandler(accountService, logger),
		Admin:   rest.NewAdminHandler(accountService, groupService, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
		Avatars: blobs,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv}
}

// do sends a JSON request with an optional bearer token and decodes the
// response body when out is non-nil.
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type authPayload struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

type userPayload struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
}

// registerUser creates a fresh account and returns its token and payload.
func (s *testServer) registerUser(t *testing.T, prefix string) authPayload {
	t.Helper()

	var result authPayload
	resp := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":       uniqueEmail(prefix),
		"password":    "secret1",
		"displayName": prefix,
	}, &result)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, result.AccessToken)
	return result
}

// loginSeedAdmin logs in as the protected administrator.
func (s *testServer) loginSeedAdmin(t *testing.T) authPayload {
	t.Helper()

	var result authPayload
	resp := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    seedAdminEmail,
		"password": seedAdminPassword,
	}, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, result.AccessToken)
	return result
}

// createGroup creates a group as the given admin and returns its ID.
func (s *testServer) createGroup(t *testing.T, adminToken, name string) string {
	t.Helper()

	var group struct {
		ID string `json:"id"`
	}
	resp := s.do(t, http.MethodPost, "/api/admin/groups", adminToken, map[string]string{"name": name}, &group)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, group.ID)
	return group.ID
}

// addMembers puts the given users into the group.
func (s *testServer) addMembers(t *testing.T, adminToken, groupID string, userIDs ...string) {
	t.Helper()

	resp := s.do(t, http.MethodPost, "/api/admin/groups/"+groupID+"/members", adminToken,
		map[string][]string{"userIds": userIDs}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/service"
	"github.com/mignatov/authkeeper/internal/session"
	"github.com/mignatov/authkeeper/internal/utils"
	"github.com/mignatov/authkeeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn           func(ctx context.Context, username, password string) (service.RegisterResult, error)
	loginFn              func(ctx context.Context, username, password string, sink session.Sink) (service.LoginResult, error)
	logoutFn             func(ctx context.Context, sink session.Sink)
	createSessionTokenFn func(ctx context.Context, identity session.Identity, sessionID string) (models.Token, error)
	parseSessionTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (service.RegisterResult, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string, sink session.Sink) (service.LoginResult, error) {
	return m.loginFn(ctx, username, password, sink)
}

func (m *mockAuthService) Logout(ctx context.Context, sink session.Sink) {
	if m.logoutFn != nil {
		m.logoutFn(ctx, sink)
		return
	}
	sink.Clear()
}

func (m *mockAuthService) CreateSessionToken(ctx context.Context, identity session.Identity, sessionID string) (models.Token, error) {
	return m.createSessionTokenFn(ctx, identity, sessionID)
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseSessionTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock and a
// fresh session registry.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) (*Handler, *session.Registry) {
	t.Helper()
	registry := session.NewRegistry()
	svcs := &service.Services{AuthService: auth}
	return NewHandler(svcs, registry, time.Hour, logger.Nop()), registry
}

// jsonBody serialises a value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeStatus unmarshals the recorded response into a StatusResponse.
func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) models.StatusResponse {
	t.Helper()
	var response models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

// validRegistration is a payload satisfying every validation rule.
var validRegistration = models.RegisterRequest{
	Username:        "alice",
	Password:        "Password1",
	ConfirmPassword: "Password1",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, _ string) (service.RegisterResult, error) {
			return service.RegisterResult{
				Status: service.RegisterCreated,
				User:   models.User{UserID: 1, Username: username},
			}, nil
		},
	}

	h, _ := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	response := decodeStatus(t, rec)
	assert.Equal(t, models.StatusSuccess, response.Status)
	assert.Equal(t, "Registration successful!", response.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", decodeStatus(t, rec).Message)
}

// Validation failures answer with the first violated rule, verbatim.
func TestRegister_ValidationMessages(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})

	cases := map[string]struct {
		payload models.RegisterRequest
		message string
	}{
		"missing username": {
			payload: models.RegisterRequest{Password: "Password1", ConfirmPassword: "Password1"},
			message: "Username is required.",
		},
		"short username": {
			payload: models.RegisterRequest{Username: "al", Password: "Password1", ConfirmPassword: "Password1"},
			message: "Username must be at least 3 characters long.",
		},
		"missing password": {
			payload: models.RegisterRequest{Username: "alice"},
			message: "Password is required.",
		},
		"mismatched confirmation": {
			payload: models.RegisterRequest{Username: "alice", Password: "Password1", ConfirmPassword: "Password2"},
			message: "Passwords do not match.",
		},
		"weak password": {
			payload: models.RegisterRequest{Username: "alice", Password: "password", ConfirmPassword: "password"},
			message: "Password must be at least 8 characters long and include uppercase, lowercase, and a number.",
		},
		"weak password with mismatched confirmation": {
			payload: models.RegisterRequest{Username: "alice", Password: "weak", ConfirmPassword: "weaker"},
			message: "Passwords do not match.",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, tc.payload)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, decodeStatus(t, rec).Message)
		})
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (service.RegisterResult, error) {
			return service.RegisterResult{Status: service.RegisterUsernameTaken}, nil
		},
	}

	h, _ := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already exists.", decodeStatus(t, rec).Message)
}

func TestRegister_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (service.RegisterResult, error) {
			return service.RegisterResult{}, errors.New("connection refused")
		},
	}

	h, _ := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, models.StatusError, decodeStatus(t, rec).Status)
}

// Surrounding whitespace in the username is trimmed before validation.
func TestRegister_TrimsUsername(t *testing.T) {
	var gotUsername string
	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, _ string) (service.RegisterResult, error) {
			gotUsername = username
			return service.RegisterResult{Status: service.RegisterCreated, User: models.User{UserID: 1, Username: username}}, nil
		},
	}

	payload := models.RegisterRequest{Username: "  alice  ", Password: "Password1", ConfirmPassword: "Password1"}

	h, _ := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, payload)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotUsername)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"
	identity := session.Identity{UserID: 1, Username: "alice"}

	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string, sink session.Sink) (service.LoginResult, error) {
			sink.Establish(identity)
			return service.LoginResult{Status: service.LoginAuthenticated, Identity: identity}, nil
		},
		createSessionTokenFn: func(_ context.Context, _ session.Identity, _ string) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h, registry := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "Password1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Equal(t, "Login successful", decodeStatus(t, rec).Message)
	assert.Equal(t, 1, registry.Len())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, signedToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_Rejected(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string, _ session.Sink) (service.LoginResult, error) {
			return service.LoginResult{Status: service.LoginRejected}, nil
		},
	}

	h, registry := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeStatus(t, rec).Message)
	assert.Empty(t, rec.Result().Cookies())
	assert.Zero(t, registry.Len(), "rejected login must leave no registry entry")
}

func TestLogin_MissingCredentials(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})

	for name, payload := range map[string]models.LoginRequest{
		"no username": {Password: "Password1"},
		"no password": {Username: "alice"},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, payload)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Username and password required", decodeStatus(t, rec).Message)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", decodeStatus(t, rec).Message)
}

func TestLogin_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string, _ session.Sink) (service.LoginResult, error) {
			return service.LoginResult{}, errors.New("connection refused")
		},
	}

	h, _ := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "Password1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// If the session token cannot be minted the freshly established registry
// entry is rolled back so no orphan session survives the failed login.
func TestLogin_TokenCreationFailure_RollsBackSession(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string, sink session.Sink) (service.LoginResult, error) {
			identity := session.Identity{UserID: 1, Username: "alice"}
			sink.Establish(identity)
			return service.LoginResult{Status: service.LoginAuthenticated, Identity: identity}, nil
		},
		createSessionTokenFn: func(_ context.Context, _ session.Identity, _ string) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}

	h, registry := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "Password1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, registry.Len())
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_WithActiveSession(t *testing.T) {
	h, registry := newHandlerWithAuth(t, &mockAuthService{})

	token, sink := registry.Open()
	sink.Establish(session.Identity{UserID: 1, Username: "alice"})
	require.Equal(t, 1, registry.Len())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(utils.WithSessionSink(req.Context(), registry.Handle(token)))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out", decodeStatus(t, rec).Message)
	assert.Zero(t, registry.Len())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge, "session cookie must be expired")
}

func TestLogout_WithoutSession(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out", decodeStatus(t, rec).Message)
}

// ─────────────────────────────────────────────
// session
// ─────────────────────────────────────────────

func TestSession_Authenticated(t *testing.T) {
	h, registry := newHandlerWithAuth(t, &mockAuthService{})

	token, sink := registry.Open()
	sink.Establish(session.Identity{UserID: 42, Username: "alice"})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req = req.WithContext(utils.WithSessionSink(req.Context(), registry.Handle(token)))
	rec := httptest.NewRecorder()

	h.session(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.StatusSuccess, response.Status)
	assert.Equal(t, int64(42), response.UserID)
	assert.Equal(t, "alice", response.Username)
}

func TestSession_NoSinkInContext(t *testing.T) {
	h, _ := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	rec := httptest.NewRecorder()

	h.session(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", decodeStatus(t, rec).Message)
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/delivery/http/validator"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// fakeAuthUsecase returns canned results so handler tests exercise only the
// HTTP boundary.
type fakeAuthUsecase struct {
	registerOut *usecase.AuthOutput
	registerErr error
	loginOut    *usecase.AuthOutput
	loginErr    error
}

func (f *fakeAuthUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return f.registerOut, f.registerErr
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return f.loginOut, f.loginErr
}

func newTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func testAuthOutput() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		User: &entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			Name:         "Alice",
			PasswordHash: "$2a$10$secret-material-that-must-not-leak",
			CreatedAt:    time.Now(),
		},
		Token: "issued-token",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	output := testAuthOutput()
	e := newTestServer(&fakeAuthUsecase{registerOut: output})

	rec := postJSON(e, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"open sesame"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Code)

	data, ok := resp.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "issued-token", data["token"])

	user, ok := data["user"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, output.User.ID.String(), user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["name"])

	// Neither the password nor its hash appears anywhere in the body
	assert.NotContains(t, rec.Body.String(), "open sesame")
	assert.NotContains(t, rec.Body.String(), output.User.PasswordHash)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	e := newTestServer(&fakeAuthUsecase{
		registerErr: domainerrors.ErrEmailAlreadyInUse.WrapMessage("registration failed"),
	})

	rec := postJSON(e, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"open sesame"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_ALREADY_IN_USE", resp.Error.Code)
}

func TestAuthHandler_RegisterWithoutName(t *testing.T) {
	output := testAuthOutput()
	output.User.Name = ""
	e := newTestServer(&fakeAuthUsecase{registerOut: output})

	// Name is an optional display string; omitting it is a valid registration
	rec := postJSON(e, "/api/auth/register",
		`{"email":"alice@example.com","password":"open sesame"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "issued-token", data["token"])

	user, ok := data["user"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "", user["name"])
}

func TestAuthHandler_RegisterPasswordOverByteLimit(t *testing.T) {
	e := newTestServer(&fakeAuthUsecase{})

	// 40 two-byte runes: within any rune-counting limit but over bcrypt's
	// 72-byte input cap, so the boundary must reject it up front.
	password := strings.Repeat("é", 40)
	rec := postJSON(e, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"`+password+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestAuthHandler_RegisterValidationFailure(t *testing.T) {
	e := newTestServer(&fakeAuthUsecase{})

	// Missing password
	rec := postJSON(e, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestAuthHandler_RegisterMalformedBody(t *testing.T) {
	e := newTestServer(&fakeAuthUsecase{})

	rec := postJSON(e, "/api/auth/register", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	output := testAuthOutput()
	e := newTestServer(&fakeAuthUsecase{loginOut: output})

	rec := postJSON(e, "/api/auth/login",
		`{"email":"alice@example.com","password":"open sesame"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "issued-token", data["token"])
	assert.NotContains(t, rec.Body.String(), output.User.PasswordHash)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	e := newTestServer(&fakeAuthUsecase{
		loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed"),
	})

	rec := postJSON(e, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong guess"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

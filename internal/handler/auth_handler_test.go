package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prorent/internal/domain"
	"prorent/internal/handler"
	"prorent/internal/service"
	"prorent/mocks"
)

func newAuthHandler() (*handler.AuthHandler, *mocks.MockAuthService) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)
	return h, mockSvc
}

func postJSON(t *testing.T, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	created := &domain.User{ID: 1, Email: "jane@example.com", Name: "Jane", Role: domain.RoleCustomer}
	mockSvc.On("Signup", mock.Anything, mock.AnythingOfType("service.SignupInput")).Return(created, nil)

	w, c := postJSON(t, "/api/auth/signup", gin.H{
		"email": "jane@example.com", "password": "Str0ng@Pass", "name": "Jane",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotContains(t, w.Body.String(), "password_hash")
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	h, mockSvc := newAuthHandler()

	w, c := postJSON(t, "/api/auth/signup", gin.H{"email": "jane@example.com"})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Signup")
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("Signup", mock.Anything, mock.AnythingOfType("service.SignupInput")).
		Return(nil, domain.ErrDuplicateEmail)

	w, c := postJSON(t, "/api/auth/signup", gin.H{
		"email": "jane@example.com", "password": "Str0ng@Pass", "name": "Jane",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_EMAIL", resp.Error.Code)
}

func TestAuthHandler_Signup_WeakPassword(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("Signup", mock.Anything, mock.AnythingOfType("service.SignupInput")).
		Return(nil, domain.ErrWeakPassword)

	w, c := postJSON(t, "/api/auth/signup", gin.H{
		"email": "jane@example.com", "password": "weakpass1", "name": "Jane",
	})

	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WEAK_PASSWORD", resp.Error.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	mockSvc.On("Login", mock.Anything, service.LoginInput{
		Email: "jane@example.com", Password: "Str0ng@Pass",
	}).Return(pair, nil)

	w, c := postJSON(t, "/api/auth/login", gin.H{
		"email": "jane@example.com", "password": "Str0ng@Pass",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"access"`)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w, c := postJSON(t, "/api/auth/login", gin.H{
		"email": "jane@example.com", "password": "wrong",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockSvc.On("RefreshToken", mock.Anything, "old-refresh").Return(pair, nil)

	w, c := postJSON(t, "/api/auth/refresh", gin.H{"refresh_token": "old-refresh"})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"new-access"`)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_RefreshToken_Expired(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("RefreshToken", mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

	w, c := postJSON(t, "/api/auth/refresh", gin.H{"refresh_token": "stale"})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

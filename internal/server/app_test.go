package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Bodies over 1 MiB are refused with 413 before any middleware or handler
// runs, on every route. The /post case carries no bearer token on purpose:
// the cap fires ahead of the auth gate, so 413 wins over 403.
func TestBodyLimitRejectsOversizedRequests(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	s := newTestServer(t, testConfig(), mockUsers, mockPosts)

	app := NewApp()
	s.SetupRoutes(app)

	oversized := bytes.Repeat([]byte("a"), maxBodyBytes+1)

	for _, path := range []string{"/user/signup", "/post"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(oversized))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		})
	}

	mockUsers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A request within the cap flows through the same app wiring to the handler.
func TestBodyLimitAllowsNormalRequests(t *testing.T) {
	mockUsers := new(MockUserRepository)
	s := newTestServer(t, testConfig(), mockUsers, nil)

	mockUsers.On("GetByEmail", mock.Anything, "cap@example.com").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	app := NewApp()
	s.SetupRoutes(app)

	body, _ := json.Marshal(map[string]string{
		"email":    "cap@example.com",
		"fullname": "Under Cap",
		"password": "Password123!",
	})
	req := httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockUsers.AssertExpectations(t)
}
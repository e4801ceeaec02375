package handlers

import (
	"net/http"
	"strings"
	"testing"

	"listly/models"
	"listly/testutil"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    models.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "valid registration",
			requestBody:    models.RegisterRequest{Name: "Ana", Username: "ana1", Password: "pw1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing name",
			requestBody:    models.RegisterRequest{Username: "bob1", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			requestBody:    models.RegisterRequest{Name: "Bob", Username: "bob1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace-only username",
			requestBody:    models.RegisterRequest{Name: "Bob", Username: "   ", Password: "pw"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do("POST", "/register", tt.requestBody)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.UserResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success || resp.User.Username != tt.requestBody.Username {
					t.Errorf("Unexpected response: %+v", resp)
				}
				if resp.User.ID == "" {
					t.Error("Expected server-assigned user id")
				}
			}
		})
	}
}

func TestRegisterNeverLeaksCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("POST", "/register", models.RegisterRequest{Name: "Ana", Username: "ana1", Password: "s3cret-pw"})
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	if strings.Contains(body, "s3cret-pw") {
		t.Error("Response body contains the plaintext password")
	}
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Errorf("Response body leaks credential material: %s", body)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ana", "ana1", "pw1")

	// Same username again, different everything else
	w := env.do("POST", "/register", models.RegisterRequest{Name: "Other", Username: "ana1", Password: "pw2"})
	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success {
		t.Error("Expected success=false for duplicate username")
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ana", "ana1", "pw1")

	tests := []struct {
		name           string
		requestBody    models.LoginRequest
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			requestBody:    models.LoginRequest{Username: "ana1", Password: "pw1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			requestBody:    models.LoginRequest{Username: "ana1", Password: "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown username",
			requestBody:    models.LoginRequest{Username: "ghost", Password: "pw1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			requestBody:    models.LoginRequest{Username: "ana1"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do("POST", "/login", tt.requestBody)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.UserResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.User.Name != "Ana" {
					t.Errorf("Unexpected identity: %+v", resp.User)
				}
			}
		})
	}
}

// Unknown-user and wrong-password responses must be indistinguishable so
// the login endpoint cannot be used to enumerate usernames.
func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Ana", "ana1", "pw1")

	wrongPw := env.do("POST", "/login", models.LoginRequest{Username: "ana1", Password: "bad"})
	unknownUser := env.do("POST", "/login", models.LoginRequest{Username: "ghost", Password: "bad"})

	if wrongPw.Code != unknownUser.Code {
		t.Errorf("Status codes differ: %d vs %d", wrongPw.Code, unknownUser.Code)
	}
	if wrongPw.Body.String() != unknownUser.Body.String() {
		t.Errorf("Bodies differ: %q vs %q", wrongPw.Body.String(), unknownUser.Body.String())
	}
}

func TestGetSession(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.register(t, "Ana", "ana1", "pw1")

	// With a live session
	w := env.do("GET", "/get-session", nil, cookie)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Session || resp.User == nil || resp.User.Username != "ana1" {
		t.Errorf("Unexpected session response: %+v", resp)
	}

	// Without a cookie
	w = env.do("GET", "/get-session", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var anon models.SessionResponse
	testutil.AssertJSON(t, w, &anon)
	if anon.Session || anon.User != nil {
		t.Errorf("Expected empty session, got %+v", anon)
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.register(t, "Ana", "ana1", "pw1")

	w := env.do("GET", "/logout", nil, cookie)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Session is gone
	w = env.do("GET", "/get-session", nil, cookie)
	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Session {
		t.Error("Session survived logout")
	}

	// Logging out again is not an error
	w = env.do("GET", "/logout", nil, cookie)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestRegisterThenLoginScenario(t *testing.T) {
	env := newTestEnv(t)

	// register → login with same credentials succeeds
	env.register(t, "Ana", "ana1", "pw1")
	w := env.do("POST", "/login", models.LoginRequest{Username: "ana1", Password: "pw1"})
	testutil.AssertStatus(t, w, http.StatusOK)

	// a second register with the same username always conflicts
	w = env.do("POST", "/register", models.RegisterRequest{Name: "Ana", Username: "ana1", Password: "pw1"})
	testutil.AssertStatus(t, w, http.StatusConflict)
}

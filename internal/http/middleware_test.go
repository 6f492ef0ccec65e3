package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type verifierMock struct {
	userID string
	err    error
}

func (v verifierMock) VerifyToken(string) (string, error) {
	return v.userID, v.err
}

type adminCheckerMock struct {
	admin bool
}

func (a adminCheckerMock) IsAdmin(context.Context, string) bool {
	return a.admin
}

func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(getUserIDFromContext(r.Context())))
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	middleware := Authenticate(verifierMock{userID: "user123"})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "Bearer some-token")

	middleware(echoUserID()).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if recorder.Body.String() != "user123" {
		t.Errorf("Expected user123 in context, got '%s'", recorder.Body.String())
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	middleware := Authenticate(verifierMock{userID: "user123"})

	recorder := httptest.NewRecorder()
	middleware(echoUserID()).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	middleware := Authenticate(verifierMock{userID: "user123"})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "some-token")

	middleware(echoUserID()).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	middleware := Authenticate(verifierMock{err: errors.New("expired")})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("Authorization", "Bearer stale-token")

	middleware(echoUserID()).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Error != "Invalid or expired session." {
		t.Errorf("Unexpected error message: '%s'", response.Error)
	}
}

func TestRequireAdmin_Allowed(t *testing.T) {
	middleware := RequireAdmin(adminCheckerMock{admin: true})

	recorder := httptest.NewRecorder()
	middleware(echoUserID()).ServeHTTP(recorder, authedRequest("GET", "/admin/orders", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestRequireAdmin_Forbidden(t *testing.T) {
	middleware := RequireAdmin(adminCheckerMock{admin: false})

	recorder := httptest.NewRecorder()
	middleware(echoUserID()).ServeHTTP(recorder, authedRequest("GET", "/admin/orders", nil))

	if recorder.Code != http.StatusForbidden {
		t.Errorf("Expected status code %d, got %d", http.StatusForbidden, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "permission_denied" {
		t.Errorf("Expected error code 'permission_denied', got '%s'", response.Code)
	}
}

func TestRequireAdmin_NoSession(t *testing.T) {
	middleware := RequireAdmin(adminCheckerMock{admin: true})

	recorder := httptest.NewRecorder()
	middleware(echoUserID()).ServeHTTP(recorder, httptest.NewRequest("GET", "/admin/orders", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getRequestID(r.Context()) == "" {
			t.Error("Expected request_id in context")
		}
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

	if recorder.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID response header")
	}
}

func TestRequestIDMiddleware_PropagatesID(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set("X-Request-ID", "req-abc")

	handler.ServeHTTP(recorder, request)

	if got := recorder.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Errorf("Expected X-Request-ID 'req-abc', got '%s'", got)
	}
}

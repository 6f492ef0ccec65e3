package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/InnoXenT9/aqua-earth-order/internal/domain"
)

type authServiceMock struct {
	user    *domain.User
	token   string
	err     error
	updated *domain.User
}

func (a *authServiceMock) Signup(context.Context, string, string) (*domain.User, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.user, nil
}

func (a *authServiceMock) Login(context.Context, string, string) (string, *domain.User, error) {
	if a.err != nil {
		return "", nil, a.err
	}
	return a.token, a.user, nil
}

func (a *authServiceMock) GetProfile(context.Context, string) (*domain.User, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.user, nil
}

func (a *authServiceMock) UpdateProfile(_ context.Context, user *domain.User) error {
	if a.err != nil {
		return a.err
	}
	a.updated = user
	return nil
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:                "user123",
		Email:             "ravi@example.com",
		FirstName:         "Ravi",
		LastName:          "Kumar",
		PhoneNumber:       "9999999999",
		DeliveryAddresses: []string{"12 Ravi Nagar, Pune 411001"},
	}
}

func TestSignup_InvalidEmail(t *testing.T) {
	handler := NewAuthHandler(&authServiceMock{user: sampleUser()}, 5*time.Second)

	body := []byte(`{"email":"not-an-email","password":"hunter12"}`)
	recorder := httptest.NewRecorder()
	handler.Signup(recorder, httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body)))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Error != "Invalid email address format." {
		t.Errorf("Unexpected validation message: '%s'", response.Error)
	}
}

func TestSignup_WeakPassword(t *testing.T) {
	handler := NewAuthHandler(&authServiceMock{user: sampleUser()}, 5*time.Second)

	body := []byte(`{"email":"ravi@example.com","password":"abc"}`)
	recorder := httptest.NewRecorder()
	handler.Signup(recorder, httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body)))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Error != "The password is too weak." {
		t.Errorf("Unexpected validation message: '%s'", response.Error)
	}
}

func TestUpdateMe_PartialBodyKeepsOtherFields(t *testing.T) {
	mock := &authServiceMock{user: sampleUser()}
	handler := NewAuthHandler(mock, 5*time.Second)

	// Only phone_number present: name fields must survive untouched
	body := []byte(`{"phone_number":"8888888888"}`)
	recorder := httptest.NewRecorder()
	handler.UpdateMe(recorder, authedRequest("PUT", "/users/me", body))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.updated == nil {
		t.Fatal("Expected UpdateProfile to be called")
	}
	if mock.updated.PhoneNumber != "8888888888" {
		t.Errorf("Expected phone number 8888888888, got '%s'", mock.updated.PhoneNumber)
	}
	if mock.updated.FirstName != "Ravi" || mock.updated.LastName != "Kumar" {
		t.Errorf("Expected name to survive, got '%s %s'", mock.updated.FirstName, mock.updated.LastName)
	}
	if len(mock.updated.DeliveryAddresses) != 1 {
		t.Errorf("Expected delivery addresses to survive, got %v", mock.updated.DeliveryAddresses)
	}
}

func TestUpdateMe_ExplicitEmptyClearsField(t *testing.T) {
	mock := &authServiceMock{user: sampleUser()}
	handler := NewAuthHandler(mock, 5*time.Second)

	body := []byte(`{"phone_number":""}`)
	recorder := httptest.NewRecorder()
	handler.UpdateMe(recorder, authedRequest("PUT", "/users/me", body))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.updated == nil {
		t.Fatal("Expected UpdateProfile to be called")
	}
	if mock.updated.PhoneNumber != "" {
		t.Errorf("Expected phone number cleared, got '%s'", mock.updated.PhoneNumber)
	}
	if mock.updated.FirstName != "Ravi" {
		t.Errorf("Expected first name to survive, got '%s'", mock.updated.FirstName)
	}
}

func TestUpdateMe_Unauthorized(t *testing.T) {
	handler := NewAuthHandler(&authServiceMock{user: sampleUser()}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.UpdateMe(recorder, httptest.NewRequest("PUT", "/users/me", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

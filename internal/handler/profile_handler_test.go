package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/profile"
)

// mockProfileService はProfileServiceInterfaceのモック実装。
type mockProfileService struct {
	getProfileFn    func(ctx context.Context, userID string) (*model.Profile, error)
	updateProfileFn func(ctx context.Context, userID string, input profile.Input) (*model.Profile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID string, input profile.Input) (*model.Profile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, input)
	}
	return nil, nil
}

func TestProfileHandler_GetProfile_Success(t *testing.T) {
	svc := &mockProfileService{
		getProfileFn: func(ctx context.Context, userID string) (*model.Profile, error) {
			if userID != "user-1" {
				t.Errorf("userID = %q, want %q", userID, "user-1")
			}
			return &model.Profile{ID: userID, FirstName: "Alice", Country: "Japan"}, nil
		},
	}

	h := NewProfileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = withUserID(req, "user-1")
	w := httptest.NewRecorder()

	h.GetProfile(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	var got profileResponse
	json.NewDecoder(w.Body).Decode(&got)
	if got.FirstName != "Alice" {
		t.Errorf("first_name = %q, want %q", got.FirstName, "Alice")
	}
}

func TestProfileHandler_GetProfile_NotFound_Returns404(t *testing.T) {
	svc := &mockProfileService{
		getProfileFn: func(ctx context.Context, userID string) (*model.Profile, error) {
			return nil, model.NewProfileNotFoundError()
		},
	}

	h := NewProfileHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = withUserID(req, "user-1")
	w := httptest.NewRecorder()

	h.GetProfile(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

func TestProfileHandler_GetProfile_NoUserID_Returns401(t *testing.T) {
	h := NewProfileHandler(&mockProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	w := httptest.NewRecorder()

	h.GetProfile(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestProfileHandler_UpdateProfile_Success(t *testing.T) {
	svc := &mockProfileService{
		updateProfileFn: func(ctx context.Context, userID string, input profile.Input) (*model.Profile, error) {
			if input.City != "Osaka" {
				t.Errorf("city = %q, want %q", input.City, "Osaka")
			}
			return &model.Profile{
				ID:        userID,
				FirstName: input.FirstName,
				City:      input.City,
			}, nil
		},
	}

	h := NewProfileHandler(svc)

	body := `{"first_name": "Alice", "city": "Osaka"}`
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(body))
	req = withUserID(req, "user-1")
	w := httptest.NewRecorder()

	h.UpdateProfile(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	var got profileResponse
	json.NewDecoder(w.Body).Decode(&got)
	if got.City != "Osaka" {
		t.Errorf("city = %q, want %q", got.City, "Osaka")
	}
}

func TestProfileHandler_UpdateProfile_InvalidBody_Returns400(t *testing.T) {
	h := NewProfileHandler(&mockProfileService{})

	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString("{invalid"))
	req = withUserID(req, "user-1")
	w := httptest.NewRecorder()

	h.UpdateProfile(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

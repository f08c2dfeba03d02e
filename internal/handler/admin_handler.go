package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/repository"
)

// AdminServiceInterface は管理ハンドラーが必要とするサービスインターフェース。
type AdminServiceInterface interface {
	// GetStats は全体の集計値を返す。
	GetStats(ctx context.Context) (*repository.AdminStats, error)
	// ListRecentUsers は登録が新しい順のプロフィール一覧を返す。
	ListRecentUsers(ctx context.Context, limit int) ([]*model.Profile, error)
}

// AdminHandler は管理ダッシュボードのHTTPハンドラー。
type AdminHandler struct {
	service AdminServiceInterface
}

// NewAdminHandler はAdminHandlerを生成する。
func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// GetStats は管理ダッシュボード向けの集計値を返す。
// GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ListUsers は登録が新しい順のユーザープロフィール一覧を返す。
// limitクエリパラメータで件数を指定できる（省略時はサービス側のデフォルト）。
// GET /api/admin/users?limit=20
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest,
				model.NewInvalidRequestError("limitパラメータが不正です。"))
			return
		}
		limit = parsed
	}

	profiles, err := h.service.ListRecentUsers(r.Context(), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		results[i] = toProfileResponse(p)
	}
	writeJSON(w, http.StatusOK, results)
}

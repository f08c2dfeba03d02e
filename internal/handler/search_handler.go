package handler

import (
	"context"
	"net/http"

	"github.com/Ashwinram005/GlobeTrotter/internal/search"
)

// SearchServiceInterface は検索ハンドラーが必要とするサービスインターフェース。
type SearchServiceInterface interface {
	// SearchCities は都市を検索する。短いクエリはディスカバリー結果を返す。
	SearchCities(ctx context.Context, query string) ([]search.City, error)
	// SearchActivities はアクティビティを検索する。
	SearchActivities(ctx context.Context, query string) ([]search.Activity, error)
}

// SearchHandler は都市・アクティビティ検索のHTTPハンドラー。
type SearchHandler struct {
	service SearchServiceInterface
}

// NewSearchHandler はSearchHandlerを生成する。
func NewSearchHandler(service SearchServiceInterface) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchCities は都市検索を処理する。
// GET /api/search/cities?q=paris
func (h *SearchHandler) SearchCities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	cities, err := h.service.SearchCities(r.Context(), query)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cities)
}

// SearchActivities はアクティビティ検索を処理する。
// GET /api/search/activities?q=louvre
func (h *SearchHandler) SearchActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	activities, err := h.service.SearchActivities(r.Context(), query)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

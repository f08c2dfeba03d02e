package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Ashwinram005/GlobeTrotter/internal/middleware"
)

// --- テストヘルパー ---

// withUserID はテスト用にリクエストコンテキストにユーザーIDを注入するヘルパー。
func withUserID(r *http.Request, userID string) *http.Request {
	ctx := middleware.ContextWithUserID(r.Context(), userID)
	return r.WithContext(ctx)
}

// withChiURLParam はテスト用にchiのURLパラメータを注入するヘルパー。
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// parseAPIErrorResponse はレスポンスボディからAPIErrorレスポンスをパースするヘルパー。
func parseAPIErrorResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return result
}

// --- メトリクスカウンターのモック ---

// countingTripCounter は旅行作成メトリクスの呼び出し回数を数えるモック。
type countingTripCounter struct {
	created int
}

func (c *countingTripCounter) RecordTripCreated() {
	c.created++
}

// countingItineraryCounter は旅程置換メトリクスの呼び出しを記録するモック。
type countingItineraryCounter struct {
	replacements int
	lastCount    int
}

func (c *countingItineraryCounter) RecordItineraryReplaced(itemCount int) {
	c.replacements++
	c.lastCount = itemCount
}

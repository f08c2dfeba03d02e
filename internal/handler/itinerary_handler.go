package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashwinram005/GlobeTrotter/internal/itinerary"
	"github.com/Ashwinram005/GlobeTrotter/internal/middleware"
	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// ItineraryServiceInterface は旅程ハンドラーが必要とするサービスインターフェース。
type ItineraryServiceInterface interface {
	// List は旅行の旅程アイテムを日付の昇順で返す。
	List(ctx context.Context, userID, tripID string) ([]itinerary.ItemView, error)
	// Replace は旅行の旅程アイテムを全置換する。
	Replace(ctx context.Context, userID, tripID string, inputs []itinerary.ItemInput) ([]itinerary.ItemView, error)
}

// ItineraryCounter は旅程置換メトリクスの記録に必要なインターフェース。
type ItineraryCounter interface {
	RecordItineraryReplaced(itemCount int)
}

// ItineraryHandler は旅程アイテム管理のHTTPハンドラー。
type ItineraryHandler struct {
	service ItineraryServiceInterface
	counter ItineraryCounter
}

// NewItineraryHandler はItineraryHandlerを生成する。
func NewItineraryHandler(service ItineraryServiceInterface, counter ItineraryCounter) *ItineraryHandler {
	return &ItineraryHandler{
		service: service,
		counter: counter,
	}
}

// itineraryItemRequest は旅程アイテム1件の保存リクエスト。
type itineraryItemRequest struct {
	CityName     string  `json:"city_name"`
	ActivityName string  `json:"activity_name"`
	ActivityType string  `json:"activity_type"`
	Date         string  `json:"date"`
	Cost         float64 `json:"cost"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

// replaceItineraryRequest は旅程全置換リクエストのボディ。
type replaceItineraryRequest struct {
	Items []itineraryItemRequest `json:"items"`
}

// itineraryItemResponse は旅程アイテムのAPIレスポンス。
type itineraryItemResponse struct {
	ID           string  `json:"id"`
	TripID       string  `json:"trip_id"`
	CityName     string  `json:"city_name"`
	ActivityName string  `json:"activity_name"`
	ActivityType string  `json:"activity_type"`
	Date         string  `json:"date"`
	Cost         float64 `json:"cost"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	OutOfRange   bool    `json:"out_of_range"`
}

// ListItems は旅行の旅程アイテム一覧を返す。
// GET /api/trips/{id}/itinerary
func (h *ItineraryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	views, err := h.service.List(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(views))
}

// ReplaceItems は旅行の旅程アイテムを全置換する。
// 保存後の一覧（範囲外フラグ付き）を返す。
// PUT /api/trips/{id}/itinerary
func (h *ItineraryHandler) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req replaceItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	inputs := make([]itinerary.ItemInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = itinerary.ItemInput{
			CityName:     item.CityName,
			ActivityName: item.ActivityName,
			ActivityType: item.ActivityType,
			Date:         item.Date,
			Cost:         item.Cost,
			StartTime:    item.StartTime,
			EndTime:      item.EndTime,
		}
	}

	views, err := h.service.Replace(r.Context(), userID, chi.URLParam(r, "id"), inputs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.counter.RecordItineraryReplaced(len(views))
	writeJSON(w, http.StatusOK, toItemResponses(views))
}

// --- ヘルパー関数 ---

// toItemResponses は旅程ビューの一覧からAPIレスポンスに変換する。
func toItemResponses(views []itinerary.ItemView) []itineraryItemResponse {
	results := make([]itineraryItemResponse, len(views))
	for i, v := range views {
		results[i] = toItemResponse(*v.Item, v.OutOfRange)
	}
	return results
}

// toItemResponse は旅程アイテムからAPIレスポンスに変換する。
func toItemResponse(item model.ItineraryItem, outOfRange bool) itineraryItemResponse {
	return itineraryItemResponse{
		ID:           item.ID,
		TripID:       item.TripID,
		CityName:     item.CityName,
		ActivityName: item.ActivityName,
		ActivityType: item.ActivityType,
		Date:         item.Date,
		Cost:         item.Cost,
		StartTime:    item.StartTime,
		EndTime:      item.EndTime,
		OutOfRange:   outOfRange,
	}
}

// toPlainItemResponse は範囲外フラグを持たない文脈でのアイテム変換。
func toPlainItemResponse(item *model.ItineraryItem) itineraryItemResponse {
	return toItemResponse(*item, false)
}

// itemsFromViews は旅程ビューの一覧からドメインモデルの一覧を取り出す。
func itemsFromViews(views []itinerary.ItemView) []model.ItineraryItem {
	items := make([]model.ItineraryItem, len(views))
	for i, v := range views {
		items[i] = *v.Item
	}
	return items
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ashwinram005/GlobeTrotter/internal/itinerary"
	"github.com/Ashwinram005/GlobeTrotter/internal/middleware"
	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/planner"
	"github.com/Ashwinram005/GlobeTrotter/internal/trip"
)

// TripServiceInterface は旅行ハンドラーが必要とするサービスインターフェース。
type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, input trip.Input) (*model.Trip, error)
	GetTrip(ctx context.Context, userID, tripID string) (*model.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]*model.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID string, input trip.Input) (*model.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error
	CopyTrip(ctx context.Context, userID, tripID string) (*model.Trip, error)
	GetPublicView(ctx context.Context, tripID string) (*trip.PublicView, error)
}

// TripCounter は旅行作成メトリクスの記録に必要なインターフェース。
type TripCounter interface {
	RecordTripCreated()
}

// TripHandler は旅行管理のHTTPハンドラー。
// カレンダーグリッドと予算分析の派生ビューも提供する。
type TripHandler struct {
	service   TripServiceInterface
	itinerary ItineraryServiceInterface
	counter   TripCounter
}

// NewTripHandler はTripHandlerを生成する。
func NewTripHandler(service TripServiceInterface, itinerary ItineraryServiceInterface, counter TripCounter) *TripHandler {
	return &TripHandler{
		service:   service,
		itinerary: itinerary,
		counter:   counter,
	}
}

// tripRequest は旅行の作成・更新リクエストのボディ。
type tripRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CoverImage  string `json:"cover_image"`
}

// tripResponse は旅行情報のAPIレスポンス。
type tripResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	BudgetTotal float64   `json:"budget_total"`
	CoverImage  string    `json:"cover_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTrip は旅行の新規作成を処理する。
// POST /api/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	created, err := h.service.CreateTrip(r.Context(), userID, toTripInput(req))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.counter.RecordTripCreated()
	writeJSON(w, http.StatusCreated, toTripResponse(created))
}

// ListTrips はユーザーの旅行一覧を返す。
// GET /api/trips
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	trips, err := h.service.ListTrips(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]tripResponse, len(trips))
	for i, t := range trips {
		results[i] = toTripResponse(t)
	}
	writeJSON(w, http.StatusOK, results)
}

// GetTrip は旅行詳細を返す。
// GET /api/trips/{id}
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	found, err := h.service.GetTrip(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(found))
}

// UpdateTrip は旅行の基本情報を更新する。予算合計は変更しない。
// PUT /api/trips/{id}
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated, err := h.service.UpdateTrip(r.Context(), userID, chi.URLParam(r, "id"), toTripInput(req))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(updated))
}

// DeleteTrip は旅行を削除する。
// DELETE /api/trips/{id}
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	if err := h.service.DeleteTrip(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CopyTrip は旅行と旅程アイテムを複製する。
// POST /api/trips/{id}/copy
func (h *TripHandler) CopyTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	copied, err := h.service.CopyTrip(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.counter.RecordTripCreated()
	writeJSON(w, http.StatusCreated, toTripResponse(copied))
}

// calendarResponse はカレンダーグリッドのAPIレスポンス。
type calendarResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Slots []calendarSlotView `json:"slots"`
}

// calendarSlotView はカレンダーグリッドの1スロット。
// dayが0のスロットは第1週の位置合わせ用の空きスロット。
type calendarSlotView struct {
	Day     int                     `json:"day"`
	Date    string                  `json:"date"`
	InRange bool                    `json:"in_range"`
	Items   []itineraryItemResponse `json:"items"`
}

// GetCalendar は指定月のカレンダーグリッドを返す。
// year/monthクエリパラメータを省略した場合は旅行の開始月を使用する。
// GET /api/trips/{id}/calendar?year=2025&month=10
func (h *TripHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	tripID := chi.URLParam(r, "id")
	found, err := h.service.GetTrip(r.Context(), userID, tripID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	year, month, err := resolveCalendarMonth(r, found.StartDate)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	views, err := h.itinerary.List(r.Context(), userID, tripID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	grid := planner.BuildMonthGrid(year, month, found.StartDate, found.EndDate, itemsFromViews(views))
	writeJSON(w, http.StatusOK, toCalendarResponse(grid, views))
}

// budgetResponse は予算分析のAPIレスポンス。
type budgetResponse struct {
	BudgetTotal   float64              `json:"budget_total"`
	TotalSpent    float64              `json:"total_spent"`
	Remaining     float64              `json:"remaining"`
	PercentUsed   float64              `json:"percent_used"`
	DayCount      int                  `json:"day_count"`
	AvgDailySpend float64              `json:"avg_daily_spend"`
	DailyTarget   float64              `json:"daily_target"`
	Overspent     bool                 `json:"overspent"`
	Categories    []categoryTotalView  `json:"categories"`
	Daily         []dailySpendView     `json:"daily"`
}

type categoryTotalView struct {
	ActivityType string  `json:"activity_type"`
	Total        float64 `json:"total"`
}

type dailySpendView struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// GetBudget は旅行の予算分析を返す。
// GET /api/trips/{id}/budget
func (h *TripHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w)
		return
	}

	tripID := chi.URLParam(r, "id")
	found, err := h.service.GetTrip(r.Context(), userID, tripID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	views, err := h.itinerary.List(r.Context(), userID, tripID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	summary := planner.Summarize(found, itemsFromViews(views))
	writeJSON(w, http.StatusOK, toBudgetResponse(found, summary))
}

// publicTripResponse は共有旅程ビューのAPIレスポンス。
// 日別・都市別のグループはアイテム一覧から導出する。
type publicTripResponse struct {
	Trip       tripResponse            `json:"trip"`
	Owner      *publicOwnerView        `json:"owner"`
	Items      []itineraryItemResponse `json:"items"`
	DayGroups  []dayGroupView          `json:"day_groups"`
	CityGroups []cityGroupView         `json:"city_groups"`
}

// dayGroupView は日付ごとの旅程グループと小計。
type dayGroupView struct {
	Date     string                  `json:"date"`
	Items    []itineraryItemResponse `json:"items"`
	Subtotal float64                 `json:"subtotal"`
}

// cityGroupView は都市ごとの旅程グループと小計。
type cityGroupView struct {
	CityName string                  `json:"city_name"`
	Items    []itineraryItemResponse `json:"items"`
	Subtotal float64                 `json:"subtotal"`
}

// publicOwnerView は共有ビューに含める所有者の公開情報。
// 電話番号などの連絡先情報は含めない。
type publicOwnerView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	AvatarURL string `json:"avatar_url"`
}

// GetPublicView は認証不要の共有旅程ビューを返す。
// GET /api/public/trips/{id}
func (h *TripHandler) GetPublicView(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetPublicView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]model.ItineraryItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = *item
	}

	resp := publicTripResponse{
		Trip:       toTripResponse(view.Trip),
		Items:      make([]itineraryItemResponse, len(view.Items)),
		DayGroups:  toDayGroupViews(planner.GroupByDate(items)),
		CityGroups: toCityGroupViews(planner.GroupByCity(items)),
	}
	for i, item := range view.Items {
		resp.Items[i] = toPlainItemResponse(item)
	}
	if view.OwnerProfile != nil {
		resp.Owner = &publicOwnerView{
			FirstName: view.OwnerProfile.FirstName,
			LastName:  view.OwnerProfile.LastName,
			City:      view.OwnerProfile.City,
			Country:   view.OwnerProfile.Country,
			AvatarURL: view.OwnerProfile.AvatarURL,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// --- ヘルパー関数 ---

// toDayGroupViews は日付グループをAPIレスポンス形式に変換する。
func toDayGroupViews(groups []planner.DateGroup) []dayGroupView {
	views := make([]dayGroupView, len(groups))
	for i, g := range groups {
		views[i] = dayGroupView{
			Date:     g.Date,
			Items:    toGroupItemResponses(g.Items),
			Subtotal: g.Subtotal,
		}
	}
	return views
}

// toCityGroupViews は都市グループをAPIレスポンス形式に変換する。
func toCityGroupViews(groups []planner.CityGroup) []cityGroupView {
	views := make([]cityGroupView, len(groups))
	for i, g := range groups {
		views[i] = cityGroupView{
			CityName: g.CityName,
			Items:    toGroupItemResponses(g.Items),
			Subtotal: g.Subtotal,
		}
	}
	return views
}

func toGroupItemResponses(items []model.ItineraryItem) []itineraryItemResponse {
	resps := make([]itineraryItemResponse, len(items))
	for i := range items {
		resps[i] = toPlainItemResponse(&items[i])
	}
	return resps
}

// resolveCalendarMonth はクエリパラメータから表示対象の年月を決定する。
// 省略時は旅行の開始日の年月を使用する。
func resolveCalendarMonth(r *http.Request, startDate string) (int, time.Month, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		start, err := time.Parse(model.DateLayout, startDate)
		if err != nil {
			return 0, 0, model.NewInvalidDateError(startDate)
		}
		return start.Year(), start.Month(), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, model.NewInvalidRequestError("yearパラメータが不正です。")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, model.NewInvalidRequestError("monthパラメータが不正です。")
	}

	return year, time.Month(month), nil
}

// toTripInput はリクエストボディからサービス入力に変換する。
func toTripInput(req tripRequest) trip.Input {
	return trip.Input{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CoverImage:  req.CoverImage,
	}
}

// toTripResponse はmodel.TripからAPIレスポンスに変換する。
func toTripResponse(t *model.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		BudgetTotal: t.BudgetTotal,
		CoverImage:  t.CoverImage,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// toBudgetResponse は予算分析結果からAPIレスポンスに変換する。
func toBudgetResponse(t *model.Trip, summary planner.BudgetSummary) budgetResponse {
	categories := make([]categoryTotalView, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = categoryTotalView{ActivityType: c.ActivityType, Total: c.Total}
	}

	daily := make([]dailySpendView, len(summary.Daily))
	for i, d := range summary.Daily {
		daily[i] = dailySpendView{Date: d.Date, Label: d.Label, Total: d.Total}
	}

	return budgetResponse{
		BudgetTotal:   t.BudgetTotal,
		TotalSpent:    summary.TotalSpent,
		Remaining:     summary.Remaining,
		PercentUsed:   summary.PercentUsed,
		DayCount:      summary.DayCount,
		AvgDailySpend: summary.AvgDailySpend,
		DailyTarget:   summary.DailyTarget,
		Overspent:     summary.Overspent,
		Categories:    categories,
		Daily:         daily,
	}
}

// toCalendarResponse はカレンダーグリッドからAPIレスポンスに変換する。
// 各アイテムの範囲外フラグは旅程ビューから引き継ぐ。
func toCalendarResponse(grid planner.MonthGrid, views []itinerary.ItemView) calendarResponse {
	outOfRange := make(map[string]bool, len(views))
	for _, v := range views {
		outOfRange[v.Item.ID] = v.OutOfRange
	}

	slots := make([]calendarSlotView, len(grid.Slots))
	for i, slot := range grid.Slots {
		items := make([]itineraryItemResponse, len(slot.Items))
		for j, item := range slot.Items {
			items[j] = toItemResponse(item, outOfRange[item.ID])
		}
		slots[i] = calendarSlotView{
			Day:     slot.Day,
			Date:    slot.Date,
			InRange: slot.InRange,
			Items:   items,
		}
	}

	return calendarResponse{
		Year:  grid.Year,
		Month: int(grid.Month),
		Slots: slots,
	}
}

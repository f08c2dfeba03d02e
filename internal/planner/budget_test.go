package planner

import (
	"math"
	"testing"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestSummarize_Scenario は基準シナリオの予算分析結果を検証する。
func TestSummarize_Scenario(t *testing.T) {
	trip := &model.Trip{
		StartDate:   "2025-10-01",
		EndDate:     "2025-10-07",
		BudgetTotal: 700,
	}
	items := []model.ItineraryItem{
		{Date: "2025-10-02", Cost: 100},
		{Date: "2025-10-02", Cost: 50},
		{Date: "2025-10-05", Cost: 200},
	}

	s := Summarize(trip, items)

	if s.TotalSpent != 350 {
		t.Errorf("TotalSpent = %v, want 350", s.TotalSpent)
	}
	if s.Remaining != 350 {
		t.Errorf("Remaining = %v, want 350", s.Remaining)
	}
	if s.DayCount != 7 {
		t.Errorf("DayCount = %d, want 7", s.DayCount)
	}
	if !almostEqual(s.AvgDailySpend, 50) {
		t.Errorf("AvgDailySpend = %v, want 50", s.AvgDailySpend)
	}
	if !almostEqual(s.PercentUsed, 50) {
		t.Errorf("PercentUsed = %v, want 50", s.PercentUsed)
	}
	if len(s.Daily) != 2 {
		t.Fatalf("Daily length = %d, want 2", len(s.Daily))
	}
	if s.Daily[0].Date != "2025-10-02" || s.Daily[0].Total != 150 {
		t.Errorf("Daily[0] = {%s, %v}, want {2025-10-02, 150}", s.Daily[0].Date, s.Daily[0].Total)
	}
	if s.Daily[1].Date != "2025-10-05" || s.Daily[1].Total != 200 {
		t.Errorf("Daily[1] = {%s, %v}, want {2025-10-05, 200}", s.Daily[1].Date, s.Daily[1].Total)
	}
}

// TestSummarize_NegativeRemaining は支出が予算を超えた場合に残額が負となり、
// エラーにならないことを検証する。
func TestSummarize_NegativeRemaining(t *testing.T) {
	trip := &model.Trip{StartDate: "2025-05-01", EndDate: "2025-05-03", BudgetTotal: 100}
	items := []model.ItineraryItem{
		{Date: "2025-05-01", Cost: 150},
	}

	s := Summarize(trip, items)

	if s.Remaining != -50 {
		t.Errorf("Remaining = %v, want -50", s.Remaining)
	}
}

// TestSummarize_ZeroBudget は予算0の場合にpercentUsedが厳密に0となることを検証する。
func TestSummarize_ZeroBudget(t *testing.T) {
	trip := &model.Trip{StartDate: "2025-05-01", EndDate: "2025-05-03", BudgetTotal: 0}
	items := []model.ItineraryItem{
		{Date: "2025-05-01", Cost: 999},
	}

	s := Summarize(trip, items)

	if s.PercentUsed != 0 {
		t.Errorf("PercentUsed = %v, want exactly 0", s.PercentUsed)
	}
}

// TestSummarize_EmptyItems は空のアイテムリストでの集計を検証する。
func TestSummarize_EmptyItems(t *testing.T) {
	trip := &model.Trip{StartDate: "2025-05-01", EndDate: "2025-05-05", BudgetTotal: 500}

	s := Summarize(trip, nil)

	if s.TotalSpent != 0 {
		t.Errorf("TotalSpent = %v, want 0", s.TotalSpent)
	}
	if s.PercentUsed != 0 {
		t.Errorf("PercentUsed = %v, want 0", s.PercentUsed)
	}
	if len(s.Categories) != 0 {
		t.Errorf("Categories length = %d, want 0", len(s.Categories))
	}
	if s.Overspent {
		t.Error("Overspent should be false with no items")
	}
}

// TestSummarize_CategoryDefaultsToOther は種別が空のアイテムが
// "Other"バケツに集約されることを検証する。
func TestSummarize_CategoryDefaultsToOther(t *testing.T) {
	trip := &model.Trip{StartDate: "2025-05-01", EndDate: "2025-05-02", BudgetTotal: 100}
	items := []model.ItineraryItem{
		{Date: "2025-05-01", ActivityType: "Food", Cost: 30},
		{Date: "2025-05-01", ActivityType: "", Cost: 20},
		{Date: "2025-05-02", ActivityType: "", Cost: 10},
	}

	s := Summarize(trip, items)

	if len(s.Categories) != 2 {
		t.Fatalf("Categories length = %d, want 2", len(s.Categories))
	}
	found := false
	for _, c := range s.Categories {
		if c.ActivityType == "Other" {
			found = true
			if c.Total != 30 {
				t.Errorf("Other total = %v, want 30", c.Total)
			}
		}
	}
	if !found {
		t.Error("expected an Other bucket")
	}
}

// TestSummarize_OverspendWarning は日割り目標の1.2倍を超える日がある場合に
// 警告フラグが立つことを検証する。
func TestSummarize_OverspendWarning(t *testing.T) {
	// 予算700、7日間 → 日割り目標100、閾値120
	trip := &model.Trip{StartDate: "2025-10-01", EndDate: "2025-10-07", BudgetTotal: 700}

	under := []model.ItineraryItem{{Date: "2025-10-02", Cost: 120}}
	if s := Summarize(trip, under); s.Overspent {
		t.Error("exactly at threshold should not trigger warning")
	}

	over := []model.ItineraryItem{{Date: "2025-10-02", Cost: 121}}
	if s := Summarize(trip, over); !s.Overspent {
		t.Error("day above threshold should trigger warning")
	}
}

// TestTripDayCount は日数計算の境界ケースを検証する。
func TestTripDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"7日間（両端を含む）", "2025-10-01", "2025-10-07", 7},
		{"同一日", "2025-10-01", "2025-10-01", 1},
		{"逆転した範囲は最小1", "2025-10-07", "2025-10-01", 1},
		{"不正な日付は最小1", "not-a-date", "2025-10-01", 1},
		{"月境界をまたぐ", "2025-01-30", "2025-02-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripDayCount(tt.start, tt.end); got != tt.want {
				t.Errorf("TripDayCount(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

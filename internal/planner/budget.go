package planner

import (
	"sort"
	"time"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// overspendFactor は1日の支出が日割り予算の何倍を超えたら警告とするかの係数。
const overspendFactor = 1.2

// CategoryTotal はアクティビティ種別ごとのコスト小計を表す。
type CategoryTotal struct {
	ActivityType string
	Total        float64
}

// DailySpend は1日分の支出合計を表す。
type DailySpend struct {
	Date  string // YYYY-MM-DD（ソートキー）
	Label string // 表示用ラベル（例: "Oct 2"）
	Total float64
}

// BudgetSummary は旅行の予算分析結果を表す。
type BudgetSummary struct {
	TotalSpent    float64
	Remaining     float64 // 負の値も有効な状態（超過表示）であり、エラーではない
	PercentUsed   float64
	DayCount      int
	AvgDailySpend float64
	DailyTarget   float64 // 予算の日割り目標額
	Categories    []CategoryTotal
	Daily         []DailySpend
	Overspent     bool // いずれかの日の支出が日割り目標の1.2倍を超えた場合true
}

// Summarize は旅行と旅程アイテムから予算分析を計算する。
// percentUsedは予算が0の場合は0を返す（ゼロ除算ガード）。
// dayCountは両端を含む日数で、最小1を保証する。
func Summarize(trip *model.Trip, items []model.ItineraryItem) BudgetSummary {
	totalSpent := sumCosts(items)

	var percentUsed float64
	if trip.BudgetTotal > 0 {
		percentUsed = totalSpent / trip.BudgetTotal * 100
	}

	dayCount := TripDayCount(trip.StartDate, trip.EndDate)
	dailyTarget := trip.BudgetTotal / float64(dayCount)

	daily := dailySpends(items)

	overspent := false
	for _, d := range daily {
		if d.Total > dailyTarget*overspendFactor {
			overspent = true
			break
		}
	}

	return BudgetSummary{
		TotalSpent:    totalSpent,
		Remaining:     trip.BudgetTotal - totalSpent,
		PercentUsed:   percentUsed,
		DayCount:      dayCount,
		AvgDailySpend: totalSpent / float64(dayCount),
		DailyTarget:   dailyTarget,
		Categories:    categoryTotals(items),
		Daily:         daily,
		Overspent:     overspent,
	}
}

// TripDayCount は旅行の日数（両端を含む）を返す。最小1を保証する。
// 日付が不正な場合も1を返し、平均計算でのゼロ除算を防ぐ。
func TripDayCount(startDate, endDate string) int {
	start, err1 := time.Parse(model.DateLayout, startDate)
	end, err2 := time.Parse(model.DateLayout, endDate)
	if err1 != nil || err2 != nil {
		return 1
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// categoryTotals はアクティビティ種別ごとのコスト小計を初出順で返す。
// 種別が空のアイテムは"Other"バケツに集約する。
func categoryTotals(items []model.ItineraryItem) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal

	for _, item := range items {
		cat := item.ActivityType
		if cat == "" {
			cat = "Other"
		}
		idx, ok := index[cat]
		if !ok {
			idx = len(totals)
			index[cat] = idx
			totals = append(totals, CategoryTotal{ActivityType: cat})
		}
		totals[idx].Total += item.Cost
	}
	return totals
}

// dailySpends は日付ごとの支出合計を日付昇順で返す。
// ソートは表示ラベルではなく元の日付文字列で行う
// （月名ラベルの辞書順ソートによる並び崩れを避ける）。
func dailySpends(items []model.ItineraryItem) []DailySpend {
	byDate := make(map[string]float64)
	for _, item := range items {
		byDate[item.Date] += item.Cost
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	spends := make([]DailySpend, 0, len(dates))
	for _, d := range dates {
		spends = append(spends, DailySpend{
			Date:  d,
			Label: formatDayLabel(d),
			Total: byDate[d],
		})
	}
	return spends
}

// formatDayLabel は日付文字列を表示用の短いラベルに変換する。
// パースできない場合は元の文字列をそのまま返す。
func formatDayLabel(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

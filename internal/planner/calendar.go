package planner

import (
	"time"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// DaySlot はカレンダーグリッドの1スロットを表す。
// Dayが0のスロットは前月分の空きスロット（第1週の位置合わせ用）。
type DaySlot struct {
	Day     int    // 日（1始まり）。空きスロットでは0
	Date    string // YYYY-MM-DD。空きスロットでは空文字
	InRange bool   // 旅行の日付範囲内かどうか（両端を含む）
	Items   []model.ItineraryItem
}

// MonthGrid は特定の月のカレンダーグリッドを表す。
// Slotsは先頭に0個以上の空きスロット、その後に月の日数分のスロットが並ぶ。
type MonthGrid struct {
	Year  int
	Month time.Month
	Slots []DaySlot
}

// BuildMonthGrid は指定された月のカレンダーグリッドを構築する。
// 月初の曜日分（日曜始まり）の空きスロットを先頭に置き、
// 各日を旅行の[startDate, endDate]範囲（両端を含む）でタグ付けし、
// 日付が一致する旅程アイテムを紐付ける。
// 範囲判定はYYYY-MM-DD文字列の辞書順比較で行う。
func BuildMonthGrid(year int, month time.Month, startDate, endDate string, items []model.ItineraryItem) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	byDate := make(map[string][]model.ItineraryItem)
	for _, item := range items {
		byDate[item.Date] = append(byDate[item.Date], item)
	}

	slots := make([]DaySlot, 0, int(first.Weekday())+daysInMonth)

	// 前月分の空きスロット（第1週の曜日位置合わせ）
	for i := 0; i < int(first.Weekday()); i++ {
		slots = append(slots, DaySlot{})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		slots = append(slots, DaySlot{
			Day:     day,
			Date:    date,
			InRange: date >= startDate && date <= endDate,
			Items:   byDate[date],
		})
	}

	return MonthGrid{Year: year, Month: month, Slots: slots}
}

// StepMonth は基準月をoffsetか月分前後させた年月を返す。
// 年境界を正しく繰り越す（例: 2025年1月の-1は2024年12月）。
func StepMonth(year int, month time.Month, offset int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return t.Year(), t.Month()
}

// ItemsOnDate は指定日付のアイテム一覧を返す。該当がない場合は空スライスを返す。
// アイテムが0件の日の選択も成功し、空状態の表示に使われる。
func ItemsOnDate(items []model.ItineraryItem, date string) []model.ItineraryItem {
	result := []model.ItineraryItem{}
	for _, item := range items {
		if item.Date == date {
			result = append(result, item)
		}
	}
	return result
}

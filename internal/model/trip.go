// Package model はドメインモデルを定義する。
package model

import "time"

// DateLayout は日付のみの文字列フォーマット。
// YYYY-MM-DD形式は辞書順比較が時系列順と一致するため、
// 日付範囲の判定に文字列比較をそのまま使用できる。
const DateLayout = "2006-01-02"

// Trip はユーザーが所有する旅行プランを表す。
// BudgetTotalは旅程アイテムのコスト合計と常に一致するよう、
// アイテム書き込みと同一トランザクションで再計算される。
type Trip struct {
	ID          string
	UserID      string
	Name        string
	Description string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	BudgetTotal float64
	CoverImage  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItineraryItem は旅行に属する日付・コスト付きのアクティビティまたは都市滞在を表す。
type ItineraryItem struct {
	ID           string
	TripID       string
	CityName     string
	ActivityName string
	ActivityType string
	Date         string // YYYY-MM-DD
	Cost         float64
	StartTime    string
	EndTime      string
	CreatedAt    time.Time
}

// ValidDate は日付文字列がYYYY-MM-DD形式として妥当かを検証する。
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

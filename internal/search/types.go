// Package search は旅行先とアクティビティの検索機能を提供する。
// 外部API（REST Countries、Open-Meteoジオコーディング、Wikipedia検索）による
// ベストエフォートの検索と、全プロバイダー失敗時のローカルフォールバックを含む。
package search

// City は検索結果の都市。
type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	CostIndex   int    `json:"costIndex"`
	Popularity  int    `json:"popularity"`
	Description string `json:"description"`
	Population  int64  `json:"population"`
}

// Activity は検索結果のアクティビティ。
type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

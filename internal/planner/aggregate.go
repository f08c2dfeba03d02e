// Package planner は旅程データの純粋な変換ロジックを提供する。
// 日付・都市ごとのグループ化、カレンダーグリッドの構築、予算集計を含む。
// すべての関数は状態を持たず、同一入力に対して常に同一出力を返す。
package planner

import (
	"sort"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// DateGroup は同一日付の旅程アイテムのグループを表す。
type DateGroup struct {
	Date     string // YYYY-MM-DD
	Items    []model.ItineraryItem
	Subtotal float64
}

// CityGroup は同一都市名の旅程アイテムのグループを表す。
type CityGroup struct {
	CityName string
	Items    []model.ItineraryItem
	Subtotal float64
}

// GroupByDate は旅程アイテムを日付文字列の完全一致でグループ化する。
// グループは日付昇順で返される。YYYY-MM-DD形式は辞書順比較が
// 時系列順と一致するため、文字列ソートをそのまま使用する。
// 各グループのSubtotalはコストの算術合計。
func GroupByDate(items []model.ItineraryItem) []DateGroup {
	byDate := make(map[string][]model.ItineraryItem)
	for _, item := range items {
		byDate[item.Date] = append(byDate[item.Date], item)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{
			Date:     d,
			Items:    byDate[d],
			Subtotal: sumCosts(byDate[d]),
		})
	}
	return groups
}

// GroupByCity は旅程アイテムを都市名の文字列完全一致でグループ化する。
// 表記ゆれの正規化は行わない（同一都市の異なる綴りは別グループとなる）。
// グループの順序は入力リストでの初出順。
func GroupByCity(items []model.ItineraryItem) []CityGroup {
	byCity := make(map[string]int)
	var groups []CityGroup

	for _, item := range items {
		idx, ok := byCity[item.CityName]
		if !ok {
			idx = len(groups)
			byCity[item.CityName] = idx
			groups = append(groups, CityGroup{CityName: item.CityName})
		}
		groups[idx].Items = append(groups[idx].Items, item)
		groups[idx].Subtotal += item.Cost
	}
	return groups
}

// sumCosts はアイテムのコスト合計を返す。
func sumCosts(items []model.ItineraryItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost
	}
	return total
}

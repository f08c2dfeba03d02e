package repository

import (
	"context"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// UserRepository はユーザーの永続化を抽象化する。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。存在しない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByEmail は指定メールアドレスのユーザーを取得する。存在しない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error
	// DeleteByID は指定IDのユーザーを削除する。
	DeleteByID(ctx context.Context, id string) error
}

// SessionRepository はセッションの永続化を抽象化する。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error
	// FindByID は指定IDのセッションを取得する。存在しないか期限切れの場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// DeleteByID は指定IDのセッションを削除する。
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUserID は指定ユーザーの全セッションを削除する。
	DeleteByUserID(ctx context.Context, userID string) error
}

// ProfileRepository はプロフィールの永続化を抽象化する。
type ProfileRepository interface {
	// FindByID は指定ユーザーIDのプロフィールを取得する。存在しない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	// Upsert はプロフィールを作成または更新する。
	Upsert(ctx context.Context, profile *model.Profile) error
	// ListRecent は作成日時の降順でプロフィールを取得する。
	ListRecent(ctx context.Context, limit int) ([]*model.Profile, error)
}

// TripRepository は旅行の永続化を抽象化する。
type TripRepository interface {
	// FindByID は指定IDの旅行を取得する。存在しない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Trip, error)
	// ListByUserID は指定ユーザーの旅行を開始日の昇順で取得する。
	ListByUserID(ctx context.Context, userID string) ([]*model.Trip, error)
	// Create は旅行を作成する。
	Create(ctx context.Context, trip *model.Trip) error
	// Update は旅行の編集可能フィールドを更新する。
	Update(ctx context.Context, trip *model.Trip) error
	// DeleteByID は指定IDの旅行を削除する。旅程アイテムもカスケード削除される。
	DeleteByID(ctx context.Context, id string) error
	// CreateWithItems は旅行と旅程アイテムを単一トランザクションで作成する。
	// budget_totalはアイテムのコスト合計で確定される。
	CreateWithItems(ctx context.Context, trip *model.Trip, items []*model.ItineraryItem) error
}

// ItineraryItemRepository は旅程アイテムの永続化を抽象化する。
type ItineraryItemRepository interface {
	// ListByTripID は指定旅行の旅程アイテムを日付の昇順で取得する。
	ListByTripID(ctx context.Context, tripID string) ([]*model.ItineraryItem, error)
	// ReplaceByTrip は指定旅行の旅程アイテムを単一トランザクションで全置換し、
	// trips.budget_totalを新しいコスト合計で再計算する。
	ReplaceByTrip(ctx context.Context, tripID string, items []*model.ItineraryItem) error
}

// CityCount は都市ごとの旅程アイテム数。
type CityCount struct {
	CityName string `json:"city_name"`
	Count    int    `json:"count"`
}

// TypeCount はアクティビティ種別ごとの旅程アイテム数。
type TypeCount struct {
	ActivityType string `json:"activity_type"`
	Count        int    `json:"count"`
}

// AdminStats は管理ダッシュボード向けの集計値。
type AdminStats struct {
	TotalUsers    int          `json:"total_users"`
	TotalTrips    int          `json:"total_trips"`
	TotalItems    int          `json:"total_items"`
	TotalBudget   float64      `json:"total_budget"`
	PopularCities []*CityCount `json:"popular_cities"`
	PopularTypes  []*TypeCount `json:"popular_types"`
}

// AdminStatsRepository は管理向け集計クエリを抽象化する。
type AdminStatsRepository interface {
	// GetStats は全体の集計値をSQLで算出する。
	GetStats(ctx context.Context) (*AdminStats, error)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// PostgresItineraryItemRepo はPostgreSQLを使用した旅程アイテムリポジトリ。
type PostgresItineraryItemRepo struct {
	db *sql.DB
}

// NewPostgresItineraryItemRepo はPostgresItineraryItemRepoを生成する。
func NewPostgresItineraryItemRepo(db *sql.DB) *PostgresItineraryItemRepo {
	return &PostgresItineraryItemRepo{db: db}
}

// ListByTripID は指定旅行の旅程アイテムを日付の昇順で取得する。
func (r *PostgresItineraryItemRepo) ListByTripID(ctx context.Context, tripID string) ([]*model.ItineraryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, trip_id, city_name, activity_name, activity_type,
		        to_char(date, 'YYYY-MM-DD'), cost, start_time, end_time, created_at
		 FROM itinerary_items
		 WHERE trip_id = $1
		 ORDER BY date ASC, created_at ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("旅程アイテムの取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var items []*model.ItineraryItem
	for rows.Next() {
		item := &model.ItineraryItem{}
		if err := rows.Scan(
			&item.ID, &item.TripID, &item.CityName, &item.ActivityName,
			&item.ActivityType, &item.Date, &item.Cost,
			&item.StartTime, &item.EndTime, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("旅程アイテムの読み取りに失敗しました: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("旅程アイテムの走査に失敗しました: %w", err)
	}

	return items, nil
}

// ReplaceByTrip は指定旅行の旅程アイテムを単一トランザクションで全置換する。
// 削除と挿入の間に障害が起きてもアイテムが失われないよう、
// trips.budget_totalの再計算も同一トランザクションで行う。
func (r *PostgresItineraryItemRepo) ReplaceByTrip(ctx context.Context, tripID string, items []*model.ItineraryItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM itinerary_items WHERE trip_id = $1`,
		tripID,
	)
	if err != nil {
		return fmt.Errorf("旅程アイテムの削除に失敗しました: %w", err)
	}

	var total float64
	for _, item := range items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO itinerary_items (id, trip_id, city_name, activity_name,
			                              activity_type, date, cost, start_time,
			                              end_time, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.TripID, item.CityName, item.ActivityName,
			item.ActivityType, item.Date, item.Cost, item.StartTime,
			item.EndTime, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("旅程アイテムの作成に失敗しました: %w", err)
		}
		total += item.Cost
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trips SET budget_total = $2, updated_at = now() WHERE id = $1`,
		tripID, total,
	)
	if err != nil {
		return fmt.Errorf("予算合計の更新に失敗しました: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}

	return nil
}

// compile-time interface check
var _ ItineraryItemRepository = (*PostgresItineraryItemRepo)(nil)

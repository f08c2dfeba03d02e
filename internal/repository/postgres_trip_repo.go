package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// PostgresTripRepo はPostgreSQLを使用した旅行リポジトリ。
// 日付列はto_charでYYYY-MM-DD文字列として読み出す。
type PostgresTripRepo struct {
	db *sql.DB
}

// NewPostgresTripRepo はPostgresTripRepoを生成する。
func NewPostgresTripRepo(db *sql.DB) *PostgresTripRepo {
	return &PostgresTripRepo{db: db}
}

// FindByID は指定IDの旅行を取得する。見つからない場合はnilを返す。
func (r *PostgresTripRepo) FindByID(ctx context.Context, id string) (*model.Trip, error) {
	trip := &model.Trip{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, description,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		        budget_total, cover_image, created_at, updated_at
		 FROM trips WHERE id = $1`,
		id,
	).Scan(
		&trip.ID, &trip.UserID, &trip.Name, &trip.Description,
		&trip.StartDate, &trip.EndDate,
		&trip.BudgetTotal, &trip.CoverImage, &trip.CreatedAt, &trip.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("旅行の取得に失敗しました: %w", err)
	}

	return trip, nil
}

// ListByUserID は指定ユーザーの旅行を開始日の昇順で取得する。
func (r *PostgresTripRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Trip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, description,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		        budget_total, cover_image, created_at, updated_at
		 FROM trips
		 WHERE user_id = $1
		 ORDER BY start_date ASC, created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("旅行一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var trips []*model.Trip
	for rows.Next() {
		trip := &model.Trip{}
		if err := rows.Scan(
			&trip.ID, &trip.UserID, &trip.Name, &trip.Description,
			&trip.StartDate, &trip.EndDate,
			&trip.BudgetTotal, &trip.CoverImage, &trip.CreatedAt, &trip.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("旅行一覧の読み取りに失敗しました: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("旅行一覧の走査に失敗しました: %w", err)
	}

	return trips, nil
}

// Create は旅行を作成する。
func (r *PostgresTripRepo) Create(ctx context.Context, trip *model.Trip) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (id, user_id, name, description, start_date, end_date,
		                    budget_total, cover_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trip.ID, trip.UserID, trip.Name, trip.Description,
		trip.StartDate, trip.EndDate,
		trip.BudgetTotal, trip.CoverImage, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("旅行の作成に失敗しました: %w", err)
	}
	return nil
}

// Update は旅行の編集可能フィールドを更新する。
// budget_totalは旅程アイテムの書き込みでのみ再計算されるため更新しない。
func (r *PostgresTripRepo) Update(ctx context.Context, trip *model.Trip) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE trips SET
		    name = $2, description = $3, start_date = $4, end_date = $5,
		    cover_image = $6, updated_at = $7
		 WHERE id = $1`,
		trip.ID, trip.Name, trip.Description, trip.StartDate, trip.EndDate,
		trip.CoverImage, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("旅行の更新に失敗しました: %w", err)
	}
	return nil
}

// DeleteByID は指定IDの旅行を削除する。旅程アイテムはCASCADE削除される。
func (r *PostgresTripRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM trips WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("旅行の削除に失敗しました: %w", err)
	}
	return nil
}

// CreateWithItems は旅行と旅程アイテムを単一トランザクションで作成する。
// budget_totalはアイテムのコスト合計で確定される。コピー操作で使用される。
func (r *PostgresTripRepo) CreateWithItems(ctx context.Context, trip *model.Trip, items []*model.ItineraryItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	var total float64
	for _, item := range items {
		total += item.Cost
	}
	trip.BudgetTotal = total

	_, err = tx.ExecContext(ctx,
		`INSERT INTO trips (id, user_id, name, description, start_date, end_date,
		                    budget_total, cover_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trip.ID, trip.UserID, trip.Name, trip.Description,
		trip.StartDate, trip.EndDate,
		trip.BudgetTotal, trip.CoverImage, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("旅行の作成に失敗しました: %w", err)
	}

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
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}

	return nil
}

// compile-time interface check
var _ TripRepository = (*PostgresTripRepo)(nil)

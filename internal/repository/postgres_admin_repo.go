package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresAdminStatsRepo はPostgreSQLを使用した管理向け集計リポジトリ。
// 集計は全行をアプリケーションに読み込まずSQLで行う。
type PostgresAdminStatsRepo struct {
	db *sql.DB
}

// NewPostgresAdminStatsRepo はPostgresAdminStatsRepoを生成する。
func NewPostgresAdminStatsRepo(db *sql.DB) *PostgresAdminStatsRepo {
	return &PostgresAdminStatsRepo{db: db}
}

// 人気ランキングの上限件数。
const popularLimit = 5

// GetStats は全体の集計値を取得する。
func (r *PostgresAdminStatsRepo) GetStats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{
		PopularCities: []*CityCount{},
		PopularTypes:  []*TypeCount{},
	}

	err := r.db.QueryRowContext(ctx,
		`SELECT
		    (SELECT count(*) FROM users),
		    (SELECT count(*) FROM trips),
		    (SELECT count(*) FROM itinerary_items),
		    (SELECT COALESCE(sum(budget_total), 0) FROM trips)`,
	).Scan(&stats.TotalUsers, &stats.TotalTrips, &stats.TotalItems, &stats.TotalBudget)
	if err != nil {
		return nil, fmt.Errorf("全体集計の取得に失敗しました: %w", err)
	}

	cities, err := r.popularCities(ctx)
	if err != nil {
		return nil, err
	}
	stats.PopularCities = cities

	types, err := r.popularTypes(ctx)
	if err != nil {
		return nil, err
	}
	stats.PopularTypes = types

	return stats, nil
}

// popularCities は旅程アイテム数の多い都市を取得する。空の都市名は除外する。
func (r *PostgresAdminStatsRepo) popularCities(ctx context.Context) ([]*CityCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT city_name, count(*)
		 FROM itinerary_items
		 WHERE city_name <> ''
		 GROUP BY city_name
		 ORDER BY count(*) DESC, city_name ASC
		 LIMIT $1`,
		popularLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("人気都市の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	cities := []*CityCount{}
	for rows.Next() {
		c := &CityCount{}
		if err := rows.Scan(&c.CityName, &c.Count); err != nil {
			return nil, fmt.Errorf("人気都市の読み取りに失敗しました: %w", err)
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("人気都市の走査に失敗しました: %w", err)
	}

	return cities, nil
}

// popularTypes は旅程アイテム数の多いアクティビティ種別を取得する。
// 種別が空のアイテムはOtherとして集計する。
func (r *PostgresAdminStatsRepo) popularTypes(ctx context.Context) ([]*TypeCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT CASE WHEN activity_type = '' THEN 'Other' ELSE activity_type END AS t,
		        count(*)
		 FROM itinerary_items
		 GROUP BY t
		 ORDER BY count(*) DESC, t ASC
		 LIMIT $1`,
		popularLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("人気種別の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	types := []*TypeCount{}
	for rows.Next() {
		t := &TypeCount{}
		if err := rows.Scan(&t.ActivityType, &t.Count); err != nil {
			return nil, fmt.Errorf("人気種別の読み取りに失敗しました: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("人気種別の走査に失敗しました: %w", err)
	}

	return types, nil
}

// compile-time interface check
var _ AdminStatsRepository = (*PostgresAdminStatsRepo)(nil)

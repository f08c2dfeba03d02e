package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// PostgresProfileRepo はPostgreSQLを使用したプロフィールリポジトリ。
type PostgresProfileRepo struct {
	db *sql.DB
}

// NewPostgresProfileRepo はPostgresProfileRepoを生成する。
func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{db: db}
}

// FindByID は指定ユーザーIDのプロフィールを取得する。見つからない場合はnilを返す。
func (r *PostgresProfileRepo) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, phone, city, country, avatar_url,
		        created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(
		&profile.ID, &profile.FirstName, &profile.LastName, &profile.Phone,
		&profile.City, &profile.Country, &profile.AvatarURL,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("プロフィールの取得に失敗しました: %w", err)
	}

	return profile, nil
}

// Upsert はプロフィールを作成または更新する。
// 既存行がある場合はcreated_atを保持したまま上書きする。
func (r *PostgresProfileRepo) Upsert(ctx context.Context, profile *model.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, first_name, last_name, phone, city, country,
		                       avatar_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    phone = EXCLUDED.phone,
		    city = EXCLUDED.city,
		    country = EXCLUDED.country,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = EXCLUDED.updated_at`,
		profile.ID, profile.FirstName, profile.LastName, profile.Phone,
		profile.City, profile.Country, profile.AvatarURL,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("プロフィールの保存に失敗しました: %w", err)
	}
	return nil
}

// ListRecent は作成日時の降順でプロフィールを取得する。
func (r *PostgresProfileRepo) ListRecent(ctx context.Context, limit int) ([]*model.Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, phone, city, country, avatar_url,
		        created_at, updated_at
		 FROM profiles
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("プロフィール一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile := &model.Profile{}
		if err := rows.Scan(
			&profile.ID, &profile.FirstName, &profile.LastName, &profile.Phone,
			&profile.City, &profile.Country, &profile.AvatarURL,
			&profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("プロフィール一覧の読み取りに失敗しました: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("プロフィール一覧の走査に失敗しました: %w", err)
	}

	return profiles, nil
}

// compile-time interface check
var _ ProfileRepository = (*PostgresProfileRepo)(nil)

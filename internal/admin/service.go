// Package admin は管理ダッシュボード向けの集計ロジックを提供する。
package admin

import (
	"context"
	"fmt"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/repository"
)

// 最近登録ユーザーの既定取得件数。
const defaultRecentLimit = 20

// Service は管理向け集計のサービス層。
// 集計はSQLで行われ、全行をアプリケーションに読み込まない。
type Service struct {
	statsRepo   repository.AdminStatsRepository
	profileRepo repository.ProfileRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(statsRepo repository.AdminStatsRepository, profileRepo repository.ProfileRepository) *Service {
	return &Service{
		statsRepo:   statsRepo,
		profileRepo: profileRepo,
	}
}

// GetStats はプラットフォーム全体の集計値を返す。
func (s *Service) GetStats(ctx context.Context) (*repository.AdminStats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("管理統計の取得に失敗しました: %w", err)
	}
	return stats, nil
}

// ListRecentUsers は最近作成されたプロフィールを返す。
// limitが0以下の場合は既定値を使用する。
func (s *Service) ListRecentUsers(ctx context.Context, limit int) ([]*model.Profile, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	profiles, err := s.profileRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	if profiles == nil {
		profiles = []*model.Profile{}
	}
	return profiles, nil
}

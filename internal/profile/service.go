// Package profile はユーザープロフィール管理のドメインロジックを提供する。
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/repository"
	"github.com/Ashwinram005/GlobeTrotter/internal/security"
)

// Input はプロフィールの更新リクエスト。
type Input struct {
	FirstName string
	LastName  string
	Phone     string
	City      string
	Country   string
	AvatarURL string
}

// Service はプロフィール管理のサービス層。
type Service struct {
	profileRepo repository.ProfileRepository
	sanitizer   security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(profileRepo repository.ProfileRepository, sanitizer security.ContentSanitizerService) *Service {
	return &Service{
		profileRepo: profileRepo,
		sanitizer:   sanitizer,
	}
}

// GetProfile は自分のプロフィールを取得する。
func (s *Service) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("プロフィールの取得に失敗しました: %w", err)
	}
	if profile == nil {
		return nil, model.NewProfileNotFoundError()
	}
	return profile, nil
}

// UpdateProfile は自分のプロフィールをupsertで保存する。
// 既存行がない場合は新規作成される。
func (s *Service) UpdateProfile(ctx context.Context, userID string, input Input) (*model.Profile, error) {
	existing, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("プロフィールの取得に失敗しました: %w", err)
	}

	now := time.Now()
	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
	}

	profile := &model.Profile{
		ID:        userID,
		FirstName: s.sanitizer.Sanitize(input.FirstName),
		LastName:  s.sanitizer.Sanitize(input.LastName),
		Phone:     s.sanitizer.Sanitize(input.Phone),
		City:      s.sanitizer.Sanitize(input.City),
		Country:   s.sanitizer.Sanitize(input.Country),
		AvatarURL: input.AvatarURL,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("プロフィールの保存に失敗しました: %w", err)
	}

	return profile, nil
}

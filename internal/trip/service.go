// Package trip は旅行管理のドメインロジックを提供する。
package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
	"github.com/Ashwinram005/GlobeTrotter/internal/repository"
	"github.com/Ashwinram005/GlobeTrotter/internal/security"
)

// Input は旅行の作成・更新リクエスト。
type Input struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	CoverImage  string
}

// PublicView は共有リンク向けの旅行ビュー。
// 所有者のプロフィールと日付順の旅程アイテムを含む。
type PublicView struct {
	Trip         *model.Trip
	OwnerProfile *model.Profile
	Items        []*model.ItineraryItem
}

// Service は旅行管理のサービス層。
// 所有者スコープのCRUD、コピー、公開ビューのビジネスロジックを提供する。
type Service struct {
	tripRepo    repository.TripRepository
	itemRepo    repository.ItineraryItemRepository
	profileRepo repository.ProfileRepository
	sanitizer   security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	tripRepo repository.TripRepository,
	itemRepo repository.ItineraryItemRepository,
	profileRepo repository.ProfileRepository,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		tripRepo:    tripRepo,
		itemRepo:    itemRepo,
		profileRepo: profileRepo,
		sanitizer:   sanitizer,
	}
}

// validateInput は旅行入力を検証し、サニタイズ済みの入力を返す。
func (s *Service) validateInput(input Input) (Input, error) {
	input.Name = s.sanitizer.Sanitize(input.Name)
	input.Description = s.sanitizer.Sanitize(input.Description)

	if input.Name == "" {
		return input, model.NewInvalidRequestError("旅行名は必須です")
	}
	if !model.ValidDate(input.StartDate) {
		return input, model.NewInvalidDateError(input.StartDate)
	}
	if !model.ValidDate(input.EndDate) {
		return input, model.NewInvalidDateError(input.EndDate)
	}
	// YYYY-MM-DD形式は辞書順比較で時系列順になる
	if input.StartDate > input.EndDate {
		return input, model.NewInvalidDateRangeError(input.StartDate, input.EndDate)
	}

	return input, nil
}

// CreateTrip は旅行を作成する。
// プロフィールが未作成の場合は空のプロフィールを同時に作成する。
func (s *Service) CreateTrip(ctx context.Context, userID string, input Input) (*model.Trip, error) {
	input, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &model.Trip{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		BudgetTotal: 0,
		CoverImage:  input.CoverImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("旅行の作成に失敗しました: %w", err)
	}

	slog.Info("trip created",
		slog.String("trip_id", trip.ID),
		slog.String("user_id", userID),
	)

	return trip, nil
}

// GetTrip は所有者チェック付きで旅行を取得する。
func (s *Service) GetTrip(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅行の取得に失敗しました: %w", err)
	}
	if trip == nil {
		return nil, model.NewTripNotFoundError(tripID)
	}
	if trip.UserID != userID {
		return nil, model.NewForbiddenError()
	}

	return trip, nil
}

// ListTrips はユーザーの旅行一覧を開始日の昇順で返す。
func (s *Service) ListTrips(ctx context.Context, userID string) ([]*model.Trip, error) {
	trips, err := s.tripRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("旅行一覧の取得に失敗しました: %w", err)
	}
	if trips == nil {
		trips = []*model.Trip{}
	}
	return trips, nil
}

// UpdateTrip は旅行の編集可能フィールドを更新する。
// budget_totalは旅程アイテムの書き込みでのみ変更される。
func (s *Service) UpdateTrip(ctx context.Context, userID, tripID string, input Input) (*model.Trip, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	input, err = s.validateInput(input)
	if err != nil {
		return nil, err
	}

	trip.Name = input.Name
	trip.Description = input.Description
	trip.StartDate = input.StartDate
	trip.EndDate = input.EndDate
	trip.CoverImage = input.CoverImage
	trip.UpdatedAt = time.Now()

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("旅行の更新に失敗しました: %w", err)
	}

	return trip, nil
}

// DeleteTrip は旅行を削除する。旅程アイテムはカスケード削除される。
func (s *Service) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if _, err := s.GetTrip(ctx, userID, tripID); err != nil {
		return err
	}

	if err := s.tripRepo.DeleteByID(ctx, tripID); err != nil {
		return fmt.Errorf("旅行の削除に失敗しました: %w", err)
	}

	slog.Info("trip deleted",
		slog.String("trip_id", tripID),
		slog.String("user_id", userID),
	)

	return nil
}

// CopyTrip は旅行と旅程アイテムを単一トランザクションで複製する。
// 複製された旅行の名前には "Copy of " が前置される。
func (s *Service) CopyTrip(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	src, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅程アイテムの取得に失敗しました: %w", err)
	}

	now := time.Now()
	copied := &model.Trip{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        "Copy of " + src.Name,
		Description: src.Description,
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
		CoverImage:  src.CoverImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	copiedItems := make([]*model.ItineraryItem, len(items))
	for i, item := range items {
		copiedItems[i] = &model.ItineraryItem{
			ID:           uuid.New().String(),
			TripID:       copied.ID,
			CityName:     item.CityName,
			ActivityName: item.ActivityName,
			ActivityType: item.ActivityType,
			Date:         item.Date,
			Cost:         item.Cost,
			StartTime:    item.StartTime,
			EndTime:      item.EndTime,
			CreatedAt:    now,
		}
	}

	if err := s.tripRepo.CreateWithItems(ctx, copied, copiedItems); err != nil {
		return nil, fmt.Errorf("旅行のコピーに失敗しました: %w", err)
	}

	slog.Info("trip copied",
		slog.String("source_trip_id", tripID),
		slog.String("new_trip_id", copied.ID),
		slog.String("user_id", userID),
	)

	return copied, nil
}

// GetPublicView は共有リンク向けの旅行ビューを認証なしで返す。
// 所有者のプロフィールが存在しない場合はnilのまま返す。
func (s *Service) GetPublicView(ctx context.Context, tripID string) (*PublicView, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅行の取得に失敗しました: %w", err)
	}
	if trip == nil {
		return nil, model.NewTripNotFoundError(tripID)
	}

	items, err := s.itemRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅程アイテムの取得に失敗しました: %w", err)
	}
	if items == nil {
		items = []*model.ItineraryItem{}
	}

	profile, err := s.profileRepo.FindByID(ctx, trip.UserID)
	if err != nil {
		return nil, fmt.Errorf("プロフィールの取得に失敗しました: %w", err)
	}

	return &PublicView{
		Trip:         trip,
		OwnerProfile: profile,
		Items:        items,
	}, nil
}

// ensureProfile はプロフィールが存在しない場合に空のプロフィールを作成する。
func (s *Service) ensureProfile(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("プロフィールの取得に失敗しました: %w", err)
	}
	if profile != nil {
		return nil
	}

	now := time.Now()
	if err := s.profileRepo.Upsert(ctx, &model.Profile{
		ID:        userID,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("プロフィールの作成に失敗しました: %w", err)
	}

	return nil
}

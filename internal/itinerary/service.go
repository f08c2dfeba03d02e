// Package itinerary は旅程アイテム管理のドメインロジックを提供する。
package itinerary

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

// ItemInput は旅程アイテムの保存リクエスト。
type ItemInput struct {
	CityName     string
	ActivityName string
	ActivityType string
	Date         string
	Cost         float64
	StartTime    string
	EndTime      string
}

// ItemView は旅程アイテムと旅行期間に対する異常フラグ。
// OutOfRangeは旅行期間外の日付を持つアイテムに付く。
// 期間外アイテムは保存自体は許可され、表示側で警告対象になる。
type ItemView struct {
	Item       *model.ItineraryItem
	OutOfRange bool
}

// Service は旅程アイテム管理のサービス層。
type Service struct {
	tripRepo  repository.TripRepository
	itemRepo  repository.ItineraryItemRepository
	sanitizer security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	tripRepo repository.TripRepository,
	itemRepo repository.ItineraryItemRepository,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		tripRepo:  tripRepo,
		itemRepo:  itemRepo,
		sanitizer: sanitizer,
	}
}

// List は指定旅行の旅程アイテムを日付の昇順で返す。
func (s *Service) List(ctx context.Context, userID, tripID string) ([]ItemView, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅程アイテムの取得に失敗しました: %w", err)
	}

	return buildViews(trip, items), nil
}

// Replace は指定旅行の旅程アイテムを全置換する。
// 削除・挿入・予算合計の再計算は単一トランザクションで行われる。
func (s *Service) Replace(ctx context.Context, userID, tripID string, inputs []ItemInput) ([]ItemView, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]*model.ItineraryItem, len(inputs))
	for i, input := range inputs {
		if !model.ValidDate(input.Date) {
			return nil, model.NewInvalidDateError(input.Date)
		}
		items[i] = &model.ItineraryItem{
			ID:           uuid.New().String(),
			TripID:       tripID,
			CityName:     s.sanitizer.Sanitize(input.CityName),
			ActivityName: s.sanitizer.Sanitize(input.ActivityName),
			ActivityType: s.sanitizer.Sanitize(input.ActivityType),
			Date:         input.Date,
			Cost:         input.Cost,
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			CreatedAt:    now,
		}
	}

	if err := s.itemRepo.ReplaceByTrip(ctx, tripID, items); err != nil {
		return nil, fmt.Errorf("旅程アイテムの置換に失敗しました: %w", err)
	}

	slog.Info("itinerary replaced",
		slog.String("trip_id", tripID),
		slog.String("user_id", userID),
		slog.Int("item_count", len(items)),
	)

	saved, err := s.itemRepo.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("旅程アイテムの再取得に失敗しました: %w", err)
	}

	return buildViews(trip, saved), nil
}

// ownedTrip は所有者チェック付きで旅行を取得する。
func (s *Service) ownedTrip(ctx context.Context, userID, tripID string) (*model.Trip, error) {
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

// buildViews はアイテムに旅行期間外フラグを付与する。
func buildViews(trip *model.Trip, items []*model.ItineraryItem) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{
			Item:       item,
			OutOfRange: item.Date < trip.StartDate || item.Date > trip.EndDate,
		}
	}
	return views
}

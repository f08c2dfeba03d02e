package repository

import (
	"testing"
	"time"

	"github.com/Ashwinram005/GlobeTrotter/internal/model"
)

// PostgresItineraryItemRepoはItineraryItemRepositoryインターフェースを満たすことを検証
func TestPostgresItineraryItemRepo_ImplementsInterface(t *testing.T) {
	var _ ItineraryItemRepository = (*PostgresItineraryItemRepo)(nil)
}

// NewPostgresItineraryItemRepoが正しく初期化されることを検証
func TestNewPostgresItineraryItemRepo_Initializes(t *testing.T) {
	repo := NewPostgresItineraryItemRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// ItineraryItemモデルのフィールドが正しく構築されることを検証
func TestPostgresItineraryItemRepo_ItemModel_Fields(t *testing.T) {
	now := time.Now()
	item := &model.ItineraryItem{
		ID:           "item-id-1",
		TripID:       "trip-id-1",
		CityName:     "Paris",
		ActivityName: "Visit Eiffel Tower",
		ActivityType: "Sightseeing",
		Date:         "2025-10-02",
		Cost:         25.5,
		StartTime:    "09:00",
		EndTime:      "11:00",
		CreatedAt:    now,
	}

	if item.CityName != "Paris" {
		t.Errorf("item.CityName = %q, want %q", item.CityName, "Paris")
	}
	if item.Date != "2025-10-02" {
		t.Errorf("item.Date = %q, want %q", item.Date, "2025-10-02")
	}
	if item.Cost != 25.5 {
		t.Errorf("item.Cost = %v, want %v", item.Cost, 25.5)
	}
}

package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ashwinram005/GlobeTrotter/internal/metrics"
)

const (
	// minQueryLen はプロバイダー検索を行う最小クエリ長。
	// これ未満のクエリはディスカバリー（人気都市一覧）にフォールバックする。
	minQueryLen = 2
	// discoverLimit はディスカバリー結果の最大件数。
	discoverLimit = 60
)

// capitalsProvider は首都一覧の取得を抽象化する。
type capitalsProvider interface {
	FetchCapitals(ctx context.Context) ([]City, error)
}

// cityGeocoder は都市名検索を抽象化する。
type cityGeocoder interface {
	SearchCities(ctx context.Context, query string) ([]City, error)
}

// activityProvider はアクティビティ検索を抽象化する。
type activityProvider interface {
	SearchActivities(ctx context.Context, query string) ([]Activity, error)
}

// Service は検索のサービス層。
// 外部プロバイダーによるベストエフォートの検索を提供し、
// 失敗時は必ずローカルフォールバックで非空の結果を返す。
type Service struct {
	countries capitalsProvider
	geocoder  cityGeocoder
	wiki      activityProvider
	collector metrics.MetricsCollector
	logger    *slog.Logger
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	countries capitalsProvider,
	geocoder cityGeocoder,
	wiki activityProvider,
	collector metrics.MetricsCollector,
	logger *slog.Logger,
) *Service {
	return &Service{
		countries: countries,
		geocoder:  geocoder,
		wiki:      wiki,
		collector: collector,
		logger:    logger,
	}
}

// SearchCities は都市を検索する。
// クエリが短い場合はディスカバリー結果を返す。
// ジオコーディング失敗時もディスカバリーにフォールバックする。
func (s *Service) SearchCities(ctx context.Context, query string) ([]City, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return s.DiscoverCities(ctx)
	}

	start := time.Now()
	cities, err := s.geocoder.SearchCities(ctx, query)
	s.collector.RecordSearchLatency("openmeteo", time.Since(start))
	if err != nil {
		s.collector.RecordSearchFailure("openmeteo")
		s.logger.Warn("都市検索に失敗したためディスカバリーにフォールバックします",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return s.DiscoverCities(ctx)
	}
	s.collector.RecordSearchSuccess("openmeteo")

	if cities == nil {
		cities = []City{}
	}
	return cities, nil
}

// DiscoverCities は人気都市のディスカバリー一覧を返す。
// REST Countriesの首都一覧とキュレーション済みの非首都都市を並行で構築し、
// 人気度の降順で上位を返す。プロバイダー失敗時はローカルリストを返す。
func (s *Service) DiscoverCities(ctx context.Context) ([]City, error) {
	var capitals []City
	curated := curatedCities()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		cities, err := s.countries.FetchCapitals(gctx)
		s.collector.RecordSearchLatency("restcountries", time.Since(start))
		if err != nil {
			s.collector.RecordSearchFailure("restcountries")
			return err
		}
		s.collector.RecordSearchSuccess("restcountries")
		capitals = cities
		return nil
	})

	g.Go(func() error {
		// キュレーション都市の人口をジオコーディングで補強する。
		// 失敗してもディスカバリー自体は静的データで継続する。
		for i := range curated {
			results, err := s.geocoder.SearchCities(gctx, curated[i].Name)
			if err != nil || len(results) == 0 {
				continue
			}
			if results[0].Population > 0 {
				curated[i].Population = results[0].Population
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.collector.RecordSearchFallback("cities")
		s.logger.Warn("ディスカバリーに失敗したためローカルリストを返します",
			slog.String("error", err.Error()),
		)
		return fallbackCities(), nil
	}

	all := append(curated, capitals...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Popularity > all[j].Popularity
	})
	if len(all) > discoverLimit {
		all = all[:discoverLimit]
	}

	return all, nil
}

// SearchActivities はアクティビティを検索する。
// クエリが短い場合とプロバイダー失敗時はローカルリストを返す。
func (s *Service) SearchActivities(ctx context.Context, query string) ([]Activity, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return fallbackActivities(), nil
	}

	start := time.Now()
	activities, err := s.wiki.SearchActivities(ctx, query)
	s.collector.RecordSearchLatency("wikipedia", time.Since(start))
	if err != nil {
		s.collector.RecordSearchFailure("wikipedia")
		s.collector.RecordSearchFallback("activities")
		s.logger.Warn("アクティビティ検索に失敗したためローカルリストを返します",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return fallbackActivities(), nil
	}
	s.collector.RecordSearchSuccess("wikipedia")

	if activities == nil {
		activities = []Activity{}
	}
	return activities, nil
}

// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ワーカーやサービス層から利用する。
type MetricsCollector interface {
	RecordSearchSuccess(provider string)
	RecordSearchFailure(provider string)
	RecordSearchFallback(kind string)
	RecordSearchLatency(provider string, duration time.Duration)
	RecordHTTPStatus(statusCode int)
	RecordTripCreated()
	RecordItineraryReplaced(itemCount int)
	RecordBudgetRepaired(count int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	searchSuccess     *prometheus.CounterVec
	searchFail        *prometheus.CounterVec
	searchFallback    *prometheus.CounterVec
	searchLatency     *prometheus.HistogramVec
	httpStatus        *prometheus.CounterVec
	tripsCreated      prometheus.Counter
	itineraryReplaced prometheus.Counter
	itemsReplaced     prometheus.Counter
	budgetRepaired    prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searchSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "globetrotter_search_success_total",
			Help: "検索プロバイダー呼び出し成功の合計数",
		}, []string{"provider"}),
		searchFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "globetrotter_search_fail_total",
			Help: "検索プロバイダー呼び出し失敗の合計数",
		}, []string{"provider"}),
		searchFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "globetrotter_search_fallback_total",
			Help: "ローカルフォールバックが使用された検索の合計数",
		}, []string{"kind"}),
		searchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "globetrotter_search_latency_seconds",
			Help:    "検索プロバイダー呼び出しのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "globetrotter_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		tripsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "globetrotter_trips_created_total",
			Help: "作成された旅行の合計数",
		}),
		itineraryReplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "globetrotter_itinerary_replacements_total",
			Help: "旅程アイテム全置換の合計数",
		}),
		itemsReplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "globetrotter_itinerary_items_written_total",
			Help: "置換で書き込まれた旅程アイテムの合計数",
		}),
		budgetRepaired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "globetrotter_budget_repairs_total",
			Help: "整合性ジョブで修復された予算合計の件数",
		}),
	}

	reg.MustRegister(
		c.searchSuccess,
		c.searchFail,
		c.searchFallback,
		c.searchLatency,
		c.httpStatus,
		c.tripsCreated,
		c.itineraryReplaced,
		c.itemsReplaced,
		c.budgetRepaired,
	)

	return c
}

// RecordSearchSuccess は検索プロバイダー呼び出しの成功を記録する。
func (c *Collector) RecordSearchSuccess(provider string) {
	c.searchSuccess.WithLabelValues(provider).Inc()
}

// RecordSearchFailure は検索プロバイダー呼び出しの失敗を記録する。
func (c *Collector) RecordSearchFailure(provider string) {
	c.searchFail.WithLabelValues(provider).Inc()
}

// RecordSearchFallback はローカルフォールバックの使用を記録する。
// kindは"cities"または"activities"。
func (c *Collector) RecordSearchFallback(kind string) {
	c.searchFallback.WithLabelValues(kind).Inc()
}

// RecordSearchLatency は検索プロバイダー呼び出しのレイテンシを記録する。
func (c *Collector) RecordSearchLatency(provider string, duration time.Duration) {
	c.searchLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordTripCreated は旅行の作成を記録する。
func (c *Collector) RecordTripCreated() {
	c.tripsCreated.Inc()
}

// RecordItineraryReplaced は旅程アイテムの全置換を記録する。
func (c *Collector) RecordItineraryReplaced(itemCount int) {
	c.itineraryReplaced.Inc()
	c.itemsReplaced.Add(float64(itemCount))
}

// RecordBudgetRepaired は整合性ジョブによる予算合計の修復件数を記録する。
func (c *Collector) RecordBudgetRepaired(count int) {
	c.budgetRepaired.Add(float64(count))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

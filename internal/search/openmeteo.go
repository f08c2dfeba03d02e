package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// openMeteoEndpoint はOpen-Meteoジオコーディングの検索エンドポイント。
	openMeteoEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	// geocodeResultLimit は1クエリあたりの最大取得件数。
	geocodeResultLimit = 10
	// userAgent は外部API呼び出し時のUser-Agentヘッダ。
	userAgent = "GlobeTrotter/1.0 Trip Planner"
)

// geocodeResult はOpen-Meteoジオコーディングの1件のレスポンス。
type geocodeResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Admin1     string `json:"admin1"`
	Timezone   string `json:"timezone"`
	Population int64  `json:"population"`
}

// geocodeResponse はOpen-Meteoジオコーディングのレスポンス形式。
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

// GeocodeClient はOpen-Meteoジオコーディングのクライアント。
// 任意の都市名をクエリとして検索できる。
type GeocodeClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string // テスト用にエンドポイントを差し替え可能
}

// NewGeocodeClient はGeocodeClientの新しいインスタンスを生成する。
func NewGeocodeClient(httpClient *http.Client, logger *slog.Logger) *GeocodeClient {
	return &GeocodeClient{
		httpClient: httpClient,
		logger:     logger,
		endpoint:   openMeteoEndpoint,
	}
}

// SearchCities は指定クエリで都市を検索する。
// 該当なしの場合は空スライスを返す。
func (c *GeocodeClient) SearchCities(ctx context.Context, query string) ([]City, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("エンドポイントURLのパースに失敗しました: %w", err)
	}

	q := reqURL.Query()
	q.Set("name", query)
	q.Set("count", strconv.Itoa(geocodeResultLimit))
	q.Set("language", "en")
	q.Set("format", "json")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Open-Meteoジオコーディングの呼び出しに失敗しました",
			slog.String("error", err.Error()),
			slog.String("query", query),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Open-Meteoジオコーディングがエラーステータスを返しました",
			slog.Int("http_status", resp.StatusCode),
			slog.String("query", query),
		)
		return nil, fmt.Errorf("Open-Meteoジオコーディングがステータス %d を返しました", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}

	var result geocodeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("レスポンスJSONのパースに失敗しました: %w", err)
	}

	cities := make([]City, 0, len(result.Results))
	for _, item := range result.Results {
		country := item.Country
		if country == "" {
			country = "Unknown"
		}
		region := item.Admin1
		if region == "" {
			region = item.Timezone
		}
		cities = append(cities, City{
			ID:          strconv.FormatInt(item.ID, 10),
			Name:        item.Name,
			Country:     country,
			Region:      region,
			CostIndex:   65,
			Popularity:  80,
			Description: fmt.Sprintf("%s is a beautiful location in %s. Discover its unique charm and culture.", item.Name, country),
			Population:  item.Population,
		})
	}

	return cities, nil
}

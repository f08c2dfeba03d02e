package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// restCountriesEndpoint はREST Countries APIの国一覧エンドポイント。
const restCountriesEndpoint = "https://restcountries.com/v3.1/all?fields=name,capital,region,population,cca3"

// countryData はREST Countries APIのレスポンス形式。
type countryData struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Region     string   `json:"region"`
	Population int64    `json:"population"`
	CCA3       string   `json:"cca3"`
}

// RestCountriesClient はREST Countries APIのクライアント。
// 首都を持つ国の一覧から都市ディスカバリー用のリストを構築する。
type RestCountriesClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string // テスト用にエンドポイントを差し替え可能
}

// NewRestCountriesClient はRestCountriesClientの新しいインスタンスを生成する。
func NewRestCountriesClient(httpClient *http.Client, logger *slog.Logger) *RestCountriesClient {
	return &RestCountriesClient{
		httpClient: httpClient,
		logger:     logger,
		endpoint:   restCountriesEndpoint,
	}
}

// FetchCapitals は首都を持つ全ての国を取得し、都市リストに変換する。
func (c *RestCountriesClient) FetchCapitals(ctx context.Context) ([]City, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("REST Countries APIの呼び出しに失敗しました",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("REST Countries APIがエラーステータスを返しました",
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, fmt.Errorf("REST Countries APIがステータス %d を返しました", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}

	var countries []countryData
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("レスポンスJSONのパースに失敗しました: %w", err)
	}

	cities := make([]City, 0, len(countries))
	for _, country := range countries {
		if len(country.Capital) == 0 {
			continue
		}
		capital := country.Capital[0]
		cities = append(cities, City{
			ID:          country.CCA3,
			Name:        capital,
			Country:     country.Name.Common,
			Region:      country.Region,
			CostIndex:   costIndexByRegion(country.Region),
			Popularity:  popularityByPopulation(country.Population),
			Description: fmt.Sprintf("Experience the culture and history of %s, the capital of %s.", capital, country.Name.Common),
			Population:  country.Population,
		})
	}

	return cities, nil
}

// costIndexByRegion は地域ごとの概算コスト指数を返す。
func costIndexByRegion(region string) int {
	switch region {
	case "Europe":
		return 75
	case "Americas":
		return 70
	case "Asia":
		return 55
	case "Oceania":
		return 80
	case "Africa":
		return 45
	case "Antarctic":
		return 95
	default:
		return 60
	}
}

// popularityByPopulation は人口から人気度を推定する。上限は95。
func popularityByPopulation(population int64) int {
	p := int(population/10000000)*20 + 60
	if p > 95 {
		return 95
	}
	return p
}

package search

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// --- RestCountriesClient のテスト ---

func TestRestCountriesClient_FetchCapitals_MapsCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("HTTPメソッド = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":{"common":"France","official":"French Republic"},"capital":["Paris"],"region":"Europe","population":67390000,"cca3":"FRA"},
			{"name":{"common":"Antarctica","official":"Antarctica"},"capital":[],"region":"Antarctic","population":1000,"cca3":"ATA"},
			{"name":{"common":"Japan","official":"Japan"},"capital":["Tokyo"],"region":"Asia","population":125800000,"cca3":"JPN"}
		]`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewRestCountriesClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	cities, err := c.FetchCapitals(context.Background())
	if err != nil {
		t.Fatalf("FetchCapitals() error = %v", err)
	}

	// 首都のない国は除外される
	if len(cities) != 2 {
		t.Fatalf("len(cities) = %d, want 2", len(cities))
	}

	paris := cities[0]
	if paris.Name != "Paris" || paris.Country != "France" {
		t.Errorf("unexpected first city: %+v", paris)
	}
	if paris.CostIndex != 75 {
		t.Errorf("Europe costIndex = %d, want 75", paris.CostIndex)
	}
	// 人口67M → min(95, 6*20+60) = 95
	if paris.Popularity != 95 {
		t.Errorf("popularity = %d, want 95", paris.Popularity)
	}

	tokyo := cities[1]
	if tokyo.CostIndex != 55 {
		t.Errorf("Asia costIndex = %d, want 55", tokyo.CostIndex)
	}
}

func TestRestCountriesClient_FetchCapitals_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewRestCountriesClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	_, err := c.FetchCapitals(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// --- GeocodeClient のテスト ---

func TestGeocodeClient_SearchCities_MapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "paris" {
			t.Errorf("name = %q, want %q", got, "paris")
		}
		if got := r.URL.Query().Get("count"); got != "10" {
			t.Errorf("count = %q, want %q", got, "10")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"id":2988507,"name":"Paris","country":"France","admin1":"Île-de-France","population":2138551},
			{"id":4717560,"name":"Paris","country":"United States","admin1":"Texas","population":24171}
		]}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewGeocodeClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	cities, err := c.SearchCities(context.Background(), "paris")
	if err != nil {
		t.Fatalf("SearchCities() error = %v", err)
	}

	if len(cities) != 2 {
		t.Fatalf("len(cities) = %d, want 2", len(cities))
	}
	if cities[0].ID != "2988507" {
		t.Errorf("city ID = %q, want %q", cities[0].ID, "2988507")
	}
	if cities[0].Region != "Île-de-France" {
		t.Errorf("region = %q, want %q", cities[0].Region, "Île-de-France")
	}
	if cities[1].Country != "United States" {
		t.Errorf("country = %q, want %q", cities[1].Country, "United States")
	}
}

func TestGeocodeClient_SearchCities_NoResults_ReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewGeocodeClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	cities, err := c.SearchCities(context.Background(), "zzzzz")
	if err != nil {
		t.Fatalf("SearchCities() error = %v", err)
	}
	if len(cities) != 0 {
		t.Errorf("len(cities) = %d, want 0", len(cities))
	}
}

func TestGeocodeClient_SearchCities_MissingCountry_UsesUnknown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":1,"name":"Somewhere","timezone":"Etc/UTC"}]}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewGeocodeClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	cities, err := c.SearchCities(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("SearchCities() error = %v", err)
	}
	if cities[0].Country != "Unknown" {
		t.Errorf("country = %q, want %q", cities[0].Country, "Unknown")
	}
	// admin1がない場合はtimezoneを地域として使用する
	if cities[0].Region != "Etc/UTC" {
		t.Errorf("region = %q, want %q", cities[0].Region, "Etc/UTC")
	}
}

// --- WikipediaClient のテスト ---

func TestWikipediaClient_SearchActivities_MapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("srsearch"); got != "eiffel" {
			t.Errorf("srsearch = %q, want %q", got, "eiffel")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query":{"search":[
			{"title":"Eiffel Tower","pageid":9232,"snippet":"The <span class=\"searchmatch\">Eiffel</span> Tower is a wrought-iron lattice tower"},
			{"title":"Gustave Eiffel","pageid":12345,"snippet":""}
		]}}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewWikipediaClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	activities, err := c.SearchActivities(context.Background(), "eiffel")
	if err != nil {
		t.Fatalf("SearchActivities() error = %v", err)
	}

	if len(activities) != 2 {
		t.Fatalf("len(activities) = %d, want 2", len(activities))
	}

	first := activities[0]
	if first.ID != "wiki-9232" {
		t.Errorf("activity ID = %q, want %q", first.ID, "wiki-9232")
	}
	if first.Name != "Eiffel Tower" {
		t.Errorf("name = %q, want %q", first.Name, "Eiffel Tower")
	}
	// ハイライトマークアップが除去される
	if first.Description != "The Eiffel Tower is a wrought-iron lattice tower" {
		t.Errorf("description = %q", first.Description)
	}
	// 結果位置からカテゴリが決定的に割り当てられる
	if first.Category != "Sightseeing" {
		t.Errorf("category = %q, want %q", first.Category, "Sightseeing")
	}

	// 空スニペットにはテンプレート説明が入る
	if activities[1].Description == "" {
		t.Error("expected non-empty description for empty snippet")
	}
}

func TestWikipediaClient_SearchActivities_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var buf bytes.Buffer
	c := NewWikipediaClient(server.Client(), newTestLogger(&buf))
	c.endpoint = server.URL

	_, err := c.SearchActivities(context.Background(), "louvre")
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestCleanSnippet_TruncatesLongText(t *testing.T) {
	long := make([]rune, 0, 150)
	for i := 0; i < 150; i++ {
		long = append(long, 'a')
	}

	got := cleanSnippet(string(long))
	if len([]rune(got)) != snippetMaxLen+3 {
		t.Errorf("len = %d, want %d", len([]rune(got)), snippetMaxLen+3)
	}
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashwinram005/GlobeTrotter/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionFinder     middleware.SessionFinder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	CSRFConfig        middleware.CSRFConfig

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// 旅行・旅程
	TripService      TripServiceInterface
	ItineraryService ItineraryServiceInterface

	// 検索
	SearchService SearchServiceInterface

	// プロフィール
	ProfileService ProfileServiceInterface

	// 管理
	AdminService AdminServiceInterface

	// メトリクス
	TripCounter      TripCounter
	ItineraryCounter ItineraryCounter
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → CORS → SecurityHeaders → SessionMiddleware → RateLimit(General) → CSRF
//
// 認証ルート（/auth/*）と公開ビュー（/api/public/*）はセッションミドルウェアの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	// 全ルートに効くミドルウェア
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	tripHandler := NewTripHandler(deps.TripService, deps.ItineraryService, deps.TripCounter)
	itineraryHandler := NewItineraryHandler(deps.ItineraryService, deps.ItineraryCounter)
	searchHandler := NewSearchHandler(deps.SearchService)
	profileHandler := NewProfileHandler(deps.ProfileService)
	adminHandler := NewAdminHandler(deps.AdminService)

	// --- 認証不要のルート ---

	// ヘルスチェック
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// 認証ルート
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	// 共有旅程ビュー（読み取り専用）
	r.Get("/api/public/trips/{id}", tripHandler.GetPublicView)

	// CSRFトークン取得
	r.Method(http.MethodGet, "/api/csrf-token", middleware.NewCSRFTokenHandler(deps.CSRFConfig))

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Session → RateLimit(General) → CSRF
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
		r.Use(deps.RateLimiter.GeneralMiddleware())
		r.Use(middleware.NewCSRFMiddleware(deps.CSRFConfig))

		// 旅行管理
		r.Route("/api/trips", func(r chi.Router) {
			r.Get("/", tripHandler.ListTrips)
			r.Post("/", tripHandler.CreateTrip)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", tripHandler.GetTrip)
				r.Put("/", tripHandler.UpdateTrip)
				r.Delete("/", tripHandler.DeleteTrip)
				r.Post("/copy", tripHandler.CopyTrip)

				// 派生ビュー
				r.Get("/calendar", tripHandler.GetCalendar)
				r.Get("/budget", tripHandler.GetBudget)

				// 旅程アイテム
				r.Get("/itinerary", itineraryHandler.ListItems)
				r.Put("/itinerary", itineraryHandler.ReplaceItems)
			})
		})

		// 検索（外部プロバイダー保護のため専用レート制限を追加）
		r.Route("/api/search", func(r chi.Router) {
			r.Use(deps.RateLimiter.SearchMiddleware())
			r.Get("/cities", searchHandler.SearchCities)
			r.Get("/activities", searchHandler.SearchActivities)
		})

		// プロフィール管理
		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", profileHandler.GetProfile)
			r.Put("/", profileHandler.UpdateProfile)
		})

		// 管理ダッシュボード
		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/stats", adminHandler.GetStats)
			r.Get("/users", adminHandler.ListUsers)
		})
	})

	return r
}

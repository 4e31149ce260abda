package httpserver

import "net/http"

// Routes groups handlers by endpoint.
type Routes struct {
	Session         http.HandlerFunc
	ChargersList    http.HandlerFunc
	ChargerDetail   http.HandlerFunc
	ChargerReviews  http.HandlerFunc
	ChargerEstimate http.HandlerFunc
	OrderBook       http.HandlerFunc
	OrderComplete   http.HandlerFunc
	OrderCancel     http.HandlerFunc
	OrderHistory    http.HandlerFunc
	OrderLive       http.HandlerFunc
	StatsMe         http.HandlerFunc
	OwnerEarnings   http.HandlerFunc
	ReviewCreate    http.HandlerFunc
	FavoriteAdd     http.HandlerFunc
	FavoriteRemove  http.HandlerFunc
	FavoriteList    http.HandlerFunc
	ChargingFeed    http.HandlerFunc
	Health          http.HandlerFunc
}

// NewRouter registers endpoints. Everything except the role toggle and the
// health check sits behind the session middleware.
func NewRouter(routes Routes, session func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	register := func(pattern string, handler http.HandlerFunc) {
		if handler == nil {
			return
		}
		mux.Handle(pattern, session(handler))
	}

	if routes.Session != nil {
		mux.Handle("POST /session", routes.Session)
	}
	if routes.Health != nil {
		mux.Handle("GET /health", routes.Health)
	}

	register("GET /chargers", routes.ChargersList)
	register("GET /chargers/{id}", routes.ChargerDetail)
	register("GET /chargers/{id}/reviews", routes.ChargerReviews)
	register("GET /chargers/{id}/estimate", routes.ChargerEstimate)
	register("POST /orders", routes.OrderBook)
	register("POST /orders/{id}/complete", routes.OrderComplete)
	register("POST /orders/{id}/cancel", routes.OrderCancel)
	register("GET /orders/me", routes.OrderHistory)
	register("GET /orders/{id}/live", routes.OrderLive)
	register("GET /stats/me", routes.StatsMe)
	register("GET /owners/me/earnings", routes.OwnerEarnings)
	register("POST /reviews", routes.ReviewCreate)
	register("PUT /favorites/{chargerId}", routes.FavoriteAdd)
	register("DELETE /favorites/{chargerId}", routes.FavoriteRemove)
	register("GET /favorites", routes.FavoriteList)
	register("GET /ws/charging", routes.ChargingFeed)

	return mux
}

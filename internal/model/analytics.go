package model

// AnalyticsSnapshot is the precomputed aggregate view served by the analytics
// endpoint. It is read-only and replaced wholesale on every fetch; nothing in
// it is derived client-side from paginated data.
type AnalyticsSnapshot struct {
	StatusDistribution []StatusCount    `json:"status_distribution"`
	TopCities          []CityCount      `json:"top_cities"`
	DailyTrends        []DailyCount     `json:"daily_trends"`
	Summary            AnalyticsSummary `json:"summary"`
}

// StatusCount is one bucket of the status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CityCount is one entry of the top destination cities list.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// DailyCount is one point of the daily shipment trend series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AnalyticsSummary carries the headline numbers of the snapshot.
type AnalyticsSummary struct {
	TopClient      string  `json:"top_client"`
	TotalShipments int     `json:"total_shipments"`
	DeliveredCount int     `json:"delivered_count"`
	TopClientCount int     `json:"top_client_count"`
	TotalValue     float64 `json:"total_value"`
	DeliveryRate   float64 `json:"delivery_rate"`
}

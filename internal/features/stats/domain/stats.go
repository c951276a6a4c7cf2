package domain

// FleetStats counts equipment by availability.
type FleetStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	InUse     int `json:"inUse"`
	Down      int `json:"down"`
}

// RevenueStats sums receivables by billing state.
type RevenueStats struct {
	Total       float64            `json:"total"`
	Outstanding float64            `json:"outstanding"`
	ByStatus    map[string]float64 `json:"byStatus"`
}

// Stats is the dashboard aggregate returned by GET /stats.
type Stats struct {
	Loads    map[string]int `json:"loads"`
	Drivers  FleetStats     `json:"drivers"`
	Trucks   FleetStats     `json:"trucks"`
	Trailers FleetStats     `json:"trailers"`
	Revenue  RevenueStats   `json:"revenue"`
}

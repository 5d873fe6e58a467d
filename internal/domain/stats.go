package domain

// AirlineCount is one entry of the top-airlines ranking. Percentage is the
// airline's share of the total flight count, rounded to the nearest integer.
type AirlineCount struct {
	Airline    string `json:"airline"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MonthCount is one bucket of the current-year activity histogram.
// Month is a three-letter label ("Jan", "Feb", ...).
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Stats is the computed summary over one owner's full collection. It is
// never persisted or cached; every request recomputes it.
type Stats struct {
	TotalFlights    int            `json:"totalFlights"`
	AirportsVisited int            `json:"airportsVisited"`
	AirlinesFlown   int            `json:"airlinesFlown"`
	TopAirlines     []AirlineCount `json:"topAirlines"`
	RecentFlights   []Flight       `json:"recentFlights"`
	MonthlyActivity []MonthCount   `json:"monthlyActivity"`
}

package models

type SearchResponse struct {
	Results      []Bundle  `json:"results"`
	HotelWarning *string   `json:"hotelWarning"`
	SortBasis    SortBasis `json:"sortBasis"`
}

type AirportsResponse struct {
	Results []AirportSuggestion `json:"results"`
	Stale   bool                `json:"stale,omitempty"`
}

type PlacesMeta struct {
	SentVersion string `json:"sentVersion,omitempty"`
	SentURL     string `json:"sentUrl,omitempty"`
	Count       *int   `json:"count,omitempty"`
	Error       string `json:"error,omitempty"`
}

type PlacesResponse struct {
	OK     bool        `json:"ok"`
	Source string      `json:"source"`
	Status int         `json:"status,omitempty"`
	Meta   *PlacesMeta `json:"meta,omitempty"`
	Error  string      `json:"error,omitempty"`
	Data   []Place     `json:"data"`
}

type BookingResponse struct {
	OK         bool   `json:"ok"`
	BookingURL string `json:"bookingUrl,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	OK             bool   `json:"ok"`
	Router         string `json:"router"`
	HasDuffelKey   bool   `json:"hasDuffelKey"`
	DuffelVersion  string `json:"duffelVersion"`
	AuthConfigured bool   `json:"authConfigured"`
	Now            string `json:"now"`
}

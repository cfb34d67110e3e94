package models

// AirportRecord is one entry of the public airport dataset.
type AirportRecord struct {
	IATA    string `json:"iata"`
	ICAO    string `json:"icao"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type AirportSuggestion struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Place struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Label   string `json:"label"`
}

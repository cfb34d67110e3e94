package models

// OfferFlight carries the flight fields a checkout offer may arrive with.
type OfferFlight struct {
	CarrierName       string   `json:"carrier_name,omitempty"`
	Carrier           string   `json:"carrier,omitempty"`
	Origin            string   `json:"origin,omitempty"`
	Destination       string   `json:"destination,omitempty"`
	PriceUSDConverted *float64 `json:"price_usd_converted,omitempty"`
	PriceUSD          *float64 `json:"price_usd,omitempty"`
}

// Offer is the loosely-shaped selection the UI posts to checkout. Every
// field is optional; see booking.Normalize for the resolution order.
type Offer struct {
	Flight             *OfferFlight `json:"flight,omitempty"`
	TotalCost          *float64     `json:"total_cost,omitempty"`
	TotalCostConverted *float64     `json:"total_cost_converted,omitempty"`
	Price              *float64     `json:"price,omitempty"`
	Airline            string       `json:"airline,omitempty"`
	Origin             string       `json:"origin,omitempty"`
	Destination        string       `json:"destination,omitempty"`
	Currency           string       `json:"currency,omitempty"`
	Pax                float64      `json:"pax,omitempty"`
	Passengers         float64      `json:"passengers,omitempty"`
}

// ResolvedOffer is an Offer with every default applied.
type ResolvedOffer struct {
	Airline     string
	Origin      string
	Destination string
	Currency    string
	Pax         float64
	Price       float64
}

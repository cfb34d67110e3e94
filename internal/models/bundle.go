package models

type Segment struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DepartTime      string `json:"depart_time"`
	ArriveTime      string `json:"arrive_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FlightLinks struct {
	Airline    *Link  `json:"airline,omitempty"`
	Skyscanner string `json:"skyscanner,omitempty"`
}

type Flight struct {
	CarrierName     string      `json:"carrier_name"`
	Cabin           Cabin       `json:"cabin"`
	Stops           int         `json:"stops"`
	Refundable      bool        `json:"refundable"`
	Greener         bool        `json:"greener"`
	PriceUSD        float64     `json:"price_usd"`
	SegmentsOut     []Segment   `json:"segments_out"`
	SegmentsIn      []Segment   `json:"segments_in,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	Deeplinks       FlightLinks `json:"deeplinks"`
}

type HotelLinks struct {
	Booking string `json:"booking,omitempty"`
}

type Hotel struct {
	Name              string     `json:"name"`
	Star              float64    `json:"star"`
	City              string     `json:"city"`
	PriceConverted    float64    `json:"price_converted"`
	Currency          string     `json:"currency"`
	Deeplinks         HotelLinks `json:"deeplinks"`
	FilteredOutByStar bool       `json:"filteredOutByStar,omitempty"`
}

// Bundle is one candidate flight, optionally paired with a hotel.
type Bundle struct {
	ID        string      `json:"id"`
	Currency  string      `json:"currency"`
	Flight    *Flight     `json:"flight,omitempty"`
	Hotel     *Hotel      `json:"hotel,omitempty"`
	Deeplinks FlightLinks `json:"deeplinks"`

	FlightTotal  float64 `json:"flight_total"`
	HotelTotal   float64 `json:"hotel_total"`
	TotalCost    float64 `json:"total_cost"`
	DisplayTotal float64 `json:"display_total"`
}

// DurationOrMax returns the total itinerary duration, or a large sentinel when unknown.
func (b Bundle) DurationOrMax() float64 {
	if b.Flight == nil || b.Flight.DurationMinutes == nil {
		return 1e9
	}
	return float64(*b.Flight.DurationMinutes)
}

func (b Bundle) Stops() int {
	if b.Flight == nil {
		return 99
	}
	return b.Flight.Stops
}

func (b Bundle) Refundable() bool {
	return b.Flight != nil && b.Flight.Refundable
}

func (b Bundle) Greener() bool {
	return b.Flight != nil && b.Flight.Greener
}

package models

type Cabin string

const (
	CabinEconomy        Cabin = "ECONOMY"
	CabinPremiumEconomy Cabin = "PREMIUM_ECONOMY"
	CabinBusiness       Cabin = "BUSINESS"
	CabinFirst          Cabin = "FIRST"
)

type SortKey string

const (
	SortBest     SortKey = "best"
	SortCheapest SortKey = "cheapest"
	SortFastest  SortKey = "fastest"
	SortFlexible SortKey = "flexible"
)

// SortBasis selects which total price-based sorting compares.
type SortBasis string

const (
	SortBasisFlightOnly SortBasis = "flightOnly"
	SortBasisBundle     SortBasis = "bundle"
)

type SearchRequest struct {
	Origin      string  `json:"origin" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	DepartDate  string  `json:"departDate" validate:"required"`
	ReturnDate  *string `json:"returnDate,omitempty" validate:"required_if=RoundTrip true"`
	RoundTrip   bool    `json:"roundTrip"`

	Passengers             int   `json:"passengers"`
	PassengersAdults       int   `json:"passengersAdults"`
	PassengersChildren     int   `json:"passengersChildren"`
	PassengersInfants      int   `json:"passengersInfants"`
	PassengersChildrenAges []int `json:"passengersChildrenAges,omitempty"`

	Cabin Cabin `json:"cabin"`

	IncludeHotel  bool     `json:"includeHotel"`
	HotelCheckIn  *string  `json:"hotelCheckIn,omitempty"`
	HotelCheckOut *string  `json:"hotelCheckOut,omitempty"`
	Nights        *int     `json:"nights,omitempty"`
	MinHotelStar  *float64 `json:"minHotelStar,omitempty"`

	MinBudget  *float64   `json:"minBudget,omitempty"`
	MaxBudget  *float64   `json:"maxBudget,omitempty"`
	Currency   string     `json:"currency"`
	Sort       SortKey    `json:"sort"`
	MaxStops   *int       `json:"maxStops,omitempty"`
	Refundable bool       `json:"refundable,omitempty"`
	Greener    bool       `json:"greener,omitempty"`
	SortBasis  *SortBasis `json:"sortBasis,omitempty"`
}

// Validate enforces the client-input preconditions in the order the UI reports them.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return ErrMissingOriginOrDestination
	}
	if r.DepartDate == "" {
		return ErrMissingDepartDate
	}
	if r.RoundTrip && r.Return() == "" {
		return ErrMissingReturnDate
	}
	return nil
}

// ValidationError maps a failed struct field to its client-facing message.
func (r *SearchRequest) ValidationError(field string) error {
	switch field {
	case "Origin", "Destination":
		return ErrMissingOriginOrDestination
	case "DepartDate":
		return ErrMissingDepartDate
	case "ReturnDate":
		return ErrMissingReturnDate
	}
	return r.Validate()
}

func (r *SearchRequest) Return() string {
	if r.ReturnDate == nil {
		return ""
	}
	return *r.ReturnDate
}

// Basis resolves the sort basis; anything other than "bundle" means flight-only.
func (r *SearchRequest) Basis() SortBasis {
	if r.SortBasis != nil && *r.SortBasis == SortBasisBundle {
		return SortBasisBundle
	}
	return SortBasisFlightOnly
}

// NightsOrDefault returns the number of hotel nights, at least one.
func (r *SearchRequest) NightsOrDefault() int {
	if r.Nights == nil || *r.Nights < 1 {
		return 1
	}
	return *r.Nights
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOriginOrDestination ValidationError = "Origin and destination are required."
	ErrMissingDepartDate          ValidationError = "Departure date is required."
	ErrMissingReturnDate          ValidationError = "Return date is required for round-trip."
)

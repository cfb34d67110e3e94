package builder

import (
	"strings"
	"testing"

	"github.com/dharmasatrya/triptrio/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func oneWay() *models.SearchRequest {
	return &models.SearchRequest{
		Origin:      "AUS",
		Destination: "BOS",
		DepartDate:  "2025-10-15",
		Cabin:       models.CabinEconomy,
		Currency:    "USD",
		Sort:        models.SortCheapest,
	}
}

func TestBasePrice(t *testing.T) {
	tests := []struct {
		origin, destination, date string
		want                      int
	}{
		{"AUS", "BOS", "2025-10-15", 218},
		{"BOS", "AUS", "2025-10-15", 230},
		{"AUS", "BOS", "2024-05-01", 270},
		{"JFK", "LAX", "2024-12-24", 265},
	}

	for _, tt := range tests {
		got := BasePrice(tt.origin, tt.destination, tt.date)
		if got != tt.want {
			t.Fatalf("BasePrice(%s, %s, %s): expected %d, got %d", tt.origin, tt.destination, tt.date, tt.want, got)
		}
		if got < 120 || got > 279 {
			t.Fatalf("base price %d out of range", got)
		}
	}
}

func TestCandidatesOneWay(t *testing.T) {
	bundles := Candidates(oneWay())

	if len(bundles) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(bundles))
	}

	tests := []struct {
		id         string
		carrier    string
		stops      int
		refundable bool
		greener    bool
		price      float64
		segments   int
		duration   int
	}{
		{"CAND-1", "United", 0, true, true, 278, 1, 165},
		{"CAND-2", "American", 1, false, false, 188, 2, 210},
		{"CAND-3", "Delta", 2, true, false, 228, 3, 320},
	}

	for i, tt := range tests {
		b := bundles[i]
		f := b.Flight
		if b.ID != tt.id || f.CarrierName != tt.carrier {
			t.Fatalf("candidate %d: expected %s/%s, got %s/%s", i, tt.id, tt.carrier, b.ID, f.CarrierName)
		}
		if f.Stops != tt.stops || f.Refundable != tt.refundable || f.Greener != tt.greener {
			t.Fatalf("%s: unexpected flags %+v", tt.id, f)
		}
		if f.PriceUSD != tt.price {
			t.Fatalf("%s: expected price %v, got %v", tt.id, tt.price, f.PriceUSD)
		}
		if len(f.SegmentsOut) != tt.segments {
			t.Fatalf("%s: expected %d segments, got %d", tt.id, tt.segments, len(f.SegmentsOut))
		}
		if f.SegmentsIn != nil {
			t.Fatalf("%s: expected no return segments on one-way", tt.id)
		}
		if f.DurationMinutes == nil || *f.DurationMinutes != tt.duration {
			t.Fatalf("%s: expected duration %d, got %v", tt.id, tt.duration, f.DurationMinutes)
		}
		if b.Hotel != nil {
			t.Fatalf("%s: expected no hotel", tt.id)
		}
		if b.Currency != "USD" || f.Cabin != models.CabinEconomy {
			t.Fatalf("%s: expected currency and cabin to be copied", tt.id)
		}
	}

	out := bundles[2].Flight.SegmentsOut
	if out[0].From != "AUS" || out[0].To != "ORD" || out[1].To != "PHX" || out[2].To != "BOS" {
		t.Fatalf("unexpected two-stop routing %+v", out)
	}
	if out[0].DepartTime != "2025-10-15T05:40" || out[2].ArriveTime != "2025-10-15T13:05" {
		t.Fatalf("unexpected two-stop times %+v", out)
	}
}

func TestCandidatesRoundTrip(t *testing.T) {
	req := oneWay()
	req.RoundTrip = true
	req.ReturnDate = strPtr("2025-10-20")

	bundles := Candidates(req)

	direct := bundles[0].Flight
	if len(direct.SegmentsIn) != 1 || direct.SegmentsIn[0].From != "BOS" || direct.SegmentsIn[0].To != "AUS" {
		t.Fatalf("expected direct return for CAND-1, got %+v", direct.SegmentsIn)
	}
	if direct.SegmentsIn[0].DepartTime != "2025-10-20T17:40" {
		t.Fatalf("unexpected return departure %s", direct.SegmentsIn[0].DepartTime)
	}
	if *direct.DurationMinutes != 165+160 {
		t.Fatalf("expected round-trip duration 325, got %d", *direct.DurationMinutes)
	}

	for _, i := range []int{1, 2} {
		in := bundles[i].Flight.SegmentsIn
		if len(in) != 2 || in[0].To != "CLT" || in[1].To != "AUS" {
			t.Fatalf("%s: expected one-stop return, got %+v", bundles[i].ID, in)
		}
	}
	if *bundles[1].Flight.DurationMinutes != 210+205 {
		t.Fatalf("unexpected CAND-2 duration %d", *bundles[1].Flight.DurationMinutes)
	}
	if *bundles[2].Flight.DurationMinutes != 320+205 {
		t.Fatalf("unexpected CAND-3 duration %d", *bundles[2].Flight.DurationMinutes)
	}
}

func TestCandidatesDeeplinks(t *testing.T) {
	req := oneWay()
	req.Passengers = 2

	bundles := Candidates(req)

	b := bundles[0]
	if b.Deeplinks.Airline == nil || b.Deeplinks.Airline.Name != "United" {
		t.Fatalf("expected airline link on bundle, got %+v", b.Deeplinks)
	}
	if !strings.HasPrefix(b.Deeplinks.Airline.URL, "https://www.united.com/") {
		t.Fatalf("unexpected airline url %s", b.Deeplinks.Airline.URL)
	}
	if b.Flight.Deeplinks.Airline == nil || b.Flight.Deeplinks.Airline.URL != b.Deeplinks.Airline.URL {
		t.Fatal("expected the same airline link on the flight")
	}
	want := "https://www.skyscanner.com/transport/flights/aus/bos/20251015/?adults=2&cabinclass=economy&preferdirects=false"
	if b.Deeplinks.Skyscanner != want {
		t.Fatalf("expected %s, got %s", want, b.Deeplinks.Skyscanner)
	}
}

func TestCandidatesHotel(t *testing.T) {
	tests := []struct {
		name     string
		nights   *int
		minStar  *float64
		wantStar float64
		wantCost float64
		flagged  bool
	}{
		{"defaults", nil, nil, 4, 133, false},
		{"three nights", intPtr(3), nil, 4, 399, false},
		{"zero nights", intPtr(0), nil, 4, 133, false},
		{"low minimum clamps up", nil, floatPtr(2), 3, 133, false},
		{"five stars", nil, floatPtr(5), 5, 133, false},
		{"unreachable minimum", nil, floatPtr(6), 5, 133, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := oneWay()
			req.IncludeHotel = true
			req.Nights = tt.nights
			req.MinHotelStar = tt.minStar

			bundles := Candidates(req)
			names := []string{"Downtown Inn", "Airport Suites", "Central Plaza"}
			for i, b := range bundles {
				h := b.Hotel
				if h == nil {
					t.Fatalf("%s: expected hotel", b.ID)
				}
				if h.Name != names[i] || h.City != "BOS" || h.Currency != "USD" {
					t.Fatalf("%s: unexpected hotel %+v", b.ID, h)
				}
				if h.Star != tt.wantStar {
					t.Fatalf("%s: expected star %v, got %v", b.ID, tt.wantStar, h.Star)
				}
				if h.PriceConverted != tt.wantCost {
					t.Fatalf("%s: expected price %v, got %v", b.ID, tt.wantCost, h.PriceConverted)
				}
				if h.FilteredOutByStar != tt.flagged {
					t.Fatalf("%s: expected flagged=%v", b.ID, tt.flagged)
				}
				if !strings.HasPrefix(h.Deeplinks.Booking, "https://www.booking.com/searchresults.html?ss=BOS&checkin=2025-10-15") {
					t.Fatalf("%s: unexpected booking link %s", b.ID, h.Deeplinks.Booking)
				}
			}
		})
	}
}

func TestStayDates(t *testing.T) {
	req := oneWay()
	in, out := stayDates(req, 3)
	if in != "2025-10-15" || out != "2025-10-18" {
		t.Fatalf("expected derived stay, got %s..%s", in, out)
	}

	req.RoundTrip = true
	req.ReturnDate = strPtr("2025-10-20")
	if _, out = stayDates(req, 3); out != "2025-10-20" {
		t.Fatalf("expected return date as checkout, got %s", out)
	}

	req.HotelCheckIn = strPtr("2025-10-16")
	req.HotelCheckOut = strPtr("2025-10-19")
	if in, out = stayDates(req, 3); in != "2025-10-16" || out != "2025-10-19" {
		t.Fatalf("expected explicit hotel dates, got %s..%s", in, out)
	}
}

package deeplinks

import (
	"testing"

	"github.com/dharmasatrya/triptrio/internal/models"
)

func TestAirlineURL(t *testing.T) {
	tests := []struct {
		name      string
		carrier   string
		roundTrip bool
		ret       string
		want      string
	}{
		{
			name:    "united one way",
			carrier: "United",
			want:    "https://www.united.com/en-us/flight-search?from=AUS&to=BOS&depDate=2024-05-01",
		},
		{
			name:      "united round trip",
			carrier:   "United",
			roundTrip: true,
			ret:       "2024-05-08",
			want:      "https://www.united.com/en-us/flight-search?from=AUS&to=BOS&depDate=2024-05-01&retDate=2024-05-08",
		},
		{
			name:      "american round trip",
			carrier:   "American",
			roundTrip: true,
			ret:       "2024-05-08",
			want:      "https://www.aa.com/booking/find-flights?tripType=roundTrip&from=AUS&to=BOS&departDate=2024-05-01&returnDate=2024-05-08",
		},
		{
			name:      "american round trip without return date",
			carrier:   "American Airlines",
			roundTrip: true,
			want:      "https://www.aa.com/booking/find-flights?tripType=roundTrip&from=AUS&to=BOS&departDate=2024-05-01",
		},
		{
			name:    "delta",
			carrier: "Delta",
			ret:     "2024-05-08",
			want:    "https://www.delta.com/flight-search/book-a-flight?fromCity=AUS&toCity=BOS&departureDate=2024-05-01",
		},
		{
			name:    "southwest",
			carrier: "Southwest",
			want:    "https://www.southwest.com/air/booking/select.html?originationAirportCode=AUS&destinationAirportCode=BOS&departureDate=2024-05-01",
		},
		{
			name:      "alaska",
			carrier:   "Alaska Airlines",
			roundTrip: true,
			ret:       "2024-05-08",
			want:      "https://www.alaskaair.com/planbook?from=AUS&to=BOS&depart=2024-05-01&return=2024-05-08",
		},
		{
			name:    "jetblue",
			carrier: "JetBlue",
			want:    "https://www.jetblue.com/booking/flights?from=AUS&to=BOS&depart=2024-05-01",
		},
		{name: "air canada", carrier: "Air Canada", want: "https://www.aircanada.com/"},
		{name: "lufthansa", carrier: "Lufthansa", want: "https://www.lufthansa.com/"},
		{name: "british", carrier: "British Airways", want: "https://www.britishairways.com/"},
		{name: "air india", carrier: "Air India", want: "https://www.airindia.com/"},
		{name: "fallback", carrier: "Virgin  Atlantic", want: "https://www.virginatlantic.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AirlineURL(tt.carrier, "AUS", "BOS", "2024-05-01", tt.roundTrip, tt.ret)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSkyscannerFlight(t *testing.T) {
	tests := []struct {
		name   string
		ret    string
		adults int
		cabin  models.Cabin
		want   string
	}{
		{
			name:   "one way economy",
			adults: 2,
			cabin:  models.CabinEconomy,
			want:   "https://www.skyscanner.com/transport/flights/aus/bos/20240501/?adults=2&cabinclass=economy&preferdirects=false",
		},
		{
			name:  "round trip business defaults to one adult",
			ret:   "2024-05-08",
			cabin: models.CabinBusiness,
			want:  "https://www.skyscanner.com/transport/flights/aus/bos/20240501/20240508/?adults=1&cabinclass=business&preferdirects=false",
		},
		{
			name:   "premium economy",
			adults: 1,
			cabin:  models.CabinPremiumEconomy,
			want:   "https://www.skyscanner.com/transport/flights/aus/bos/20240501/?adults=1&cabinclass=premiumeconomy&preferdirects=false",
		},
		{
			name:   "first",
			adults: 1,
			cabin:  models.CabinFirst,
			want:   "https://www.skyscanner.com/transport/flights/aus/bos/20240501/?adults=1&cabinclass=first&preferdirects=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkyscannerFlight("AUS", "BOS", "2024-05-01", tt.ret, tt.adults, tt.cabin)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBookingHotel(t *testing.T) {
	got := BookingHotel("New York", "2024-05-01", "2024-05-04", 2, 4)
	want := "https://www.booking.com/searchresults.html?ss=New%20York&checkin=2024-05-01&checkout=2024-05-04&group_adults=2&nflt=class%3D4"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = BookingHotel("BOS", "2024-05-01", "", 0, 0)
	want = "https://www.booking.com/searchresults.html?ss=BOS&checkin=2024-05-01&group_adults=1"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = BookingHotel("Austin", "2024-05-01", "", 1, 3.5)
	want = "https://www.booking.com/searchresults.html?ss=Austin&checkin=2024-05-01&group_adults=1&nflt=class%3D3.5"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

// Package booking turns a selected offer into a checkout redirect URL.
package booking

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const (
	DefaultAirline  = "TripTrio"
	DefaultCurrency = "USD"
	checkoutPath    = "/checkout"
)

var ErrInvalidBaseURL = errors.New("invalid booking base URL")

func firstPresent(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// Normalize applies the default chain to every offer field:
//
//	price:       total_cost, total_cost_converted, price, flight.price_usd_converted, flight.price_usd, 0 (first present)
//	airline:     flight.carrier_name, flight.carrier, airline, "TripTrio" (first non-empty)
//	origin:      flight.origin, origin, ""
//	destination: flight.destination, destination, ""
//	currency:    currency, "USD"
//	pax:         pax, passengers, 1 (first non-zero)
func Normalize(o models.Offer) models.ResolvedOffer {
	f := o.Flight
	if f == nil {
		f = &models.OfferFlight{}
	}

	return models.ResolvedOffer{
		Airline:     firstNonEmpty(f.CarrierName, f.Carrier, o.Airline, DefaultAirline),
		Origin:      firstNonEmpty(f.Origin, o.Origin),
		Destination: firstNonEmpty(f.Destination, o.Destination),
		Currency:    firstNonEmpty(o.Currency, DefaultCurrency),
		Pax:         firstNonZero(o.Pax, o.Passengers, 1),
		Price:       firstPresent(o.TotalCost, o.TotalCostConverted, o.Price, f.PriceUSDConverted, f.PriceUSD),
	}
}

// numberOrAbsent reads a query number; empty, unparseable and zero values count as absent.
func numberOrAbsent(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

// FromQuery rebuilds an offer from GET parameters.
func FromQuery(q url.Values) models.Offer {
	price := numberOrAbsent(q.Get("price"))

	var pax float64
	if n := numberOrAbsent(q.Get("pax")); n != nil {
		pax = *n
	}

	return models.Offer{
		Flight: &models.OfferFlight{
			CarrierName: q.Get("airline"),
			Origin:      q.Get("origin"),
			Destination: q.Get("destination"),
			PriceUSD:    price,
		},
		Currency: q.Get("currency"),
		Pax:      pax,
		Price:    price,
	}
}

// ResolveBase returns the configured checkout URL, or same-origin /checkout.
func ResolveBase(override, scheme, host string) string {
	if base := strings.TrimSpace(override); base != "" {
		return base
	}
	return scheme + "://" + host + checkoutPath
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ComposeURL keeps the base URL's own query parameters and sets the offer
// fields plus a millisecond timestamp, replacing any existing values.
func ComposeURL(base string, o models.ResolvedOffer, now time.Time) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidBaseURL
	}

	q := parseQuery(u.RawQuery)
	q.set("airline", o.Airline)
	q.set("origin", o.Origin)
	q.set("destination", o.Destination)
	q.set("currency", o.Currency)
	q.set("pax", formatNumber(o.Pax))
	q.set("price", formatNumber(o.Price))
	q.set("ts", strconv.FormatInt(now.UnixMilli(), 10))

	u.RawQuery = q.encode()
	return u.String(), nil
}

// Package deeplinks builds outbound search links to airline sites, Skyscanner
// and Booking.com for synthesized results.
package deeplinks

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/timeutil"
)

const (
	skyscannerBase = "https://www.skyscanner.com/transport/flights"
	bookingBase    = "https://www.booking.com/searchresults.html"
)

type airlineRoute struct {
	match string
	build func(origin, destination, depart, ret string, roundTrip bool) string
}

func withReturn(roundTrip bool, ret, param string) string {
	if roundTrip && ret != "" {
		return "&" + param + "=" + ret
	}
	return ""
}

func homepage(u string) func(string, string, string, string, bool) string {
	return func(string, string, string, string, bool) string { return u }
}

// Checked in order; the first carrier-name substring that matches wins.
var airlineRoutes = []airlineRoute{
	{"united", func(o, d, dep, ret string, rt bool) string {
		return "https://www.united.com/en-us/flight-search?from=" + o + "&to=" + d + "&depDate=" + dep + withReturn(rt, ret, "retDate")
	}},
	{"american", func(o, d, dep, ret string, rt bool) string {
		tripType := "oneWay"
		if rt {
			tripType = "roundTrip"
		}
		return "https://www.aa.com/booking/find-flights?tripType=" + tripType + "&from=" + o + "&to=" + d + "&departDate=" + dep + withReturn(rt, ret, "returnDate")
	}},
	{"delta", func(o, d, dep, ret string, rt bool) string {
		return "https://www.delta.com/flight-search/book-a-flight?fromCity=" + o + "&toCity=" + d + "&departureDate=" + dep + withReturn(rt, ret, "returnDate")
	}},
	{"southwest", func(o, d, dep, ret string, rt bool) string {
		return "https://www.southwest.com/air/booking/select.html?originationAirportCode=" + o + "&destinationAirportCode=" + d + "&departureDate=" + dep + withReturn(rt, ret, "returnDate")
	}},
	{"alaska", func(o, d, dep, ret string, rt bool) string {
		return "https://www.alaskaair.com/planbook?from=" + o + "&to=" + d + "&depart=" + dep + withReturn(rt, ret, "return")
	}},
	{"jetblue", func(o, d, dep, ret string, rt bool) string {
		return "https://www.jetblue.com/booking/flights?from=" + o + "&to=" + d + "&depart=" + dep + withReturn(rt, ret, "return")
	}},
	{"air canada", homepage("https://www.aircanada.com/")},
	{"lufthansa", homepage("https://www.lufthansa.com/")},
	{"british", homepage("https://www.britishairways.com/")},
	{"air india", homepage("https://www.airindia.com/")},
}

// AirlineURL returns a best-effort booking page on the carrier's own site.
// Unknown carriers fall back to https://www.<carrier>.com/.
func AirlineURL(carrier, origin, destination, departDate string, roundTrip bool, returnDate string) string {
	c := strings.ToLower(carrier)
	for _, r := range airlineRoutes {
		if strings.Contains(c, r.match) {
			return r.build(origin, destination, departDate, returnDate, roundTrip)
		}
	}
	return "https://www." + strings.ToLower(strings.Join(strings.Fields(carrier), "")) + ".com/"
}

func skyscannerCabin(c models.Cabin) string {
	switch c {
	case models.CabinBusiness:
		return "business"
	case models.CabinPremiumEconomy:
		return "premiumeconomy"
	case models.CabinFirst:
		return "first"
	default:
		return "economy"
	}
}

// SkyscannerFlight links to a Skyscanner search; ret is optional.
func SkyscannerFlight(origin, destination, depart, ret string, adults int, cabin models.Cabin) string {
	if adults < 1 {
		adults = 1
	}

	var b strings.Builder
	b.WriteString(skyscannerBase)
	b.WriteString("/" + strings.ToLower(origin))
	b.WriteString("/" + strings.ToLower(destination))
	b.WriteString("/" + timeutil.CompactDate(depart))
	if ret != "" {
		b.WriteString("/" + timeutil.CompactDate(ret))
	}
	b.WriteString("/?adults=" + strconv.Itoa(adults))
	b.WriteString("&cabinclass=" + skyscannerCabin(cabin))
	b.WriteString("&preferdirects=false")
	return b.String()
}

// encodeComponent escapes like a URI component: spaces become %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BookingHotel links to a Booking.com search; checkOut and minStars are optional.
func BookingHotel(city, checkIn, checkOut string, adults int, minStars float64) string {
	if adults < 1 {
		adults = 1
	}

	var b strings.Builder
	b.WriteString(bookingBase)
	b.WriteString("?ss=" + encodeComponent(city))
	b.WriteString("&checkin=" + checkIn)
	if checkOut != "" {
		b.WriteString("&checkout=" + checkOut)
	}
	b.WriteString("&group_adults=" + strconv.Itoa(adults))
	if minStars > 0 {
		b.WriteString("&nflt=class%3D" + strconv.FormatFloat(minStars, 'f', -1, 64))
	}
	return b.String()
}

package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/dharmasatrya/triptrio/pkg/currency"
)

const (
	Filename = "triptrio-results.pdf"
	MaxRows  = 20
)

type ResultFlight struct {
	CarrierName string `json:"carrier_name"`
}

// Result is the subset of a search result the summary needs. The total is
// taken from the first present field in declaration order. The converted
// fields are already in the export currency; TotalCost is in USD.
type Result struct {
	Flight             *ResultFlight `json:"flight,omitempty"`
	TotalConverted     *float64      `json:"total_converted,omitempty"`
	TotalCostConverted *float64      `json:"total_cost_converted,omitempty"`
	TotalCost          *float64      `json:"total_cost,omitempty"`
}

type Request struct {
	Results  []Result `json:"results"`
	Currency string   `json:"currency"`
}

func (r Result) Total() float64 {
	switch {
	case r.TotalConverted != nil:
		return *r.TotalConverted
	case r.TotalCostConverted != nil:
		return *r.TotalCostConverted
	case r.TotalCost != nil:
		return *r.TotalCost
	}
	return 0
}

// TotalIn is Total expressed in c, converting TotalCost when it is the only amount.
func (r Result) TotalIn(c currency.Code) float64 {
	if r.TotalConverted == nil && r.TotalCostConverted == nil && r.TotalCost != nil {
		return currency.Convert(*r.TotalCost, c)
	}
	return r.Total()
}

func (r Result) Carrier() string {
	if r.Flight == nil || r.Flight.CarrierName == "" {
		return "Airline"
	}
	return r.Flight.CarrierName
}

// Row is the line printed for the i-th (zero-based) result.
func Row(i int, r Result, cur string) string {
	return fmt.Sprintf("%d. %s  •  %s %.0f", i+1, r.Carrier(), cur, math.Round(r.TotalIn(currency.Parse(cur))))
}

func inCP1252(r rune) bool {
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok
}

// pdfText reduces s to what the core fonts can draw: runes outside cp1252 are
// replaced by their unaccented base letters, or "?" when there is none.
func pdfText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if inCP1252(r) {
			b.WriteRune(r)
			continue
		}
		written := false
		for _, d := range norm.NFKD.String(string(r)) {
			if !unicode.Is(unicode.Mn, d) && inCP1252(d) {
				b.WriteRune(d)
				written = true
			}
		}
		if !written {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// AmountLabel formats amount with the currency symbol, or with the code when
// the symbol is not in cp1252.
func AmountLabel(amount float64, c currency.Code) string {
	for _, r := range currency.Symbol(c) {
		if !inCP1252(r) {
			return currency.FormatCode(amount, c)
		}
	}
	return currency.Format(amount, c)
}

// ResultsPDF renders up to MaxRows results as a one-line-per-result summary.
func ResultsPDF(req Request) ([]byte, error) {
	cur := req.Currency
	if cur == "" {
		cur = "USD"
	}
	code := currency.Parse(cur)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(14, 16, tr("TripTrio — Results"))
	pdf.SetFont("Helvetica", "B", 11)

	rows := req.Results
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}

	y := 26.0
	lowest := math.Inf(1)
	for i, r := range rows {
		pdf.Text(14, y, tr(pdfText(Row(i, r, cur))))
		lowest = math.Min(lowest, r.TotalIn(code))

		y += 7
		if y > 280 {
			pdf.AddPage()
			y = 20
		}
	}

	if len(rows) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(14, y+3, tr("Lowest total: "+AmountLabel(lowest, code)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

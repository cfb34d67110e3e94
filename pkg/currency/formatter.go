package currency

import (
	"fmt"
	"math"
	"strings"
)

type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	INR Code = "INR"
)

// Rates are fixed demo conversion rates from USD.
var rates = map[Code]float64{
	USD: 1,
	EUR: 0.92,
	INR: 83,
}

// Parse maps a currency string to a supported code, defaulting to USD.
func Parse(s string) Code {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := rates[c]; ok {
		return c
	}
	return USD
}

func Symbol(c Code) string {
	switch c {
	case EUR:
		return "€"
	case INR:
		return "₹"
	default:
		return "$"
	}
}

// Convert converts a USD amount into c.
func Convert(amountUSD float64, c Code) float64 {
	rate, ok := rates[c]
	if !ok {
		rate = 1
	}
	return amountUSD * rate
}

// Format renders a rounded amount with its symbol and thousands separators: $1,234.
func Format(amount float64, c Code) string {
	return formatWith(amount, Symbol(c))
}

// FormatCode renders the amount behind the currency code, "INR 1,234", for
// outputs that cannot draw every symbol.
func FormatCode(amount float64, c Code) string {
	return formatWith(amount, string(c)+" ")
}

func formatWith(amount float64, prefix string) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	result := prefix + addThousandsSeparator(intStr, ",")
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}

package airports

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const DefaultLimit = 12

// Weights for a query hit on each field. Country substrings are not scored.
const (
	codePrefixWeight    = 10
	codeSubstringWeight = 5
	cityPrefixWeight    = 8
	citySubstringWeight = 4
	namePrefixWeight    = 6
	nameSubstringWeight = 3
	countryPrefixWeight = 1
)

const labelSeparator = " — "

// Score rates a record against an already normalized, non-empty query.
// Zero means the record does not match.
func Score(q string, a models.AirportRecord) int {
	code := Normalize(strings.ToUpper(a.IATA))
	city := Normalize(a.City)
	name := Normalize(a.Name)
	country := Normalize(a.Country)

	score := 0
	if strings.HasPrefix(code, q) {
		score += codePrefixWeight
	}
	if strings.Contains(code, q) {
		score += codeSubstringWeight
	}
	if strings.HasPrefix(city, q) {
		score += cityPrefixWeight
	}
	if strings.Contains(city, q) {
		score += citySubstringWeight
	}
	if strings.HasPrefix(name, q) {
		score += namePrefixWeight
	}
	if strings.Contains(name, q) {
		score += nameSubstringWeight
	}
	if strings.HasPrefix(country, q) {
		score += countryPrefixWeight
	}
	return score
}

func hasIATA(a models.AirportRecord) bool {
	return a.IATA != "" && utf8.RuneCountInString(a.IATA) == 3
}

// Label renders "CODE — City — Name", dropping the city part when unknown.
func Label(a models.AirportRecord) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(a.IATA))
	b.WriteString(labelSeparator)
	if a.City != "" {
		b.WriteString(a.City)
		b.WriteString(labelSeparator)
	}
	b.WriteString(a.Name)
	return b.String()
}

type candidate struct {
	key        string
	lowerLabel string
	suggestion models.AirportSuggestion
}

// Match returns at most limit suggestions for query. The score only decides
// inclusion: results whose label starts with the query come first, the rest
// follow in collation order of the lowercased label.
func Match(airports map[string]models.AirportRecord, query string, limit int) []models.AirportSuggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := Normalize(query)

	candidates := make([]candidate, 0, 64)
	for key, a := range airports {
		if !hasIATA(a) {
			continue
		}
		if q != "" && Score(q, a) <= 0 {
			continue
		}

		label := Label(a)
		candidates = append(candidates, candidate{
			key:        key,
			lowerLabel: strings.ToLower(label),
			suggestion: models.AirportSuggestion{
				Code:    strings.ToUpper(a.IATA),
				Label:   label,
				City:    a.City,
				Name:    a.Name,
				Country: a.Country,
			},
		})
	}

	col := collate.New(language.Und)
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aStarts := strings.HasPrefix(a.lowerLabel, q)
		bStarts := strings.HasPrefix(b.lowerLabel, q)
		if aStarts != bStarts {
			return aStarts
		}
		if c := col.CompareString(a.lowerLabel, b.lowerLabel); c != 0 {
			return c < 0
		}
		return a.key < b.key
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]models.AirportSuggestion, len(candidates))
	for i, c := range candidates {
		results[i] = c.suggestion
	}
	return results
}

package ranking

import (
	"testing"

	"github.com/dharmasatrya/triptrio/internal/models"
)

func duration(n int) *int { return &n }

func bundles() []models.Bundle {
	return []models.Bundle{
		{ID: "CAND-1", Flight: &models.Flight{Refundable: true, DurationMinutes: duration(165)}, DisplayTotal: 278},
		{ID: "CAND-2", Flight: &models.Flight{DurationMinutes: duration(210)}, DisplayTotal: 188},
		{ID: "CAND-3", Flight: &models.Flight{Refundable: true, DurationMinutes: duration(320)}, DisplayTotal: 228},
	}
}

func ids(bs []models.Bundle) string {
	out := ""
	for i, b := range bs {
		if i > 0 {
			out += ","
		}
		out += b.ID
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  models.SortKey
		want string
	}{
		{models.SortCheapest, "CAND-2,CAND-3,CAND-1"},
		{models.SortFastest, "CAND-1,CAND-2,CAND-3"},
		{models.SortFlexible, "CAND-3,CAND-1,CAND-2"},
		{models.SortBest, "CAND-2,CAND-3,CAND-1"},
		{"", "CAND-2,CAND-3,CAND-1"},
		{"unknown", "CAND-2,CAND-3,CAND-1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := ids(Sort(bundles(), tt.key)); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSortIsStable(t *testing.T) {
	bs := []models.Bundle{
		{ID: "A", DisplayTotal: 100},
		{ID: "B", DisplayTotal: 100},
		{ID: "C", DisplayTotal: 50},
	}

	if got := ids(Sort(bs, models.SortCheapest)); got != "C,A,B" {
		t.Fatalf("expected C,A,B, got %s", got)
	}
}

func TestFastestMissingDurationLast(t *testing.T) {
	bs := []models.Bundle{
		{ID: "NONE", Flight: &models.Flight{}},
		{ID: "SLOW", Flight: &models.Flight{DurationMinutes: duration(600)}},
	}

	if got := ids(Sort(bs, models.SortFastest)); got != "SLOW,NONE" {
		t.Fatalf("expected SLOW,NONE, got %s", got)
	}
}

func TestBestScore(t *testing.T) {
	b := models.Bundle{DisplayTotal: 200, Flight: &models.Flight{DurationMinutes: duration(100)}}
	if got := BestScore(b); got != 220 {
		t.Fatalf("expected 220, got %v", got)
	}
}

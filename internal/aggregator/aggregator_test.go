package aggregator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/providers"
)

func newLive(t *testing.T, handler http.HandlerFunc) *providers.DuffelProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return providers.NewDuffelProvider(providers.DuffelConfig{BaseURL: srv.URL, APIKey: "k", Version: "v2"}, nil)
}

func TestSearchShortQuery(t *testing.T) {
	a := NewAggregator(nil, providers.NewSeedProvider(), Config{}, logger.Discard())

	for _, q := range []string{"", " ", " b ", "é"} {
		resp := a.Search(context.Background(), q)
		if !resp.OK || resp.Source != SourceEmpty {
			t.Fatalf("query %q: expected ok empty source, got %+v", q, resp)
		}
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Fatalf("query %q: expected empty data slice", q)
		}
	}
}

func TestSearchWithoutLiveProvider(t *testing.T) {
	a := NewAggregator(nil, providers.NewSeedProvider(), Config{}, logger.Discard())

	resp := a.Search(context.Background(), "  bos ")
	if resp.Source != SourceSeed {
		t.Fatalf("expected local-seed, got %s", resp.Source)
	}
	if len(resp.Data) != 1 || resp.Data[0].Code != "BOS" {
		t.Fatalf("expected BOS from seed, got %+v", resp.Data)
	}
	if resp.Meta != nil {
		t.Fatalf("expected no meta, got %+v", resp.Meta)
	}
}

func TestSearchLiveSuccess(t *testing.T) {
	live := newLive(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"iata_code":"BOS","name":"Logan","city_name":"Boston","iata_country_code":"US"}]}`))
	})
	a := NewAggregator(live, providers.NewSeedProvider(), Config{}, logger.Discard())

	resp := a.Search(context.Background(), "bos")
	if resp.Source != SourceDuffel {
		t.Fatalf("expected duffel, got %s", resp.Source)
	}
	if resp.Meta == nil || resp.Meta.Count == nil || *resp.Meta.Count != 1 {
		t.Fatalf("expected meta count 1, got %+v", resp.Meta)
	}
	if resp.Meta.SentVersion != "v2" {
		t.Fatalf("expected sent version v2, got %s", resp.Meta.SentVersion)
	}
	if !strings.HasSuffix(resp.Meta.SentURL, "/places/suggestions?query=bos") {
		t.Fatalf("unexpected sent url %s", resp.Meta.SentURL)
	}
}

func TestSearchLiveStatusError(t *testing.T) {
	live := newLive(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	a := NewAggregator(live, providers.NewSeedProvider(), Config{}, logger.Discard())

	resp := a.Search(context.Background(), "bos")
	if !resp.OK || resp.Source != SourceDuffelError {
		t.Fatalf("expected ok duffel-error, got %+v", resp)
	}
	if resp.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Status)
	}
	if resp.Error != "upstream down" {
		t.Fatalf("expected raw body as error, got %q", resp.Error)
	}
	if len(resp.Data) != 0 {
		t.Fatalf("expected no data, got %+v", resp.Data)
	}
}

func TestSearchLiveTransportErrorFallsBackToSeed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	live := providers.NewDuffelProvider(providers.DuffelConfig{BaseURL: srv.URL, APIKey: "k", Version: "v2"}, nil)
	a := NewAggregator(live, providers.NewSeedProvider(), Config{}, logger.Discard())

	resp := a.Search(context.Background(), "miami")
	if resp.Source != SourceSeed {
		t.Fatalf("expected local-seed, got %s", resp.Source)
	}
	if resp.Meta == nil || resp.Meta.Error == "" {
		t.Fatalf("expected meta error, got %+v", resp.Meta)
	}
	if len(resp.Data) != 1 || resp.Data[0].Code != "MIA" {
		t.Fatalf("expected MIA from seed, got %+v", resp.Data)
	}
}

package airports

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/ratelimit"
)

const DefaultTTL = 24 * time.Hour

// FetchTimeout bounds a single dataset download.
const FetchTimeout = 30 * time.Second

// Snapshot is the mapping held by the cache at one point in time.
type Snapshot struct {
	Airports  map[string]models.AirportRecord
	FetchedAt time.Time
	// Stale is set when a refresh failed and the previous mapping was served instead.
	Stale bool
}

// ReferenceCache is a read-through cache over the airport dataset. The
// mapping and its timestamp are always replaced together.
type ReferenceCache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	log    *logger.Logger

	mu        sync.RWMutex
	airports  map[string]models.AirportRecord
	fetchedAt time.Time

	refresh singleflight.Group
}

func NewReferenceCache(source Source, ttl time.Duration, log *logger.Logger) *ReferenceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReferenceCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// Get returns the current mapping, refreshing it first when stale.
func (c *ReferenceCache) Get(ctx context.Context) (Snapshot, error) {
	return c.RefreshIfStale(ctx)
}

// RefreshIfStale returns the cached mapping, fetching a new one when it is
// missing or older than the TTL. Concurrent callers share one fetch. The fetch
// is detached from the caller's cancellation, so a caller that goes away only
// stops its own wait.
func (c *ReferenceCache) RefreshIfStale(ctx context.Context) (Snapshot, error) {
	current, fresh := c.current()
	if fresh {
		return current, nil
	}

	ch := c.refresh.DoChan("dataset", func() (interface{}, error) {
		if snap, fresh := c.current(); fresh {
			return snap, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FetchTimeout)
		defer cancel()

		airports, err := c.source.Fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		return c.store(airports), nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}

	if res.Err != nil {
		if current.Airports != nil {
			c.log.UpstreamError(ratelimit.UpstreamAirports, res.Err)
			current.Stale = true
			return current, nil
		}
		return Snapshot{}, res.Err
	}
	return res.Val.(Snapshot), nil
}

func (c *ReferenceCache) current() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{Airports: c.airports, FetchedAt: c.fetchedAt}
	fresh := c.airports != nil && c.now().Sub(c.fetchedAt) < c.ttl
	return snap, fresh
}

func (c *ReferenceCache) store(airports map[string]models.AirportRecord) Snapshot {
	at := c.now()

	c.mu.Lock()
	c.airports = airports
	c.fetchedAt = at
	c.mu.Unlock()

	return Snapshot{Airports: airports, FetchedAt: at}
}

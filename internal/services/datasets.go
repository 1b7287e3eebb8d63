package services

import (
	"log"
	"sync"
	"time"

	"github.com/Narayanansankar/tirubot/internal/models"
	"github.com/Narayanansankar/tirubot/internal/storage"
)

// Cache durations per dataset class. Live occupancy turns over fast,
// static lot metadata barely changes.
const (
	LiveDataCacheDuration   = 120 * time.Second
	LocalInfoCacheDuration  = 600 * time.Second
	StaticDataCacheDuration = 1800 * time.Second
)

// DatasetGateway fronts the store with per-dataset time-based caches.
// It fails soft: when a refresh errors, callers get the last cached
// value (possibly empty) and the failure is logged, never propagated.
type DatasetGateway struct {
	store storage.Store

	mu sync.RWMutex

	localInfo        map[string][]*models.LocalInfoRecord
	localInfoFetched map[string]time.Time

	lots        []*models.ParkingLot
	lotsFetched time.Time

	status        map[string]*models.ParkingStatus
	statusFetched time.Time

	liveTTL   time.Duration
	localTTL  time.Duration
	staticTTL time.Duration
}

// NewDatasetGateway creates a gateway over the given store with the
// default cache durations.
func NewDatasetGateway(store storage.Store) *DatasetGateway {
	return &DatasetGateway{
		store:            store,
		localInfo:        make(map[string][]*models.LocalInfoRecord),
		localInfoFetched: make(map[string]time.Time),
		status:           make(map[string]*models.ParkingStatus),
		liveTTL:          LiveDataCacheDuration,
		localTTL:         LocalInfoCacheDuration,
		staticTTL:        StaticDataCacheDuration,
	}
}

// LocalInfo returns the records for one category, refreshing the cache
// when stale.
func (g *DatasetGateway) LocalInfo(category string) []*models.LocalInfoRecord {
	g.mu.RLock()
	records, fetched := g.localInfo[category], g.localInfoFetched[category]
	g.mu.RUnlock()

	if time.Since(fetched) < g.localTTL {
		return records
	}

	fresh, err := g.store.GetLocalInfo(category)
	if err != nil {
		log.Printf("Local info fetch failed for %s, serving cached: %v", category, err)
		return records
	}

	g.mu.Lock()
	g.localInfo[category] = fresh
	g.localInfoFetched[category] = time.Now()
	g.mu.Unlock()

	return fresh
}

// ParkingLots returns the static lot metadata, refreshing when stale.
func (g *DatasetGateway) ParkingLots() []*models.ParkingLot {
	g.mu.RLock()
	lots, fetched := g.lots, g.lotsFetched
	g.mu.RUnlock()

	if time.Since(fetched) < g.staticTTL {
		return lots
	}

	fresh, err := g.store.GetParkingLots()
	if err != nil {
		log.Printf("Parking lot metadata fetch failed, serving cached: %v", err)
		return lots
	}

	g.mu.Lock()
	g.lots = fresh
	g.lotsFetched = time.Now()
	g.mu.Unlock()

	return fresh
}

// LiveStatus returns live occupancy keyed by lot id, refreshing when
// stale.
func (g *DatasetGateway) LiveStatus() map[string]*models.ParkingStatus {
	g.mu.RLock()
	status, fetched := g.status, g.statusFetched
	g.mu.RUnlock()

	if time.Since(fetched) < g.liveTTL {
		return status
	}

	fresh, err := g.store.GetParkingStatus()
	if err != nil {
		log.Printf("Live parking status fetch failed, serving cached: %v", err)
		return status
	}

	byID := make(map[string]*models.ParkingStatus, len(fresh))
	for _, s := range fresh {
		byID[s.LotID] = s
	}

	g.mu.Lock()
	g.status = byID
	g.statusFetched = time.Now()
	g.mu.Unlock()

	return byID
}

// ForceRefresh expires every cache so the next reads hit the store.
func (g *DatasetGateway) ForceRefresh() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.localInfoFetched = make(map[string]time.Time)
	g.lotsFetched = time.Time{}
	g.statusFetched = time.Time{}
	log.Println("Dataset caches invalidated, next reads will refresh")
}

// CacheInfo describes one cached dataset for the status endpoint.
type CacheInfo struct {
	Records int       `json:"records"`
	Fetched time.Time `json:"fetched_at"`
}

// CacheStatus reports cache ages and sizes for monitoring.
func (g *DatasetGateway) CacheStatus() map[string]CacheInfo {
	g.mu.RLock()
	defer g.mu.RUnlock()

	info := map[string]CacheInfo{
		"parking_lots":   {Records: len(g.lots), Fetched: g.lotsFetched},
		"parking_status": {Records: len(g.status), Fetched: g.statusFetched},
	}
	for category, records := range g.localInfo {
		info["local_info:"+category] = CacheInfo{
			Records: len(records),
			Fetched: g.localInfoFetched[category],
		}
	}
	return info
}

package workers

import (
	"context"
	"log"
	"time"

	"voetbal-game-server/services"
)

// CatalogSyncWorker retries catalog initialization until it succeeds. The
// engine degrades gracefully while the catalog is missing (queries warn and
// return empty), so the server can come up before the data does.
type CatalogSyncWorker struct {
	catalog  *services.CatalogService
	interval time.Duration
}

func NewCatalogSyncWorker(catalog *services.CatalogService, interval time.Duration) *CatalogSyncWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CatalogSyncWorker{catalog: catalog, interval: interval}
}

// Start blocks until the catalog initializes or the context is cancelled.
// Run it in a goroutine.
func (w *CatalogSyncWorker) Start(ctx context.Context) {
	if w.tryInitialize() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Catalog sync worker stopped")
			return
		case <-ticker.C:
			if w.tryInitialize() {
				return
			}
		}
	}
}

func (w *CatalogSyncWorker) tryInitialize() bool {
	if w.catalog.IsInitialized() {
		return true
	}
	if err := w.catalog.Initialize(); err != nil {
		log.Printf("[CatalogSync] initialization failed, will retry: %v", err)
		return false
	}
	return true
}

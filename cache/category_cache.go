package category_cache

import (
	"sync"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ─────────────────────────────────────────────────────
// Every category in display order with its live product count. Filtering and
// paging happen on top of the cached slice.

type listEntry struct {
	categories []models.CategoryWithProducts
	fetchedAt  time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
	listGen   uint64
	now       = time.Now
)

// GetList returns a copy so callers may filter or decorate it freely.
func GetList() ([]models.CategoryWithProducts, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache == nil || now().Sub(listCache.fetchedAt) >= TTL {
		return nil, false
	}
	out := make([]models.CategoryWithProducts, len(listCache.categories))
	copy(out, listCache.categories)
	return out, true
}

// Generation is read before loading from the database and passed to SetList.
func Generation() uint64 {
	listMu.RLock()
	defer listMu.RUnlock()
	return listGen
}

// SetList stores categories loaded at generation gen. A load that raced
// with an Invalidate is dropped and SetList reports false.
func SetList(gen uint64, categories []models.CategoryWithProducts) bool {
	stored := make([]models.CategoryWithProducts, len(categories))
	copy(stored, categories)

	listMu.Lock()
	defer listMu.Unlock()
	if gen != listGen {
		return false
	}
	listCache = &listEntry{categories: stored, fetchedAt: now()}
	return true
}

// Invalidate drops the cache. Call on any category or product write.
func Invalidate() {
	listMu.Lock()
	listCache = nil
	listGen++
	listMu.Unlock()
}

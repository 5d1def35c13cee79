package feria

import (
	"sync"

	"github.com/codeplaygroundspace/feriasdemontevideo/internal/model"
)

// View memoizes the derived lists so the HTTP handlers don't re-run
// aggregation or filtering on every request. Aggregation happens once per
// dataset; filtered lists are cached per Criteria and thrown away when the
// dataset is replaced. All methods are safe for concurrent use.
type View struct {
	mu       sync.RWMutex
	dataset  model.Dataset
	agg      []model.AggregatedMarket
	filtered map[Criteria][]model.AggregatedMarket
}

// NewView aggregates the dataset eagerly and returns a ready view.
func NewView(ds model.Dataset) *View {
	v := &View{}
	v.Replace(ds)
	return v
}

// Replace swaps in a new source dataset, recomputing the aggregated list and
// dropping every cached filter result.
func (v *View) Replace(ds model.Dataset) {
	agg := Aggregate(ds)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.dataset = ds
	v.agg = agg
	v.filtered = map[Criteria][]model.AggregatedMarket{}
}

// Aggregated returns the deduplicated market list. Callers must not mutate it.
func (v *View) Aggregated() []model.AggregatedMarket {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.agg
}

// Filtered returns the markets passing the criteria, computing and caching
// the list on first use.
func (v *View) Filtered(c Criteria) []model.AggregatedMarket {
	v.mu.RLock()
	cached, ok := v.filtered[c]
	v.mu.RUnlock()
	if ok {
		return cached
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	// Another request may have filled the entry while we upgraded the lock.
	if cached, ok := v.filtered[c]; ok {
		return cached
	}
	result := Apply(v.agg, c)
	v.filtered[c] = result
	return result
}

// Neighborhoods returns the distinct neighborhood slugs in the aggregated
// list, in first-seen order.
func (v *View) Neighborhoods() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Neighborhoods(v.agg)
}

package knapsack

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// Catalog is the immutable, density-sorted view of an instance that every
// search component reads. It is safe to share between concurrent solves.
type Catalog struct {
	capacity int64
	items    []Item // strictly descending density, ties by ascending Index
}

// NewCatalog validates inst and returns its items sorted by descending
// density (value per unit of weight). Ties keep the original input order so
// that traversal is deterministic.
//
// Errors (all wrap ErrMalformedInstance):
//   - Count < 0 or Count != len(Entries);
//   - Capacity < 0;
//   - any Weight ≤ 0 (density undefined);
//   - any Value < 0;
//   - total value or total weight above math.MaxInt64 (sums must not wrap).
//
// Complexity: O(n log n) time, O(n) space.
func NewCatalog(inst Instance) (*Catalog, error) {
	if err := validateInstance(inst); err != nil {
		return nil, err
	}

	items := make([]Item, len(inst.Entries))
	var (
		i int
		e Entry
	)
	for i, e = range inst.Entries {
		items[i] = Item{
			Index:   i,
			Value:   e.Value,
			Weight:  e.Weight,
			Density: float64(e.Value) / float64(e.Weight),
		}
	}
	sort.Sort(byDensity(items))

	return &Catalog{capacity: inst.Capacity, items: items}, nil
}

// validateInstance applies the instance contract before any search begins.
func validateInstance(inst Instance) error {
	if inst.Count < 0 {
		return fmt.Errorf("%w: negative item count %d", ErrMalformedInstance, inst.Count)
	}
	if inst.Count != len(inst.Entries) {
		return fmt.Errorf("%w: header declares %d items, got %d records",
			ErrMalformedInstance, inst.Count, len(inst.Entries))
	}
	if inst.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrMalformedInstance, inst.Capacity)
	}
	var totalValue, totalWeight int64
	for i, e := range inst.Entries {
		if e.Weight <= 0 {
			return fmt.Errorf("%w: item %d has non-positive weight %d", ErrMalformedInstance, i, e.Weight)
		}
		if e.Value < 0 {
			return fmt.Errorf("%w: item %d has negative value %d", ErrMalformedInstance, i, e.Value)
		}
		if totalValue > math.MaxInt64-e.Value {
			return fmt.Errorf("%w: total value overflows int64 at item %d", ErrMalformedInstance, i)
		}
		if totalWeight > math.MaxInt64-e.Weight {
			return fmt.Errorf("%w: total weight overflows int64 at item %d", ErrMalformedInstance, i)
		}
		totalValue += e.Value
		totalWeight += e.Weight
	}

	return nil
}

// byDensity orders items by descending density, then ascending input index.
// Densities are compared exactly as vᵢ·wⱼ against vⱼ·wᵢ in 128 bits; the
// float64 Density field is for display only.
type byDensity []Item

func (s byDensity) Len() int { return len(s) }
func (s byDensity) Less(i, j int) bool {
	if c := compareDensity(s[i], s[j]); c != 0 {
		return c > 0
	}

	return s[i].Index < s[j].Index
}

// compareDensity returns the sign of a.Value/a.Weight − b.Value/b.Weight.
func compareDensity(a, b Item) int {
	hiA, loA := bits.Mul64(uint64(a.Value), uint64(b.Weight))
	hiB, loB := bits.Mul64(uint64(b.Value), uint64(a.Weight))
	switch {
	case hiA != hiB:
		if hiA > hiB {
			return 1
		}
		return -1
	case loA != loB:
		if loA > loB {
			return 1
		}
		return -1
	default:
		return 0
	}
}
func (s byDensity) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Capacity returns the knapsack capacity.
func (c *Catalog) Capacity() int64 { return c.capacity }

// Item returns the i-th item in density order.
func (c *Catalog) Item(i int) Item { return c.items[i] }

// Items returns a copy of the density-sorted items.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)

	return out
}

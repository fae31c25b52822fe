// Package arrayext provides slice helpers: smallest-N selection, distinct,
// index by key, shuffle, and partition.
//
// No helper modifies the slice it is given. Results are freshly allocated
// and owned by the caller.
package arrayext

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/Pure-Company/pureext"
)

const (
	// DefaultCount is the number of values Smallest selects.
	DefaultCount = 1

	// DefaultKey is the record field IndexBy uses when none is given.
	DefaultKey = "id"
)

// ============================================================================
// Smallest-N
// ============================================================================

// SmallestN returns the n smallest values of items in ascending order.
//
// When n exceeds len(items) every value is returned. When n <= 0 the result
// is empty. items is left untouched.
//
// Example:
//
//	SmallestN([]int{5, 4, 10, 2, 26}, 2) // [2 4]
func SmallestN[T cmp.Ordered](items []T, n int) []T {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return head(sorted, n)
}

// Smallest returns the minimum of items. ok is false when items is empty.
func Smallest[T cmp.Ordered](items []T) (v T, ok bool) {
	got := SmallestN(items, DefaultCount)
	if len(got) == 0 {
		return v, false
	}
	return got[0], true
}

// SmallestFunc is SmallestN for any element type, ordered by less.
// Equal elements keep their relative order. A nil less treats every pair as
// equal, so the first n items are returned in input order.
func SmallestFunc[T any](items []T, n int, less pureext.LessFunc[T]) []T {
	sorted := slices.Clone(items)
	if less != nil {
		less.Sort(sorted)
	}
	return head(sorted, n)
}

func head[T any](sorted []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return orEmpty(slices.Clip(sorted[:n]))
}

// ============================================================================
// Distinct
// ============================================================================

// Distinct returns each distinct value of items once, in order of first
// occurrence.
//
// Example:
//
//	Distinct([]int{1, 2, 3, 2, 4, 3, 1, 5}) // [1 2 3 4 5]
func Distinct[T comparable](items []T) []T {
	return DistinctFunc(items, func(v T) T { return v })
}

// DistinctFunc keeps the first element for each key.
func DistinctFunc[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// ============================================================================
// Index By Key
// ============================================================================

// IndexBy maps the stringified value of field in each record to that record.
// Later records overwrite earlier ones with the same key. An empty field
// means DefaultKey. Records without the field land under "".
//
// Example:
//
//	IndexBy([]map[string]any{
//	    {"id": 1, "value": "one"},
//	    {"id": 2, "value": "two"},
//	}, "value")
//	// map[one:map[id:1 value:one] two:map[id:2 value:two]]
func IndexBy(records []map[string]any, field string) map[string]map[string]any {
	if field == "" {
		field = DefaultKey
	}
	return IndexByFunc(records, func(r map[string]any) string {
		v, ok := r[field]
		if !ok {
			return ""
		}
		return fmt.Sprint(v)
	})
}

// IndexByID is IndexBy on DefaultKey.
func IndexByID(records []map[string]any) map[string]map[string]any {
	return IndexBy(records, DefaultKey)
}

// IndexByFunc maps key(item) to item; the last item wins on collision.
func IndexByFunc[T any](items []T, key pureext.KeyFunc[T]) map[string]T {
	index := make(map[string]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}

// ============================================================================
// Shuffle
// ============================================================================

// Shuffle returns the elements of items in pseudo-random order.
// Every element appears exactly once; items is left untouched.
func Shuffle[T any](items []T) []T {
	shuffled := slices.Clone(items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return orEmpty(shuffled)
}

// ShuffleWith is Shuffle drawing from rng, for reproducible orders.
// A nil rng falls back to Shuffle.
func ShuffleWith[T any](items []T, rng *rand.Rand) []T {
	if rng == nil {
		return Shuffle(items)
	}
	shuffled := slices.Clone(items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return orEmpty(shuffled)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ============================================================================
// Partition
// ============================================================================

// Partition splits items by pred. matched holds the elements pred accepts,
// rest the others; both keep the original relative order.
//
// Example:
//
//	Partition([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, func(n int) bool { return n < 5 })
//	// [1 2 3 4 0] [5 6 7 8 9]
func Partition[T any](items []T, pred pureext.Predicate[T]) (matched, rest []T) {
	matched = make([]T, 0, len(items))
	rest = make([]T, 0, len(items))
	for _, item := range items {
		if pred.Test(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matched, rest
}

package pureext

import (
	"fmt"
	"sort"
)

// ============================================================================
// Predicates
// ============================================================================

// Predicate is a yes/no test over a single value.
// It provides monoid operations for combining tests.
//
// Example:
//
//	small := Predicate[int](func(n int) bool { return n < 5 })
//	even := Predicate[int](func(n int) bool { return n%2 == 0 })
//	smallOdd := small.And(even.Not())
type Predicate[T any] func(T) bool

// Test reports whether v satisfies the predicate. A nil predicate matches nothing.
func (p Predicate[T]) Test(v T) bool {
	if p == nil {
		return false
	}
	return p(v)
}

// Empty returns the predicate that matches everything (identity for And).
func (p Predicate[T]) Empty() Predicate[T] {
	return func(T) bool { return true }
}

// And matches when both predicates match (Monoid operation).
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p.Test(v) && other.Test(v)
	}
}

// Or matches when either predicate matches.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p.Test(v) || other.Test(v)
	}
}

// Not inverts the predicate.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p.Test(v)
	}
}

// ============================================================================
// Ordering
// ============================================================================

// LessFunc reports whether a sorts before b.
//
// Example:
//
//	byAge := LessFunc[User](func(a, b User) bool { return a.Age < b.Age })
//	byName := LessFunc[User](func(a, b User) bool { return a.Name < b.Name })
//	byName.Then(byAge).Sort(users)
type LessFunc[T any] func(a, b T) bool

// Reverse flips the ordering.
func (f LessFunc[T]) Reverse() LessFunc[T] {
	return func(a, b T) bool {
		return f(b, a)
	}
}

// Then breaks ties in f with next.
func (f LessFunc[T]) Then(next LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		if f(a, b) {
			return true
		}
		if f(b, a) {
			return false
		}
		return next(a, b)
	}
}

// Sort stably sorts items in place.
func (f LessFunc[T]) Sort(items []T) {
	sort.Stable(f.Interface(items))
}

// Interface binds the ordering to items as a sort.Interface.
func (f LessFunc[T]) Interface(items []T) SortInterface {
	return SortInterface{
		LenFunc:  func() int { return len(items) },
		LessFunc: func(i, j int) bool { return f(items[i], items[j]) },
		SwapFunc: func(i, j int) { items[i], items[j] = items[j], items[i] },
	}
}

// SortInterface is a functional binding for sort.Interface.
type SortInterface struct {
	LenFunc  func() int
	LessFunc func(i, j int) bool
	SwapFunc func(i, j int)
}

// Len implements sort.Interface.
func (s SortInterface) Len() int {
	return s.LenFunc()
}

// Less implements sort.Interface.
func (s SortInterface) Less(i, j int) bool {
	return s.LessFunc(i, j)
}

// Swap implements sort.Interface.
func (s SortInterface) Swap(i, j int) {
	s.SwapFunc(i, j)
}

// ============================================================================
// Keys
// ============================================================================

// KeyFunc derives the string key a value is indexed under.
type KeyFunc[T any] func(T) string

// Map post-processes the derived key.
func (f KeyFunc[T]) Map(transform func(string) string) KeyFunc[T] {
	return func(v T) string {
		return transform(f(v))
	}
}

// Sprint returns a KeyFunc that stringifies the value picked by get.
func Sprint[T, V any](get func(T) V) KeyFunc[T] {
	return func(v T) string {
		return fmt.Sprint(get(v))
	}
}

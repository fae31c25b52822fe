/*
Package pureext provides small helper functions for slices, strings, and
HTML element trees.

# Overview

Every helper is a free function: call it, get a value back. Nothing keeps
state between calls and no helper depends on another. The helpers are split
into three packages:

  - arrayext: smallest-N selection, distinct, index by key, shuffle, partition
  - stringext: first-character decapitalization
  - htmlext: element factory and visibility toggling over golang.org/x/net/html

This package holds the function types the helpers accept. Each one is a
plain func type with a few combinators, so an inline function literal is
always a valid argument.

# Quick Example

	smallest := arrayext.SmallestN([]int{5, 4, 10, 2, 26}, 2) // [2 4]

	small, rest := arrayext.Partition(
	    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
	    func(n int) bool { return n < 5 },
	) // [1 2 3 4 0] [5 6 7 8 9]

	name := stringext.Decapitalize("Hello world") // "hello world"

	div, _ := htmlext.Tag("div")(htmlext.Markup("<p>testText</p>"))
	htmlext.Toggle(htmlext.Node(div)) // div now carries hidden=""

# Core Concepts

Predicates combine like monoids:

	small := pureext.Predicate[int](func(n int) bool { return n < 5 })
	even := pureext.Predicate[int](func(n int) bool { return n%2 == 0 })
	arrayext.Partition(nums, small.And(even.Not()))

Orderings chain tie-breakers:

	byName.Then(byAge).Sort(users)

Keys post-process:

	key := pureext.Sprint(func(u User) int { return u.ID }).Map(strings.ToLower)

# Copies, Not Mutation

None of the slice helpers modify the caller's slice. SmallestN and Shuffle
work on a copy, so the input keeps its order after the call. The DOM
helpers are the only ones with side effects: they create nodes or change the
hidden attribute of the element they are given.

# Package Import

	import "github.com/Pure-Company/pureext"
*/
package pureext

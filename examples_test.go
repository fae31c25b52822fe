package pureext_test

import (
	"fmt"
	"strings"

	"github.com/Pure-Company/pureext"
	"github.com/Pure-Company/pureext/arrayext"
	"github.com/Pure-Company/pureext/htmlext"
	"github.com/Pure-Company/pureext/stringext"
)

// ============================================================================
// Example 1: PREDICATE COMPOSITION - Partition
// ============================================================================

// Example_predicateComposition demonstrates combining predicates for Partition
func Example_predicateComposition() {
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}

	small := pureext.Predicate[int](func(n int) bool { return n < 5 })
	even := pureext.Predicate[int](func(n int) bool { return n%2 == 0 })

	fmt.Println("=== Small ===")
	matched, rest := arrayext.Partition(nums, small)
	fmt.Println(matched, rest)

	fmt.Println("\n=== Small And Odd ===")
	matched, rest = arrayext.Partition(nums, small.And(even.Not()))
	fmt.Println(matched, rest)

	fmt.Println("\n=== Small Or Even ===")
	matched, rest = arrayext.Partition(nums, small.Or(even))
	fmt.Println(matched, rest)

	// Output:
	// === Small ===
	// [1 2 3 4 0] [5 6 7 8 9]
	//
	// === Small And Odd ===
	// [1 3] [2 4 5 6 7 8 9 0]
	//
	// === Small Or Even ===
	// [1 2 3 4 6 8 0] [5 7 9]
}

// ============================================================================
// Example 2: ORDERING - Smallest by a composed ordering
// ============================================================================

type Product struct {
	Name  string
	Price int
}

// Example_orderingComposition shows tie-breaking orderings with SmallestFunc
func Example_orderingComposition() {
	products := []Product{
		{"pear", 3},
		{"fig", 2},
		{"apple", 3},
		{"kiwi", 2},
		{"mango", 5},
	}

	byPrice := pureext.LessFunc[Product](func(a, b Product) bool { return a.Price < b.Price })
	byName := pureext.LessFunc[Product](func(a, b Product) bool { return a.Name < b.Name })

	for _, p := range arrayext.SmallestFunc(products, 3, byPrice.Then(byName)) {
		fmt.Println(p.Name, p.Price)
	}

	fmt.Println("Most expensive:", arrayext.SmallestFunc(products, 1, byPrice.Reverse())[0].Name)
	fmt.Println("First product is still:", products[0].Name)

	// Output:
	// fig 2
	// kiwi 2
	// apple 3
	// Most expensive: mango
	// First product is still: pear
}

// ============================================================================
// Example 3: KEYS - Index records by a derived key
// ============================================================================

// Example_keyFunc demonstrates IndexByFunc with a post-processed key
func Example_keyFunc() {
	products := []Product{{"Pear", 3}, {"FIG", 2}, {"pear", 4}}

	key := pureext.Sprint(func(p Product) string { return p.Name }).Map(strings.ToLower)
	index := arrayext.IndexByFunc(products, key)

	fmt.Println(len(index), index["pear"].Price, index["fig"].Price)

	// Output: 2 4 2
}

// ============================================================================
// Example 4: NO MUTATION - Inputs survive every helper
// ============================================================================

// Example_noMutation shows that slice helpers leave their input alone
func Example_noMutation() {
	scores := []int{5, 4, 10, 2, 26}

	fmt.Println("Smallest two:", arrayext.SmallestN(scores, 2))
	_ = arrayext.Shuffle(scores)
	fmt.Println("Distinct:", arrayext.Distinct([]int{1, 2, 3, 2, 4, 3, 1, 5}))
	fmt.Println("Original:", scores)

	// Output:
	// Smallest two: [2 4]
	// Distinct: [1 2 3 4 5]
	// Original: [5 4 10 2 26]
}

// ============================================================================
// Example 5: STRINGS AND ELEMENTS
// ============================================================================

// Example_elementFactory builds a small tree with curried factories
func Example_elementFactory() {
	createItem := htmlext.Tag("li")
	createList := htmlext.Tag("ul")

	item, _ := createItem(htmlext.Text(stringext.Decapitalize("Hello world")))
	list, _ := createList(htmlext.Child(item))
	htmlext.Hide(htmlext.Node(list))

	out, _ := htmlext.Render(list)
	fmt.Println(out)

	fmt.Println("Visible after toggle:", htmlext.Toggle(htmlext.Node(list)))

	// Output:
	// <ul hidden=""><li>hello world</li></ul>
	// Visible after toggle: true
}

package htmlext

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HiddenAttr is the boolean attribute that marks an element as not displayed.
const HiddenAttr = "hidden"

// Element is the attribute surface the visibility helpers need.
type Element interface {
	HasAttr(name string) bool
	SetAttr(name, value string)
	RemoveAttr(name string)
}

// ============================================================================
// Visibility
// ============================================================================

// IsHidden reports whether el carries the hidden attribute.
func IsHidden(el Element) bool {
	return el.HasAttr(HiddenAttr)
}

// SetVisible shows el when visible is true and hides it otherwise.
func SetVisible(el Element, visible bool) {
	if visible {
		el.RemoveAttr(HiddenAttr)
		return
	}
	el.SetAttr(HiddenAttr, "")
}

// Show removes the hidden attribute.
func Show(el Element) {
	SetVisible(el, true)
}

// Hide sets the hidden attribute.
func Hide(el Element) {
	SetVisible(el, false)
}

// Toggle flips the visibility of el and reports whether it is now visible.
func Toggle(el Element) bool {
	visible := IsHidden(el)
	SetVisible(el, visible)
	return visible
}

// ToggleEach toggles every element of sel on its own state.
func ToggleEach(sel *goquery.Selection) {
	sel.Each(func(_ int, s *goquery.Selection) {
		Toggle(Selection(s))
	})
}

// ============================================================================
// Adapters
// ============================================================================

// Node adapts an html.Node. A nil node has no attributes and ignores writes.
func Node(n *html.Node) Element {
	return node{n}
}

type node struct {
	n *html.Node
}

func (e node) HasAttr(name string) bool {
	if e.n == nil {
		return false
	}
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return true
		}
	}
	return false
}

func (e node) SetAttr(name, value string) {
	if e.n == nil {
		return
	}
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e node) RemoveAttr(name string) {
	if e.n == nil {
		return
	}
	kept := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	e.n.Attr = kept
}

// Selection adapts a goquery selection. Reads look at the first element,
// writes apply to all of them; use ToggleEach to flip elements one by one.
func Selection(s *goquery.Selection) Element {
	return selection{s}
}

type selection struct {
	s *goquery.Selection
}

func (e selection) HasAttr(name string) bool {
	_, ok := e.s.Attr(name)
	return ok
}

func (e selection) SetAttr(name, value string) {
	e.s.SetAttr(name, value)
}

func (e selection) RemoveAttr(name string) {
	e.s.RemoveAttr(name)
}

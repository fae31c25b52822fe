// Package htmlext provides helpers over golang.org/x/net/html element trees:
// an element factory and visibility control through the hidden attribute.
//
// The factory builds detached nodes; the visibility helpers mutate the
// element they are given. Selections from github.com/PuerkitoBio/goquery are
// accepted through the Selection adapter.
package htmlext

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrInvalidTag is returned by a Factory whose tag name cannot name an element.
	ErrInvalidTag = errors.New("htmlext: invalid tag name")

	// ErrNilNode is returned when Child is given a nil node.
	ErrNilNode = errors.New("htmlext: nil node")
)

// ============================================================================
// Element Factory
// ============================================================================

// Factory creates a new element holding content.
type Factory func(content Content) (*html.Node, error)

// Tag returns a Factory for elements named name. Names are lower-cased the
// way an HTML document does. Each call of the Factory returns a new element.
//
// Example:
//
//	div := Tag("div")
//	inner, _ := div(Text("child"))
//	outer, _ := div(Child(inner)) // <div><div>child</div></div>
func Tag(name string) Factory {
	tag := strings.ToLower(name)
	return func(content Content) (*html.Node, error) {
		if !validTagName(tag) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, name)
		}
		el := NewElement(tag)
		if content == nil {
			return el, nil
		}
		if err := content.fill(el); err != nil {
			return nil, err
		}
		return el, nil
	}
}

// NewElement returns an empty, detached element node.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	return !strings.ContainsFunc(tag, func(r rune) bool {
		switch r {
		case '<', '>', '/', '=', '"', '\'', ' ', '\t', '\n', '\r', '\f':
			return true
		}
		return false
	})
}

// ============================================================================
// Content
// ============================================================================

// Content is what a Factory puts inside a new element.
type Content interface {
	fill(el *html.Node) error
}

// Markup is HTML source parsed in the context of the new element, the same
// way assigning innerHTML would.
type Markup string

func (m Markup) fill(el *html.Node) error {
	nodes, err := html.ParseFragment(strings.NewReader(string(m)), el)
	if err != nil {
		return fmt.Errorf("htmlext: parse markup: %w", err)
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}
	return nil
}

// Text is literal text; it is never parsed as markup.
type Text string

func (t Text) fill(el *html.Node) error {
	el.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
	return nil
}

// Child returns Content that appends n to the new element. A node that is
// already attached somewhere is moved.
func Child(n *html.Node) Content {
	return child{node: n}
}

type child struct {
	node *html.Node
}

func (c child) fill(el *html.Node) error {
	if c.node == nil {
		return ErrNilNode
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	el.AppendChild(c.node)
	return nil
}

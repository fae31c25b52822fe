package htmlext

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestHideShow_Node(t *testing.T) {
	el, err := Tag("div")(Text("body"))
	require.NoError(t, err)

	Hide(Node(el))
	assert.True(t, IsHidden(Node(el)))
	assert.Equal(t, `<div hidden="">body</div>`, render(t, el))

	Show(Node(el))
	assert.False(t, IsHidden(Node(el)))
	assert.Equal(t, `<div>body</div>`, render(t, el))
}

func TestHide_Idempotent(t *testing.T) {
	el := NewElement("div")

	Hide(Node(el))
	Hide(Node(el))

	assert.Len(t, el.Attr, 1)
}

func TestSetVisible_KeepsOtherAttributes(t *testing.T) {
	el := NewElement("div")
	el.Attr = []html.Attribute{{Key: "id", Val: "main"}, {Key: "hidden", Val: "until-found"}, {Key: "class", Val: "x"}}

	SetVisible(Node(el), true)

	assert.Equal(t, []html.Attribute{{Key: "id", Val: "main"}, {Key: "class", Val: "x"}}, el.Attr)
}

func TestToggle_Node(t *testing.T) {
	el := NewElement("p")

	visible := Toggle(Node(el))
	assert.False(t, visible)
	assert.True(t, IsHidden(Node(el)))

	visible = Toggle(Node(el))
	assert.True(t, visible)
	assert.False(t, IsHidden(Node(el)))
	assert.Empty(t, el.Attr)
}

func TestNode_Nil(t *testing.T) {
	el := Node(nil)

	assert.NotPanics(t, func() {
		Hide(el)
		Show(el)
	})
	assert.False(t, IsHidden(el))
}

func TestNode_IgnoresNamespacedAttribute(t *testing.T) {
	el := NewElement("svg")
	el.Attr = []html.Attribute{{Namespace: "xlink", Key: "hidden"}}

	assert.False(t, IsHidden(Node(el)))
}

const page = `<html><body><p id="a">one</p><p id="b" hidden>two</p></body></html>`

func TestToggle_Selection(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	body := Selection(doc.Find("body"))
	assert.False(t, Toggle(body))
	assert.True(t, IsHidden(body))
	assert.True(t, Toggle(body))
	assert.False(t, IsHidden(body))
}

func TestSetVisible_SelectionAppliesToAll(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	Hide(Selection(doc.Find("p")))

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		_, hidden := s.Attr(HiddenAttr)
		assert.True(t, hidden, s.Text())
	})
}

func TestToggleEach(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	ToggleEach(doc.Find("p"))

	assert.True(t, IsHidden(Selection(doc.Find("#a"))))
	assert.False(t, IsHidden(Selection(doc.Find("#b"))))
}

func TestRender_Document(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	Show(Selection(doc.Find("#b")))

	out, err := Render(doc.Nodes[0])
	require.NoError(t, err)
	assert.Equal(t, `<html><head></head><body><p id="a">one</p><p id="b">two</p></body></html>`, out)
}

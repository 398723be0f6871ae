package domq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domq/dom"
)

func TestPushDeduplicatesByIdentity(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div>`)
	a := dom.AsNode(f.Query("#a").Get(0))
	twin := a.CloneNode(true)

	c := &Collection{f: f}
	c.push(a, a, twin)

	// A deep clone is a distinct reference and counts as a new member.
	assert.Equal(t, 2, c.Length())
}

func TestPushDropsNonItems(t *testing.T) {
	f, _ := newTestPage(t, "")
	var nilNode *dom.Node

	c := &Collection{f: f}
	c.push(nil, nilNode)

	assert.Zero(t, c.Length())
}

func TestGetOutOfRange(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div>`)
	c := f.Query("div")

	assert.Nil(t, c.Get(-1))
	assert.Nil(t, c.Get(1))
	assert.NotNil(t, c.Get(0))
}

func TestItemsReturnsCopy(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div><div id="b"></div>`)
	c := f.Query("div")

	items := c.Items()
	items[0] = nil

	assert.NotNil(t, c.Get(0))
}

func TestEachVisitsInOrder(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div><div id="b"></div>`)

	var visited []string
	returned := f.Query("div").Each(func(it dom.Item, i int) {
		visited = append(visited, dom.AsNode(it).GetAttribute("id"))
	})

	assert.Equal(t, []string{"a", "b"}, visited)
	assert.Equal(t, 2, returned.Length(), "Each returns the receiver")
}

func TestEqFirstLast(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div><div id="b"></div><div id="c"></div>`)
	c := f.Query("div")

	assert.Equal(t, []string{"b"}, ids(c.Eq(1)))
	assert.Equal(t, []string{"a"}, ids(c.First()))
	assert.Equal(t, []string{"c"}, ids(c.Last()))
	assert.Zero(t, c.Eq(7).Length())
	assert.Zero(t, c.Eq(-1).Length())
}

func TestProjectionsLeaveReceiverUntouched(t *testing.T) {
	f, _ := newTestPage(t, `<div id="a"></div><div id="b"></div>`)
	c := f.Query("div")

	c.First()
	c.Filter("#b")
	c.Children()

	require.Equal(t, []string{"a", "b"}, ids(c))
}

func TestEmptyCollectionProjections(t *testing.T) {
	f, _ := newTestPage(t, "")
	c := f.Query(nil)

	assert.Zero(t, c.First().Length())
	assert.Zero(t, c.Find("div").Length())
	assert.Zero(t, c.Parent().Length())
	assert.Equal(t, "", c.Attr("id"))
	assert.Equal(t, "", c.Text())
	assert.False(t, c.Is("*"))
}

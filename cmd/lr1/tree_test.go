package main

import (
	"testing"

	"github.com/npillmayer/lrkit/grammar"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.cli")
	defer teardown()
	//
	g, err := loadGrammar("")
	require.NoError(t, err)
	A, err := lr.Build(g)
	require.NoError(t, err)
	acc, ok := lr1.NewParser(A).Parse([]grammar.Symbol{"id", "-", "id"}).(*lr1.Accepted)
	require.True(t, ok)
	root := parseTree(acc.Steps)
	assert.Equal(t, "E", root.label)
	require.Len(t, root.children, 3)
	assert.Equal(t, "T", root.children[0].label)
	assert.Equal(t, "-", root.children[1].label)
	assert.Equal(t, "E", root.children[2].label)
	ll := root.leveled(pterm.LeveledList{}, 0)
	// E T F id - E T F id
	assert.Len(t, ll, 9)
	assert.Equal(t, 3, ll[3].Level)
	assert.Equal(t, "id", ll[3].Text)
}

func TestPatternFlag(t *testing.T) {
	p := patterns{}
	assert.NoError(t, p.Set("id=[a-z]+"))
	assert.NoError(t, p.Set("num=[0-9]+"))
	assert.Error(t, p.Set("id"))
	assert.Equal(t, "id=[a-z]+,num=[0-9]+", p.String())
}

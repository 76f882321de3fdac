package lr

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/lrkit/grammar"
)

// Item is an LR(1) item: a production (referenced by its index in the grammar),
// a dot position within the production's RHS and a single lookahead terminal.
// Prod is grammar.AugmentedIndex for items of the augmented start production.
type Item struct {
	Prod      int
	Dot       int
	Lookahead grammar.Symbol
}

// StartItem returns the item [S' ➞ • S, #eof], the kernel of the start state.
func StartItem() Item {
	return Item{Prod: grammar.AugmentedIndex, Dot: 0, Lookahead: grammar.EOF}
}

// Production returns the production of an item.
func (i Item) Production(g *grammar.Grammar) *grammar.Production {
	return g.Production(i.Prod)
}

// PeekSymbol returns the symbol after the dot. If the dot is at the end of the
// RHS, PeekSymbol returns false.
func (i Item) PeekSymbol(g *grammar.Grammar) (grammar.Symbol, bool) {
	rhs := g.Production(i.Prod).RHS
	if i.Dot >= len(rhs) {
		return "", false
	}
	return rhs[i.Dot], true
}

// Advance returns a copy of the item with the dot moved one symbol to the right.
func (i Item) Advance() Item {
	return Item{Prod: i.Prod, Dot: i.Dot + 1, Lookahead: i.Lookahead}
}

// Completed is true if the dot is at the end of the RHS.
func (i Item) Completed(g *grammar.Grammar) bool {
	return i.Dot >= len(g.Production(i.Prod).RHS)
}

// Format returns a string representation of i, using grammar g.
func (i Item) Format(g *grammar.Grammar) string {
	p := g.Production(i.Prod)
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(p.LHS))
	b.WriteString(" ➞")
	for k, A := range p.RHS {
		if k == i.Dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(string(A))
	}
	if i.Dot >= len(p.RHS) {
		b.WriteString(" •")
	}
	b.WriteString(", ")
	b.WriteString(string(i.Lookahead))
	b.WriteString("]")
	return b.String()
}

func (i Item) String() string {
	return fmt.Sprintf("[%d.%d, %s]", i.Prod, i.Dot, i.Lookahead)
}

func itemLess(a, b Item) bool {
	if a.Prod != b.Prod {
		return a.Prod < b.Prod
	}
	if a.Dot != b.Dot {
		return a.Dot < b.Dot
	}
	return a.Lookahead < b.Lookahead
}

// === Item Sets =============================================================

// ItemSet is an insertion-ordered set of items. Two items are equal if
// production, dot and lookahead are equal.
type ItemSet struct {
	items *arraylist.List // items in order of insertion
	index *hashset.Set    // for fast membership test
}

// NewItemSet creates an item set, adding items in order.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{
		items: arraylist.New(),
		index: hashset.New(),
	}
	for _, i := range items {
		S.Add(i)
	}
	return S
}

// Add adds an item to S, returning false if it has been present already.
func (S *ItemSet) Add(i Item) bool {
	if S.index.Contains(i) {
		return false
	}
	S.index.Add(i)
	S.items.Add(i)
	return true
}

// Contains checks if item i is an element of S.
func (S *ItemSet) Contains(i Item) bool {
	return S.index.Contains(i)
}

// Size returns the number of items in S.
func (S *ItemSet) Size() int {
	return S.items.Size()
}

// Empty is true for an item set without any items.
func (S *ItemSet) Empty() bool {
	return S.items.Empty()
}

// Item returns the k-th item in order of insertion.
func (S *ItemSet) Item(k int) Item {
	x, ok := S.items.Get(k)
	if !ok {
		panic(fmt.Sprintf("lr.ItemSet.Item(%d) out of range", k))
	}
	return x.(Item)
}

// Items returns all items of S in order of insertion.
func (S *ItemSet) Items() []Item {
	items := make([]Item, 0, S.items.Size())
	it := S.items.Iterator()
	for it.Next() {
		items = append(items, it.Value().(Item))
	}
	return items
}

// Equals checks S and T for set equality, independent of insertion order.
func (S *ItemSet) Equals(T *ItemSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	it := S.items.Iterator()
	for it.Next() {
		if !T.index.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// itemList is the hashable form of an item set.
type itemList struct {
	Items []Item
}

// fingerprint returns a hash which is equal for item sets containing the same
// items, independent of insertion order.
func (S *ItemSet) fingerprint() string {
	items := S.Items()
	sort.Slice(items, func(a, b int) bool { return itemLess(items[a], items[b]) })
	h, err := structhash.Hash(itemList{Items: items}, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return ""
	}
	return h
}

// Format returns a string representation of S, using grammar g.
func (S *ItemSet) Format(g *grammar.Grammar) string {
	var b bytes.Buffer
	b.WriteString("{")
	for k, i := range S.Items() {
		if k == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(i.Format(g))
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper
func (S *ItemSet) Dump(g *grammar.Grammar) {
	for _, i := range S.Items() {
		tracer().Debugf("    %s", i.Format(g))
	}
}

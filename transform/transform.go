// Package transform resolves a dump parse tree into an ir.Node tree.
//
// Containers are evaluated bottom-up. A collection whose children all
// resolve to (key, value) pairs becomes an object; any other collection
// becomes an array of its children in order. An integer keyed [...]
// container always becomes an array.
//
// Evaluation walks the tree with an explicit stack, so arbitrarily deep
// dumps do not grow the call stack.
package transform

import (
	"strconv"

	"github.com/signadot/ldumpj/debug"
	"github.com/signadot/ldumpj/encode"
	"github.com/signadot/ldumpj/grammar"
	"github.com/signadot/ldumpj/ir"
)

type frame struct {
	key     string
	array   bool
	items   []*grammar.Item
	next    int
	entries []Entry
}

// Transform returns the resolved value of root.
func Transform(root *grammar.Collection) *ir.Node {
	stack := []*frame{{items: root.Items}}
	for {
		top := stack[len(stack)-1]
		if top.next < len(top.items) {
			item := top.items[top.next]
			top.next++
			if item.Value != nil {
				top.entries = append(top.entries, Classify(item.Value.Text))
				continue
			}
			h := item.Header
			switch {
			case h.Collection != nil:
				stack = append(stack, &frame{key: Key(h.Key.Name), items: h.Collection.Items})
			case h.Array != nil:
				stack = append(stack, &frame{key: Key(h.Key.Name), array: true, items: h.Array.Items})
			default:
				top.entries = append(top.entries, Entry{
					Kind:  Pair,
					Key:   Key(h.Key.Name),
					Value: Classify(h.Value.Text).Node(),
				})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		var node *ir.Node
		if top.array {
			node = sequence(top)
		} else {
			node = collection(top)
		}
		if len(stack) == 0 {
			return node
		}
		parent := stack[len(stack)-1]
		parent.entries = append(parent.entries, Entry{Kind: Pair, Key: top.key, Value: node})
	}
}

func collection(f *frame) *ir.Node {
	for _, e := range f.entries {
		if e.Kind == Pair {
			continue
		}
		if debug.Transform() {
			debug.Logf("transform: %q has scalar children, resolving to array\n", f.key)
		}
		res := make([]*ir.Node, len(f.entries))
		for i := range f.entries {
			res[i] = f.entries[i].Node()
		}
		return ir.FromSlice(res)
	}
	kvs := make([]ir.KeyVal, len(f.entries))
	for i := range f.entries {
		kvs[i] = ir.KeyVal{Key: f.entries[i].Key, Val: f.entries[i].Value}
	}
	return ir.FromKeyVals(kvs)
}

// sequence reindexes the children of an integer keyed container in the
// order their keys are first seen. A repeated key replaces the earlier
// value in place.
func sequence(f *frame) *ir.Node {
	res := make([]*ir.Node, 0, len(f.entries))
	index := make(map[int]int, len(f.entries))
	for _, e := range f.entries {
		if e.Kind == Scalar {
			if debug.Transform() {
				debug.Logf("transform: %q has unkeyed element %s\n", f.key, encode.MustString(e.Value))
			}
			res = append(res, e.Value)
			continue
		}
		k, err := strconv.Atoi(e.Key)
		if err != nil {
			if debug.Transform() {
				debug.Logf("transform: %q has non integer key %q\n", f.key, e.Key)
			}
			res = append(res, e.Value)
			continue
		}
		if j, ok := index[k]; ok {
			res[j] = e.Value
			continue
		}
		index[k] = len(res)
		res = append(res, e.Value)
	}
	return ir.FromSlice(res)
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ordtree

import (
	"fmt"
	"iter"
)

// All returns the values in ascending key order. Each range over the
// returned sequence walks the tree as it is at that moment.
func (t *Tree[V, K]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		var stack []*Node[V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Values collects All into a slice.
func (t *Tree[V, K]) Values() []V {
	values := make([]V, 0, t.size)
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}

// Keys returns the keys in ascending order.
func (t *Tree[V, K]) Keys() []K {
	keys := make([]K, 0, t.size)
	for v := range t.All() {
		keys = append(keys, t.key(v))
	}
	return keys
}

type bounded[V any, K any] struct {
	node         *Node[V]
	lo, hi       K
	hasLo, hasHi bool
}

// Check verifies the ordering invariant on every node and that the node
// count matches Len. Every key in a left subtree must be strictly less than
// its ancestor's key; every key in a right subtree must be greater than or
// equal to it.
func (t *Tree[V, K]) Check() error {
	count := 0
	stack := []bounded[V, K]{{node: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.node == nil {
			continue
		}
		count++
		k := t.key(b.node.value)
		if b.hasLo && k < b.lo {
			return fmt.Errorf("key %v sits right of %v", k, b.lo)
		}
		if b.hasHi && !(k < b.hi) {
			return fmt.Errorf("key %v sits left of %v", k, b.hi)
		}
		stack = append(stack,
			bounded[V, K]{node: b.node.left, lo: b.lo, hasLo: b.hasLo, hi: k, hasHi: true},
			bounded[V, K]{node: b.node.right, lo: k, hasLo: true, hi: b.hi, hasHi: b.hasHi},
		)
	}
	if count != t.size {
		return fmt.Errorf("counted %d nodes, size says %d", count, t.size)
	}
	return nil
}

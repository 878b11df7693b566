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

// Package ordtree is an unbalanced binary search tree ordered by a key
// extracted from each stored value.
//
// Keys that compare equal are routed to the right subtree, so for every node
// the left subtree holds strictly smaller keys and the right subtree holds
// keys greater than or equal to the node's key. Find and Delete therefore
// act on the topmost of several equal keys, never on one routed to its left.
// The tree never rebalances.
// All walks are iterative; depth equals the number of values when they are
// inserted in sorted order.
//
// A Tree is not safe for concurrent use.
package ordtree

import (
	"golang.org/x/exp/constraints"
)

// KeyFunc extracts the ordering key from a stored value.
type KeyFunc[V any, K constraints.Ordered] func(V) K

// Node is a read-only view of a tree node.
type Node[V any] struct {
	value       V
	left, right *Node[V]
}

func (n *Node[V]) Value() V        { return n.value }
func (n *Node[V]) Left() *Node[V]  { return n.left }
func (n *Node[V]) Right() *Node[V] { return n.right }

// Tree is a binary search tree of values of type V ordered by keys of type K.
type Tree[V any, K constraints.Ordered] struct {
	root *Node[V]
	key  KeyFunc[V, K]
	size int
}

// New returns an empty tree ordered by key.
func New[V any, K constraints.Ordered](key KeyFunc[V, K]) *Tree[V, K] {
	return &Tree[V, K]{key: key}
}

// Key returns the ordering key of v.
func (t *Tree[V, K]) Key(v V) K {
	return t.key(v)
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[V, K]) Root() *Node[V] {
	return t.root
}

// Len returns the number of values in the tree.
func (t *Tree[V, K]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[V, K]) Empty() bool {
	return t.root == nil
}

// Insert attaches v as a new leaf. Duplicate keys are allowed.
func (t *Tree[V, K]) Insert(v V) {
	k := t.key(v)
	link := &t.root
	for *link != nil {
		if k < t.key((*link).value) {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &Node[V]{value: v}
	t.size++
}

// Find returns the value of the topmost node whose key equals k.
func (t *Tree[V, K]) Find(k K) (V, bool) {
	n := t.root
	for n != nil {
		nk := t.key(n.value)
		switch {
		case k == nk:
			return n.value, true
		case k < nk:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether a value with key k is present.
func (t *Tree[V, K]) Contains(k K) bool {
	_, ok := t.Find(k)
	return ok
}

// Count returns the number of values whose key equals k.
func (t *Tree[V, K]) Count(k K) int {
	count := 0
	n := t.root
	for n != nil {
		nk := t.key(n.value)
		if k < nk {
			n = n.left
			continue
		}
		// Equal keys only ever sit in the right subtree of an equal node.
		if k == nk {
			count++
		}
		n = n.right
	}
	return count
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[V, K]) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*Node[V]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

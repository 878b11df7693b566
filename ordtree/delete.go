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

// Delete removes the topmost node whose key equals k. It returns false,
// leaving the tree untouched, when no such node exists.
func (t *Tree[V, K]) Delete(k K) bool {
	return t.DeleteFunc(k, nil)
}

// DeleteFunc removes the first node met on the way down whose key equals k
// and whose value satisfies match. A nil match accepts any value.
func (t *Tree[V, K]) DeleteFunc(k K, match func(V) bool) bool {
	link := t.locate(k, match)
	if link == nil {
		return false
	}
	t.unlink(link)
	t.size--
	return true
}

// locate walks down from the root and returns the link that owns the
// matching node, or nil. The root's owning link is the tree's root slot.
func (t *Tree[V, K]) locate(k K, match func(V) bool) **Node[V] {
	link := &t.root
	for *link != nil {
		n := *link
		nk := t.key(n.value)
		switch {
		case k == nk:
			if match == nil || match(n.value) {
				return link
			}
			// Remaining duplicates of k live to the right.
			link = &n.right
		case k < nk:
			link = &n.left
		default:
			link = &n.right
		}
	}
	return nil
}

// unlink removes the node owned by link.
func (t *Tree[V, K]) unlink(link **Node[V]) {
	n := *link
	switch {
	case n.left == nil && n.right == nil:
		*link = nil
	case n.right == nil:
		*link = n.left
	case n.left == nil:
		*link = n.right
	default:
		// Promote the in-order successor: the leftmost node of the right
		// subtree. The target keeps its slot and takes the successor's value.
		succLink := &n.right
		for (*succLink).left != nil {
			succLink = &(*succLink).left
		}
		succ := *succLink
		n.value = succ.value
		*succLink = succ.right
		succ.right = nil
		return
	}
	n.left, n.right = nil, nil
}

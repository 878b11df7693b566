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

package contact

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

var (
	ErrEmptyName  = errors.New("contact name is empty")
	ErrEmptyPhone = errors.New("contact phone number is empty")
)

const (
	DefaultBloomBits   = 8192
	DefaultBloomHashes = 4
)

// Options tunes the lookup cache and the membership filters of a Book.
// Zero values fall back to the defaults.
type Options struct {
	CacheTTL     time.Duration
	CacheCleanup time.Duration
	BloomBits    uint
	BloomHashes  uint
}

func (o Options) withDefaults() Options {
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultLookupExpiration
	}
	if o.CacheCleanup <= 0 {
		o.CacheCleanup = DefaultLookupCleanup
	}
	if o.BloomBits == 0 {
		o.BloomBits = DefaultBloomBits
	}
	if o.BloomHashes == 0 {
		o.BloomHashes = DefaultBloomHashes
	}
	return o
}

// Book keeps a name-ordered and a phone-ordered tree in step: every record
// added or deleted through the Book lands in, or leaves, both trees.
//
// A Book is not safe for concurrent use.
type Book struct {
	trees   [2]*Tree
	seen    [2]*bloom.BloomFilter
	lookups *cache.Cache
}

// NewBook returns an empty Book.
func NewBook(opts Options) *Book {
	opts = opts.withDefaults()
	return &Book{
		trees: [2]*Tree{NewTree(NameOrder), NewTree(PhoneOrder)},
		seen: [2]*bloom.BloomFilter{
			bloom.New(opts.BloomBits, opts.BloomHashes),
			bloom.New(opts.BloomBits, opts.BloomHashes),
		},
		lookups: newLookupCache(opts.CacheTTL, opts.CacheCleanup),
	}
}

// Tree exposes the tree for ordering o. Mutating it directly bypasses the
// Book's bookkeeping; Delete and DeleteRecord log when they find the trees
// out of step, and Verify reports it.
func (b *Book) Tree(o Order) *Tree {
	return b.trees[o]
}

// Len returns the number of records in the Book.
func (b *Book) Len() int {
	return b.trees[NameOrder].Len()
}

// Add inserts r into both trees.
func (b *Book) Add(r Record) error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if r.Phone == "" {
		return ErrEmptyPhone
	}
	for _, o := range []Order{NameOrder, PhoneOrder} {
		b.trees[o].Insert(r)
		b.seen[o].AddString(o.Key(r))
	}
	forgetRecord(b.lookups, r)
	return nil
}

// Find looks key up in the tree for ordering o.
func (b *Book) Find(o Order, key string) (Record, bool) {
	if !b.seen[o].TestString(key) {
		return Record{}, false
	}
	if r, ok := cachedRecord(b.lookups, o, key); ok {
		return r, true
	}
	r, ok := b.trees[o].Find(key)
	if ok {
		cacheRecord(b.lookups, o, key, r)
	}
	return r, ok
}

// Delete removes the record found under key in ordering o from both trees
// and returns it.
func (b *Book) Delete(o Order, key string) (Record, bool) {
	r, ok := b.trees[o].Find(key)
	if !ok {
		return Record{}, false
	}
	b.trees[o].Delete(key)

	// The sibling may hold several records under the same key; remove the
	// one equal to r.
	other := o.Other()
	if !b.trees[other].DeleteFunc(other.Key(r), func(c Record) bool { return c == r }) {
		log.Printf("contact: %s tree had no record %s/%s; trees are out of step", other, r.Name, r.Phone)
	}

	// A two-child splice moves a successor's record into another slot, so a
	// cached duplicate may no longer be the topmost match.
	b.lookups.Flush()
	return r, true
}

// DeleteRecord removes the record equal to r from both trees. Other records
// sharing r's name or phone stay put. It reports whether r was present in
// either tree; a record present in only one tree is logged and removed from
// it, and Verify reports the trees as out of step until then.
func (b *Book) DeleteRecord(r Record) bool {
	same := func(c Record) bool { return c == r }
	removed := [2]bool{}
	for _, o := range []Order{NameOrder, PhoneOrder} {
		removed[o] = b.trees[o].DeleteFunc(o.Key(r), same)
	}
	if !removed[NameOrder] && !removed[PhoneOrder] {
		return false
	}
	if removed[NameOrder] != removed[PhoneOrder] {
		log.Printf("contact: record %s/%s was in only one tree; trees are out of step", r.Name, r.Phone)
	}
	b.lookups.Flush()
	return true
}

// All yields the records in ordering o.
func (b *Book) All(o Order) iter.Seq[Record] {
	return b.trees[o].All()
}

// Verify checks both trees and that they hold the same number of records.
func (b *Book) Verify() error {
	for _, o := range []Order{NameOrder, PhoneOrder} {
		if err := b.trees[o].Check(); err != nil {
			return fmt.Errorf("%s tree: %v", o, err)
		}
	}
	if n, p := b.trees[NameOrder].Len(), b.trees[PhoneOrder].Len(); n != p {
		return fmt.Errorf("name tree holds %d records, phone tree holds %d", n, p)
	}
	return nil
}

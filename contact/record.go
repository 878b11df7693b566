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

// Package contact indexes contact records by name and by phone number.
package contact

import (
	"fmt"
	"strings"

	"github.com/cybrota/phonebook/ordtree"
)

// Record is a single contact entry.
type Record struct {
	Name    string `yaml:"name" json:"name"`
	Phone   string `yaml:"phone" json:"phone"`
	Address string `yaml:"address" json:"address"`
}

// String renders the record as three newline-terminated lines.
func (r Record) String() string {
	return fmt.Sprintf("Name: %s\nPhone Number: %s\nAddress: %s\n", r.Name, r.Phone, r.Address)
}

// Order selects the field a tree is ordered by.
type Order int

const (
	NameOrder Order = iota
	PhoneOrder
)

// Key returns the field of r that o orders by.
func (o Order) Key(r Record) string {
	if o == PhoneOrder {
		return r.Phone
	}
	return r.Name
}

func (o Order) String() string {
	if o == PhoneOrder {
		return "phone"
	}
	return "name"
}

// Other returns the sibling ordering.
func (o Order) Other() Order {
	if o == PhoneOrder {
		return NameOrder
	}
	return PhoneOrder
}

// ParseOrder accepts "name" or "phone", case-insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "names":
		return NameOrder, nil
	case "phone", "phones", "number":
		return PhoneOrder, nil
	}
	return NameOrder, fmt.Errorf("unknown order %q (want name or phone)", s)
}

// Tree is a record tree ordered by one field.
type Tree = ordtree.Tree[Record, string]

// NewTree returns an empty record tree ordered by o.
func NewTree(o Order) *Tree {
	return ordtree.New(o.Key)
}

// Insert adds a record built from the given fields to tree.
func Insert(tree *Tree, name, phone, address string) {
	tree.Insert(Record{Name: name, Phone: phone, Address: address})
}

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

package main

import (
	"fmt"
	"io"

	"github.com/cybrota/phonebook/contact"
)

const (
	separator = "-----------------"

	demoName  = "Joseph"
	demoPhone = "0850602678"
)

// printRecord writes r followed by a blank line.
func printRecord(w io.Writer, r contact.Record) {
	fmt.Fprintln(w, r)
}

// runDemo inserts records into a name tree and a phone tree, looks one
// record up in each, deletes them and prints both trees in order. The two
// trees are driven independently; keeping them consistent is up to this
// function.
func runDemo(w io.Writer, records []contact.Record) {
	nameTree := contact.NewTree(contact.NameOrder)
	phoneTree := contact.NewTree(contact.PhoneOrder)

	for _, r := range records {
		contact.Insert(nameTree, r.Name, r.Phone, r.Address)
		contact.Insert(phoneTree, r.Name, r.Phone, r.Address)
	}

	findAndPrint(w, nameTree, demoName)
	fmt.Fprintln(w, separator)
	findAndPrint(w, phoneTree, demoPhone)
	fmt.Fprintln(w, separator)

	nameTree.Delete(demoName)
	for r := range nameTree.All() {
		printRecord(w, r)
	}
	fmt.Fprintln(w, separator)

	phoneTree.Delete(demoPhone)
	for r := range phoneTree.All() {
		printRecord(w, r)
	}
}

func findAndPrint(w io.Writer, tree *contact.Tree, key string) {
	r, ok := tree.Find(key)
	if !ok {
		fmt.Fprintf(w, "%s not found\n\n", key)
		return
	}
	printRecord(w, r)
}

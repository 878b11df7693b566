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
	"bytes"
	"strings"
	"testing"

	"github.com/cybrota/phonebook/contact"
)

// TestSplitLine verifies that splitLine correctly tokenizes a shell line.
func TestSplitLine(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"find name Mary", []string{"find", "name", "Mary"}},
		{`add "Mary Jane" 0851234567 "Apt 10"`, []string{"add", "Mary Jane", "0851234567", "Apt 10"}},
		{"  list   phone ", []string{"list", "phone"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitLine(tc.input)
		if err != nil {
			t.Errorf("splitLine(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitLine(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitLine(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}

func TestSplitLineUnterminatedQuote(t *testing.T) {
	if _, err := splitLine(`add "Mary 0851234567`); err == nil {
		t.Error("expected an error for an unterminated quote")
	}
}

func newSampleBook(t *testing.T) *contact.Book {
	t.Helper()
	book := contact.NewBook(contact.Options{})
	for _, r := range contact.Sample() {
		if err := book.Add(r); err != nil {
			t.Fatal(err)
		}
	}
	return book
}

func runScript(t *testing.T, book *contact.Book, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := runShell(book, contact.NameOrder, strings.NewReader(script), &out); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}
	return out.String()
}

func TestShellSession(t *testing.T) {
	book := newSampleBook(t)
	script := strings.Join([]string{
		`add "Mary Jane" 0851234567 "Apt 10"`,
		"find name \"Mary Jane\"",
		"delete phone 0850602678",
		"find name Cory",
		"count",
		"verify",
		"quit",
		"count",
	}, "\n")

	out := runScript(t, book, script)

	for _, want := range []string{
		"added Mary Jane",
		"Name: Mary Jane\nPhone Number: 0851234567\nAddress: Apt 10\n",
		"deleted\nName: Cory\n",
		"Cory not found",
		"9\n",
		"ok\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("shell output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "9\n") != 1 {
		t.Errorf("commands after quit were executed:\n%s", out)
	}
	if book.Len() != 9 {
		t.Errorf("book.Len() = %d; want 9", book.Len())
	}
}

func TestShellListOrder(t *testing.T) {
	book := contact.NewBook(contact.Options{})
	book.Add(contact.Record{Name: "B", Phone: "0851111111"})
	book.Add(contact.Record{Name: "A", Phone: "0852222222"})

	out := runScript(t, book, "list phone\n")
	if strings.Index(out, "Name: B") > strings.Index(out, "Name: A") {
		t.Errorf("list phone did not order by phone:\n%s", out)
	}

	out = runScript(t, book, "list\n")
	if strings.Index(out, "Name: A") > strings.Index(out, "Name: B") {
		t.Errorf("list did not order by name:\n%s", out)
	}
}

func TestShellErrorsDoNotStopTheSession(t *testing.T) {
	book := newSampleBook(t)
	out := runScript(t, book, "frobnicate\nadd onlyname\nfind address x\ncount\n")

	if strings.Count(out, "error:") != 3 {
		t.Errorf("expected three errors:\n%s", out)
	}
	if !strings.Contains(out, "9\n") {
		t.Errorf("session stopped after an error:\n%s", out)
	}
}

func TestShellDeleteSharedNameKeepsOtherContact(t *testing.T) {
	book := newSampleBook(t)
	out := runScript(t, book, `add Betty 0851234567 "Apt 11"`+"\ndelete name Betty\nfind name Betty\n")

	if !strings.Contains(out, "deleted\nName: Betty\nPhone Number: 0868026665\n") {
		t.Errorf("delete did not remove the first Betty:\n%s", out)
	}
	if !strings.Contains(out, "Name: Betty\nPhone Number: 0851234567\nAddress: Apt 11\n") {
		t.Errorf("the second Betty is gone:\n%s", out)
	}
	if err := book.Verify(); err != nil {
		t.Error(err)
	}
}

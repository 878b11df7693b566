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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/phonebook/contact"
	"github.com/mattn/go-shellwords"
)

const shellPrompt = "phonebook> "

const shellHelp = `Commands:
  add NAME PHONE ADDRESS     add a contact (quote fields with spaces)
  find name|phone KEY        look a contact up
  delete name|phone KEY      remove a contact from both indexes
  list [name|phone]          print every contact in order
  count                      number of contacts
  verify                     check both indexes
  help                       this text
  quit | exit                leave the shell
`

var errQuit = errors.New("quit")

// splitLine splits a shell line into words, honouring quotes.
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	return args, nil
}

type shell struct {
	book  *contact.Book
	out   io.Writer
	order contact.Order
}

// exec runs one tokenized command. It returns errQuit when the user asks to
// leave.
func (s *shell) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "quit", "exit":
		return errQuit

	case "help", "?":
		fmt.Fprint(s.out, shellHelp)

	case "add":
		if len(args) != 4 {
			return fmt.Errorf("usage: add NAME PHONE ADDRESS")
		}
		r := contact.Record{Name: args[1], Phone: args[2], Address: args[3]}
		if err := s.book.Add(r); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "added %s\n", r.Name)

	case "find", "delete":
		if len(args) != 3 {
			return fmt.Errorf("usage: %s name|phone KEY", cmd)
		}
		o, err := contact.ParseOrder(args[1])
		if err != nil {
			return err
		}
		var r contact.Record
		var ok bool
		if cmd == "find" {
			r, ok = s.book.Find(o, args[2])
		} else {
			r, ok = s.book.Delete(o, args[2])
		}
		if !ok {
			fmt.Fprintf(s.out, "%s%s not found%s\n", Warning, args[2], Reset)
			return nil
		}
		if cmd == "delete" {
			fmt.Fprint(s.out, "deleted\n")
		}
		printRecord(s.out, r)

	case "list", "ls":
		o := s.order
		if len(args) > 1 {
			var err error
			if o, err = contact.ParseOrder(args[1]); err != nil {
				return err
			}
		}
		for r := range s.book.All(o) {
			printRecord(s.out, r)
		}

	case "count":
		fmt.Fprintf(s.out, "%d\n", s.book.Len())

	case "verify":
		if err := s.book.Verify(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "ok\n")

	default:
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return nil
}

// runShell reads commands from in until EOF or quit.
func runShell(book *contact.Book, order contact.Order, in io.Reader, out io.Writer) error {
	s := &shell{book: book, out: out, order: order}
	scanner := bufio.NewScanner(in)

	prompt := Info + shellPrompt + Reset
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		args, err := splitLine(scanner.Text())
		if err == nil {
			err = s.exec(args)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

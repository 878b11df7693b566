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
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cybrota/phonebook/contact"
	"github.com/schollz/progressbar/v3"
)

// loadOptions are the global flags that decide where records come from.
type loadOptions struct {
	File         string
	Progress     bool
	RandomPhones bool
}

// expandHome turns a leading ~/ into the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// readRecords returns the records named by --file, else by the config,
// else the built-in sample.
func readRecords(opts loadOptions, config *Config) ([]contact.Record, error) {
	path := opts.File
	if path == "" {
		path = config.Contacts.File
	}
	if path != "" {
		return contact.ReadFile(expandHome(path))
	}

	if opts.RandomPhones {
		return contact.SampleWithRandomPhones(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	}
	return contact.Sample(), nil
}

// populateBook adds records to book, drawing a progress bar on out when
// showProgress is set.
func populateBook(book *contact.Book, records []contact.Record, showProgress bool, out io.Writer) error {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📇 Importing contacts..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n✅ Import completed!\n")
			}),
		)
	}

	for i, r := range records {
		if err := book.Add(r); err != nil {
			return fmt.Errorf("contact #%d: %v", i+1, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return nil
}

// loadBook builds a Book from the configured source.
func loadBook(opts loadOptions, config *Config) (*contact.Book, error) {
	records, err := readRecords(opts, config)
	if err != nil {
		return nil, err
	}

	book := contact.NewBook(config.BookOptions())
	if err := populateBook(book, records, opts.Progress, os.Stderr); err != nil {
		return nil, err
	}
	return book, nil
}

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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func usageMarkdown() string {
	return fmt.Sprintf(`

 **Phonebook %s**

An in-memory contact index. Every contact is kept in two binary search trees,
one ordered by name and one ordered by phone number, so either key finds it.

Built with Go %s

# 1. Commands
* **demo** runs the classic walkthrough: two trees, a lookup in each, a delete in each
* **list** prints every contact in name or phone order
* **find** looks a contact up by name or phone number
* **shell** opens an interactive prompt to add, find and delete contacts
* **browse** opens a searchable terminal UI
* **tree** draws the shape of either tree
* **serve** exposes the contacts over a small HTTP API
* **settings** shows the active configuration

# 2. Contacts file
Pass --file or set contacts.file in ~/.phonebook.yaml. The file is YAML:

    contacts:
      - name: Cory
        phone: "0850602678"
        address: Apt 3

Without a file the built-in sample is used.

# 3. Duplicate keys
Two contacts may share a name or a number. A lookup returns a single match, and
deleting by a shared key removes exactly that contact from both trees.

# Please be aware
* Contacts live in memory only; nothing is written back to the file
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

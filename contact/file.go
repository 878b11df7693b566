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
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a contacts file:
//
//	contacts:
//	  - name: Mary
//	    phone: "0856776227"
//	    address: Apt 7
type File struct {
	Contacts []Record `yaml:"contacts"`
}

// Decode reads a contacts document from r.
func Decode(r io.Reader) ([]Record, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode contacts: %v", err)
	}
	for i, rec := range f.Contacts {
		if rec.Name == "" {
			return nil, fmt.Errorf("contact #%d: %w", i+1, ErrEmptyName)
		}
		if rec.Phone == "" {
			return nil, fmt.Errorf("contact #%d (%s): %w", i+1, rec.Name, ErrEmptyPhone)
		}
	}
	return f.Contacts, nil
}

// ReadFile reads the contacts file at path.
func ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("contacts file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

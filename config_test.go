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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cybrota/phonebook/contact"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q; want :8080", config.Server.Addr)
	}
	if config.DisplayOrder() != contact.NameOrder {
		t.Errorf("DisplayOrder() = %v; want name", config.DisplayOrder())
	}
	if got := config.BookOptions().CacheTTL; got != contact.DefaultLookupExpiration {
		t.Errorf("CacheTTL = %v; want %v", got, contact.DefaultLookupExpiration)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := "display:\n  order: phone\nindex:\n  cache_ttl_seconds: 60\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.DisplayOrder() != contact.PhoneOrder {
		t.Errorf("DisplayOrder() = %v; want phone", config.DisplayOrder())
	}
	if got := config.BookOptions().CacheTTL; got != time.Minute {
		t.Errorf("CacheTTL = %v; want 1m", got)
	}
	if config.Index.BloomBits != contact.DefaultBloomBits {
		t.Errorf("BloomBits = %d; want default %d", config.Index.BloomBits, contact.DefaultBloomBits)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("index: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if config == nil || config.Server.Addr != ":8080" {
		t.Errorf("malformed config should still return defaults, got %+v", config)
	}
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := writeDefaultConfigFile(path); err != nil {
		t.Fatalf("writeDefaultConfigFile: %v", err)
	}
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("written defaults = %+v; want %+v", *config, defaultConfig)
	}
}

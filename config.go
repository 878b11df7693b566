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
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/phonebook/contact"
	"gopkg.in/yaml.v3"
)

const configFileName = ".phonebook.yaml"

type IndexConfig struct {
	CacheTTLSeconds     int  `yaml:"cache_ttl_seconds"`
	CacheCleanupSeconds int  `yaml:"cache_cleanup_seconds"`
	BloomBits           uint `yaml:"bloom_bits"`
	BloomHashes         uint `yaml:"bloom_hashes"`
}

type DisplayConfig struct {
	Order string `yaml:"order"`
}

type ContactsConfig struct {
	File string `yaml:"file"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Index    IndexConfig    `yaml:"index"`
	Display  DisplayConfig  `yaml:"display"`
	Contacts ContactsConfig `yaml:"contacts"`
	Server   ServerConfig   `yaml:"server"`
}

var defaultConfig = Config{
	Index: IndexConfig{
		CacheTTLSeconds:     int(contact.DefaultLookupExpiration / time.Second),
		CacheCleanupSeconds: int(contact.DefaultLookupCleanup / time.Second),
		BloomBits:           contact.DefaultBloomBits,
		BloomHashes:         contact.DefaultBloomHashes,
	},
	Display: DisplayConfig{
		Order: "name",
	},
	Server: ServerConfig{
		Addr: ":8080",
	},
}

// BookOptions converts the index section into contact.Options.
func (c *Config) BookOptions() contact.Options {
	return contact.Options{
		CacheTTL:     time.Duration(c.Index.CacheTTLSeconds) * time.Second,
		CacheCleanup: time.Duration(c.Index.CacheCleanupSeconds) * time.Second,
		BloomBits:    c.Index.BloomBits,
		BloomHashes:  c.Index.BloomHashes,
	}
}

// DisplayOrder returns the configured default ordering, falling back to name.
func (c *Config) DisplayOrder() contact.Order {
	o, err := contact.ParseOrder(c.Display.Order)
	if err != nil {
		return contact.NameOrder
	}
	return o
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the config at path. A missing or unreadable file
// yields the defaults; fields left out of the file keep their defaults.
func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Phonebook Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔍 %sIndex:%s\n", Green, Reset)
	fmt.Printf("  • %scache_ttl_seconds%s: %d\n", Green, Reset, config.Index.CacheTTLSeconds)
	fmt.Printf("  • %scache_cleanup_seconds%s: %d\n", Green, Reset, config.Index.CacheCleanupSeconds)
	fmt.Printf("  • %sbloom_bits%s: %d\n", Green, Reset, config.Index.BloomBits)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Index.BloomHashes)

	fmt.Printf("📋 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sorder%s: %s\n\n", Green, Reset, config.DisplayOrder())

	fmt.Printf("📇 %sContacts:%s\n", Green, Reset)
	if config.Contacts.File == "" {
		fmt.Printf("  • %sfile%s: (built-in sample)\n\n", Green, Reset)
	} else {
		fmt.Printf("  • %sfile%s: %s\n\n", Green, Reset, config.Contacts.File)
	}

	fmt.Printf("🌐 %sServer:%s\n", Green, Reset)
	fmt.Printf("  • %saddr%s: %s\n\n", Green, Reset, config.Server.Addr)

	fmt.Printf("💡 To load your own contacts, edit %s:\n", configPath)
	fmt.Printf("   contacts:\n     file: ~/contacts.yaml\n")
}

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
	"log"
	"os"

	"github.com/cybrota/phonebook/contact"
	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
█▀█ █ █ █▀█ █▄ █ █▀▀ █▄▄ █▀█ █▀█ █▄▀
█▀▀ █▀█ █▄█ █ ▀█ ██▄ █▄█ █▄█ █▄█ █ █
Contacts indexed by name and by phone number [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	var opts loadOptions

	// mustLoadBook builds the Book every data command works on.
	mustLoadBook := func() *contact.Book {
		book, err := loadBook(opts, config)
		if err != nil {
			log.Fatalf("Error loading contacts: %v", err)
		}
		return book
	}

	orderFlag := func(cmd *cobra.Command) contact.Order {
		value, _ := cmd.Flags().GetString("order")
		if value == "" {
			return config.DisplayOrder()
		}
		o, err := contact.ParseOrder(value)
		if err != nil {
			log.Fatalf("Invalid --order: %v", err)
		}
		return o
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the two-tree walkthrough on the contacts",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo builds a name tree and a phone tree, finds and deletes a contact in each and prints both in order`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			records, err := readRecords(opts, config)
			if err != nil {
				log.Fatalf("Error loading contacts: %v", err)
			}
			runDemo(os.Stdout, records)
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print every contact in order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book := mustLoadBook()
			for r := range book.All(orderFlag(cmd)) {
				printRecord(os.Stdout, r)
			}
		},
	}
	cmdList.Flags().StringP("order", "o", "", "order by name or phone")

	var cmdFind = &cobra.Command{
		Use:          "find KEY",
		Short:        "Look a contact up by name or phone number",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			book := mustLoadBook()
			r, ok := book.Find(orderFlag(cmd), args[0])
			if !ok {
				return fmt.Errorf("%s not found", args[0])
			}
			printRecord(os.Stdout, r)
			return nil
		},
	}
	cmdFind.Flags().StringP("order", "o", "", "search the name or phone index")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive contacts prompt",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, shellHelp),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book := mustLoadBook()
			if err := runShell(book, config.DisplayOrder(), os.Stdin, os.Stdout); err != nil {
				log.Fatalf("Shell error: %v", err)
			}
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Search contacts in a terminal UI",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book := mustLoadBook()
			if err := runBrowser(book, orderFlag(cmd)); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}
	cmdBrowse.Flags().StringP("order", "o", "", "start ordered by name or phone")

	var cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Draw the shape of the name or phone tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			book := mustLoadBook()
			runTreeView(book, orderFlag(cmd))
		},
	}
	cmdTree.Flags().StringP("order", "o", "", "show the name or phone tree")

	var cmdServe = &cobra.Command{
		Use:   "serve",
		Short: "Serve the contacts over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = config.Server.Addr
			}
			book := mustLoadBook()
			if err := serve(book, addr); err != nil {
				log.Fatalf("Failed to start server: %v", err)
			}
		},
	}
	cmdServe.Flags().String("addr", "", "listen address (default from settings)")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Phonebook usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the phonebook CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Phonebook version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "phonebook",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			cmdDemo.Run(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "YAML contacts file (default from settings, else the sample)")
	rootCmd.PersistentFlags().BoolVar(&opts.Progress, "progress", false, "show a progress bar while importing")
	rootCmd.PersistentFlags().BoolVar(&opts.RandomPhones, "random-phones", false, "give the sample contacts random phone numbers")

	rootCmd.AddCommand(cmdDemo, cmdList, cmdFind, cmdShell, cmdBrowse, cmdTree, cmdServe, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

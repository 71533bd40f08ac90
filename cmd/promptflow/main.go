// Package main provides the promptflow CLI.
//
// Usage:
//
//	promptflow [flags] <command> [args]
//
// Commands:
//
//	init     - Prepare a storage root and seed the starter templates
//	where    - Print the resolved storage root
//	list     - List documents
//	show     - Print one document
//	search   - Search documents
//	create   - Create a document
//	update   - Change fields of a document
//	delete   - Delete a document
//	use      - Record a use and print or copy the content
//	export   - Archive the storage root
//	config   - Inspect and change config.json
//
// Configuration:
//
//	config.json lives in the default storage root (~/Documents/PromptFlow).
//	PROMPTFLOW_STORAGE_PATH overrides storage.path for one run.
package main

import (
	"fmt"
	"os"

	"github.com/jpl-au/promptflow/cmd/promptflow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.FormatError(err))
		os.Exit(1)
	}
}

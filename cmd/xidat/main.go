/*

A simple CLI app to decode one or more .DAT archives passed as CLI
arguments and print their records as JSON.

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ffxitools/xidat/xiparser"
)

const (
	appName    = "xidat"
	appVersion = "v0.1.0"
)

const (
	ExitCodeMissingArguments = 1
)

var (
	version = flag.Bool("version", false, "print version info and exit")
	indent  = flag.Bool("indent", true, "use indentation when formatting output")
)

func main() {
	flag.Parse()

	if *version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}

	for _, path := range args {
		if err := decodeFile(enc, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
}

// decodeFile reads path, parses it, and encodes its archive to enc. Errors
// are returned to the caller rather than aborting the remaining files.
func decodeFile(enc *json.Encoder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	archive, err := xiparser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing archive: %w", err)
	}

	if err := enc.Encode(archive); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func printVersion() {
	fmt.Println(appName, "version:", appVersion)
}

func printUsage() {
	fmt.Println("Usage:")
	name := os.Args[0]
	fmt.Printf("\t%s [FLAGS] file.DAT [file2.DAT ...]\n", name)
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}

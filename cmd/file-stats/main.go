package main

import "os"

// Note: Build-time variables 'version', 'commit', and 'date' are declared in
// 'root.go' within this package and populated at build time via -ldflags.

// main is the entry point for the file-stats tool. Execute (defined in
// root.go) sets up and runs the root Cobra command; the returned code follows
// the contract the orchestrator relies on: 0 success, 1 failure.
func main() {
	os.Exit(Execute())
}

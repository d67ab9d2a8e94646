// The main package for the dcmap-crawler executable.
package main

import (
	"github.com/rbeggs/dcmap-crawler/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}

// Package main provides the tablekeep CLI: inspect, compose, and merge the
// URL-fragment tokens that persist table view state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

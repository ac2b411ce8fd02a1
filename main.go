// main package for the amalgam command-line tool
// Package main is the entry point for the amalgam CLI.
package main

import "amalgam.dev/pkg/amalgam/cmd"

func main() {
	cmd.Execute()
}

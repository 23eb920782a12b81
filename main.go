// Package main is the entry point for the solvestats CLI.
package main

import "solvestats.dev/pkg/solvestats/cmd"

func main() {
	cmd.Execute()
}

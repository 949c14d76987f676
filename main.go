// main package for depclip command-line tool
// Package main is the entry point for the depclip CLI.
package main

import "depclip.dev/pkg/depclip/cmd"

func main() {
	cmd.Execute()
}

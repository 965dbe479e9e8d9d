// Package complyscan provides the command-line interface for the complyscan
// tool. It configures subcommands (security, accessibility, checks), parses
// flags, and executes the selected audit.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/complyscan/complyscan/cmd/complyscan"
//	func main() { complyscan.Execute() }
package complyscan

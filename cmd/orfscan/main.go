// Command orfscan provides a CLI for ORF discovery and protein matching.
//
// Usage:
//
//	orfscan [command] [options]
//
// Commands:
//
//	frames      Translate sequences and list their ORFs
//	align       Match the ORFs of query records against target proteins
//	version     Show version information
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

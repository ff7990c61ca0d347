// Command coolprop-go is a command-line front end for the coolprop wrapper:
// one-shot property queries, humid-air queries, phase classification, fluid
// listings, and Arrow property-table sweeps.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

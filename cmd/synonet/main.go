// Command synonet answers connectivity, synonym, random walk and definition
// queries over a thesaurus adjacency file and a definitions CSV.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

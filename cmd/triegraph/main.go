// Command triegraph builds a (kmer, position) index over a small
// sequence graph description, exercising the complexity estimator and
// the three trie builders end to end.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

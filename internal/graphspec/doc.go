// Package graphspec reads the minimal YAML graph description the
// triegraph CLI accepts (--graph) and turns it into a seqgraph.Graph,
// deriving an alphabet.Alphabet dense enough to hold every symbol the
// description uses. It is a CLI convenience, not a general
// bioinformatics file-format parser.
package graphspec

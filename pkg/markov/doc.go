/*
Package markov builds second-order (trigram) Markov models over plain-text
sentences and generates new sentences by random walk.

Every ingested sentence passes through a normalization pipeline before
indexing: configurable pattern-removal filters, an optional token transform,
and a letter-casing policy. The model keeps every observed seed and successor,
duplicates included, so a plain uniform draw is frequency-weighted by
occurrence count. Models live entirely in memory, grow append-only, and are
not safe for concurrent use.
*/
package markov

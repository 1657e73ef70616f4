// Package textproc splits Russian words into an emphasised head and a plain
// tail for speed reading.
//
// Two strategies are supported:
//
//   - syllable: the head is the first phonetic syllable, found with a small
//     onset-maximisation rule set over consonant clusters.
//   - bionic: the head is a fixed share of the word's letters.
//
// Splitter memoises both strategies in bounded LRU caches; it is safe for
// concurrent use.
package textproc

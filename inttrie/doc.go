// Package inttrie implements a crit-bit (PATRICIA) trie keyed by unsigned
// 64-bit integers.
//
// Every node tests one bit of the key and also stores one key. Descending
// from the root, bit numbers strictly decrease along true edges; an edge that
// leads to a node with an equal or higher bit number is a back pointer and
// ends the search at the only key reachable with the bits seen so far. A
// lookup therefore inspects at most depth+1 nodes regardless of how keys are
// distributed.
//
// The trie depth bounds the keys it accepts: a trie of depth d stores keys
// below 1<<d. The root stands for key 0.
//
// Deletion is not supported. A Trie is not safe for concurrent use.
package inttrie

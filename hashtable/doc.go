// Package hashtable implements a chained-bucket hash map keyed by strings or
// 64-bit integers.
//
// Every entry carries an untyped payload and an optional destructor that the
// table runs exactly once when the entry is deleted or the table is freed.
// Remove hands the payload back to the caller without running it.
//
// # Ordering
//
// New entries are appended at the tail of their bucket chain, so an
// Enumerator visits buckets in index order and, inside a bucket, entries in
// insertion order. Bucket placement uses Hash for string keys and the key
// modulo the bucket count for integer keys.
//
// # Concurrency
//
// A Table is not safe for concurrent use. An Enumerator is invalidated by
// any mutation of the table it walks.
package hashtable

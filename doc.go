// Package aptdb models apartment listings stored in a flat binary
// file.  It holds the record type and its fixed-width on-disk codec,
// plus the comparators and predicates the search and sort algorithms
// work through.  File access lives in bin_file, record-level operations
// in database and executor.
package aptdb

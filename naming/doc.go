// Package naming maps arbitrary node names onto the dense integer ids the
// solver works with, and back again.
//
// A Table fixes the order of all names of one network:
//
//	index 0       the source name
//	index 1..n-2  every other name, ascending (byte-wise for strings)
//	index n-1     the sink name
//
// so that the dense network built from the renamed arcs has the source at
// node 0 and the sink at the largest index, as package network requires.
// The order of the middle block only has to be deterministic; ascending
// order makes tables reproducible across runs and easy to read in tests.
//
// The sentinels need not be the names DefaultSource and DefaultSink: any two
// distinct names may be chosen, and the default sentinel strings are then
// sorted like ordinary names.
//
// Entry points:
//
//	NewTable   – build the table of a network.
//	TableOf    – adopt an externally produced name list.
//	Rename     – NewTable + RenameWith in one call.
//	RenameWith – names → ids using an existing table.
//	RenameBack – ids → names; the inverse of RenameWith.
//
// Renaming copies Capacity, Cost and Flow untouched, so
// RenameBack(RenameWith(edges, t), t) reproduces edges exactly.
package naming

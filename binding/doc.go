// Package binding implements the pointer engine used to address values
// inside a surface's data model.
//
// Pointers are slash-delimited paths ("/user/name", "/items/0/title")
// with ~1 and ~0 escapes for '/' and '~'. The empty pointer and "/"
// denote the tree root. Reads (Get, Has) never fail: any malformed or
// dangling step degrades to nil. Writes (Set) create intermediate
// containers on the way down, deciding array versus object by lookahead
// on the next token, and return a structured error for malformed
// pointers or root writes.
//
// Resolve evaluates value descriptors — the tagged property values that
// are either literals or pointer references into the data model.
//
// Known limitation: Has is defined as Get returning non-nil, so a key
// that is present with a null value is indistinguishable from a missing
// key.
package binding

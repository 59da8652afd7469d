// SPDX-License-Identifier: MIT

// Package batch reads an orbit description and a stream of seeds in the
// whitespace-delimited integer wire format, decides every seed, and writes
// one aggregate verdict.
//
// Wire format (all tokens are ASCII decimal integers):
//
//	n k
//	n  img(1) ... img(n)          cosetrep of point 1
//	...                            (n blocks in total)
//	n  img(1) ... img(n)          cosetrep of point n
//	len  i(1) ... i(len)          reference adjacency, 1-based table indices
//	k-1  p(1) ... p(k-1)          seed; repeated
//	0                             terminator
//
// The output is "1\n" when every seed holds and "0\n" at the first seed that
// does not. Nothing after the failing seed block is read, so the caller may
// keep using the stream.
//
// What:
//
//   - Reader: integer tokenizer over an io.ByteScanner; consumes a token and
//     exactly one trailing delimiter, never more.
//   - ReadHeader: n, k, the coset table and the adjacency, checked and turned
//     into an orbit.Descriptor.
//   - Driver.Run: the per-seed loop with short-circuit, logging and a Summary.
//   - Writer: the inverse encoder, used to produce fixtures.
//
// Errors:
//
//   - ErrMalformed   non-integer token or negative list length
//   - ErrTruncated   the stream ends inside a block
//   - orbit.ErrBad*  header rejected by orbit.New (and by Validate with CheckOrbit)
//   - partition.ErrBadSeed, search.ErrPrecondition for bad seed blocks
package batch

// Package bencode owns the wire value contract and parsing primitives.
//
// Ownership boundary:
// - the Object union (byte string, integer, list, dict)
// - one-value-at-a-time stream decoding
// - canonical encoding with a fixed nesting cap
// - generic projection for diagnostic display
//
// Dicts keep their pairs in wire order and may carry duplicate keys at this
// layer; semantic validation belongs to the caller.
package bencode

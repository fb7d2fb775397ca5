// Package nrepl owns the client side of the nREPL wire protocol.
//
// Ownership boundary:
// - operation request framing (one bencode dict, deterministic key order)
// - response decoding and structural validation
// - the blocking send/receive loop and end-of-sequence detection
// - the error taxonomy for connection and protocol failures
//
// Interpretation of response values belongs to the ops layer.
package nrepl

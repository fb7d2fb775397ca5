package nrepl

import (
	"fmt"
	"unicode/utf8"

	"github.com/replkit/replctl/internal/bencode"
)

// Response is one decoded server message. Keys are validated UTF-8 text;
// values stay opaque bencode objects for the ops layer to interpret.
type Response map[string]bencode.Object

// ParseResponse validates one decoded wire value as a response message.
// The top-level value must be a dict; keys must be valid UTF-8 and unique.
// The server is untrusted, so a repeated key is treated as protocol
// corruption rather than silently keeping either value.
func ParseResponse(obj bencode.Object) (Response, error) {
	if obj.Kind != bencode.KindDict {
		return nil, fmt.Errorf("%w: top-level %s", ErrUnexpectedShape, obj.Kind)
	}
	resp := make(Response, len(obj.Dict))
	for _, pair := range obj.Dict {
		if !utf8.Valid(pair.Key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, pair.Key)
		}
		key := string(pair.Key)
		if _, dup := resp[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		resp[key] = pair.Value
	}
	return resp, nil
}

// IsFinal reports whether this message ends a response sequence. The server
// marks the last message of an operation with a "status" key; its value is
// irrelevant for termination.
func (r Response) IsFinal() bool {
	_, ok := r["status"]
	return ok
}

// HasStatus reports whether the "status" value contains flag. Status is
// normally a list of byte strings but a bare string is accepted too.
func (r Response) HasStatus(flag string) bool {
	obj, ok := r["status"]
	if !ok {
		return false
	}
	switch obj.Kind {
	case bencode.KindString:
		return string(obj.Str) == flag
	case bencode.KindList:
		for _, item := range obj.List {
			if item.Kind == bencode.KindString && string(item.Str) == flag {
				return true
			}
		}
	}
	return false
}

// Text returns the named value as a string when present and string-typed.
func (r Response) Text(key string) (string, bool) {
	obj, ok := r[key]
	if !ok || obj.Kind != bencode.KindString {
		return "", false
	}
	return string(obj.Str), true
}

// Generic returns the diagnostic projection of the response.
func (r Response) Generic() map[string]any {
	m := make(map[string]any, len(r))
	for key, obj := range r {
		m[key] = bencode.Generic(obj)
	}
	return m
}

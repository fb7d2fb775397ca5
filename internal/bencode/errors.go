package bencode

import "errors"

var (
	ErrInvalidPrefix = errors.New("bencode: invalid value prefix")
	ErrBadInteger    = errors.New("bencode: malformed integer")
	ErrBadLength     = errors.New("bencode: malformed string length")
	ErrValueTooLarge = errors.New("bencode: value too large")
	ErrBadDictKey    = errors.New("bencode: dict key is not a string")
	ErrDepthExceeded = errors.New("bencode: nesting depth exceeded")
	ErrBadKind       = errors.New("bencode: unencodable object kind")
)

package bencode

import (
	"fmt"
	"strconv"
)

// MaxDepth caps container nesting during encode. Protocol requests are flat
// dicts of strings, so anything deeper indicates a caller bug.
const MaxDepth = 3

// Marshal produces the canonical encoding of obj. Dict pairs are emitted in
// the order they are stored; callers that need deterministic output sort
// their pairs before encoding.
func Marshal(obj Object) ([]byte, error) {
	return appendValue(nil, obj, 1)
}

func appendValue(buf []byte, obj Object, depth int) ([]byte, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrDepthExceeded, depth)
	}
	switch obj.Kind {
	case KindString:
		buf = strconv.AppendInt(buf, int64(len(obj.Str)), 10)
		buf = append(buf, ':')
		return append(buf, obj.Str...), nil
	case KindInteger:
		buf = append(buf, 'i')
		buf = strconv.AppendInt(buf, obj.Int, 10)
		return append(buf, 'e'), nil
	case KindList:
		buf = append(buf, 'l')
		var err error
		for _, item := range obj.List {
			if buf, err = appendValue(buf, item, depth+1); err != nil {
				return nil, err
			}
		}
		return append(buf, 'e'), nil
	case KindDict:
		buf = append(buf, 'd')
		var err error
		for _, pair := range obj.Dict {
			if buf, err = appendValue(buf, String(pair.Key), depth+1); err != nil {
				return nil, err
			}
			if buf, err = appendValue(buf, pair.Value, depth+1); err != nil {
				return nil, err
			}
		}
		return append(buf, 'e'), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrBadKind, obj.Kind)
	}
}

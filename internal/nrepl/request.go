package nrepl

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/replkit/replctl/internal/bencode"
)

// Request is one outbound operation: a name plus string-valued named
// arguments. Argument keys are unique by construction of the map.
type Request struct {
	Name string
	Args map[string]string
}

func NewRequest(name string, args map[string]string) *Request {
	return &Request{Name: name, Args: args}
}

// Bytes returns the canonical wire encoding of the request: a single bencode
// dict holding "op" plus every argument, all pairs sorted ascending by
// byte-lexicographic key. Sorting makes the byte stream deterministic
// regardless of argument insertion order, which keeps wire traces diffable.
func (r *Request) Bytes() ([]byte, error) {
	pairs := make([]bencode.Pair, 0, len(r.Args)+1)
	pairs = append(pairs, bencode.Pair{Key: []byte("op"), Value: bencode.Text(r.Name)})
	for name, value := range r.Args {
		pairs = append(pairs, bencode.Pair{Key: []byte(name), Value: bencode.Text(value)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].Key, pairs[j].Key) < 0
	})

	encoded, err := bencode.Marshal(bencode.Dict(pairs...))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return encoded, nil
}

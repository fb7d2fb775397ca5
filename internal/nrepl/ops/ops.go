// Package ops implements typed nREPL operations on top of the transport.
// Each operation builds one request, runs it through a Doer, and projects
// the returned response sequence into a typed result.
package ops

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/replkit/replctl/internal/nrepl"
)

// Doer runs one operation against a server. *nrepl.Client satisfies it;
// tests substitute scripted implementations.
type Doer interface {
	Do(req *nrepl.Request) ([]nrepl.Response, error)
}

// final returns the terminal message of a sequence. The transport guarantees
// a successful sequence is non-empty and ends with the terminal message.
func final(resps []nrepl.Response) nrepl.Response {
	return resps[len(resps)-1]
}

// decodeResult projects one response into a typed result struct.
func decodeResult(resp nrepl.Response, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("ops: build decoder: %w", err)
	}
	if err := dec.Decode(resp.Generic()); err != nil {
		return fmt.Errorf("ops: decode response: %w", err)
	}
	return nil
}

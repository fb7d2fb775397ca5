package ops

import (
	"sort"

	"github.com/replkit/replctl/internal/nrepl"
)

// DescribeResult is the server's self-description: supported operations and
// component version strings.
type DescribeResult struct {
	Ops      map[string]any `mapstructure:"ops"`
	Versions map[string]any `mapstructure:"versions"`
}

// OpNames returns the supported operation names in sorted order.
func (r *DescribeResult) OpNames() []string {
	names := make([]string, 0, len(r.Ops))
	for name := range r.Ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Describe(d Doer) (*DescribeResult, error) {
	resps, err := d.Do(nrepl.NewRequest("describe", nil))
	if err != nil {
		return nil, err
	}
	var result DescribeResult
	if err := decodeResult(final(resps), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

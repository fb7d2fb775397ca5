package ops

import (
	"strings"

	"github.com/replkit/replctl/internal/nrepl"
)

// EvalResult aggregates one evaluation's response sequence: printed values
// in arrival order, captured stdout/stderr, and the exception summary when
// evaluation failed.
type EvalResult struct {
	Values []string
	Out    string
	Err    string
	Ex     string
	Failed bool
}

// Eval evaluates code in the given session. Evaluation errors reported by
// the server are data, not transport failures: they come back in the result
// with Failed set.
func Eval(d Doer, session, code string) (*EvalResult, error) {
	args := map[string]string{"code": code}
	if session != "" {
		args["session"] = session
	}
	resps, err := d.Do(nrepl.NewRequest("eval", args))
	if err != nil {
		return nil, err
	}

	result := &EvalResult{}
	var out, errOut strings.Builder
	for _, resp := range resps {
		if v, ok := resp.Text("value"); ok {
			result.Values = append(result.Values, v)
		}
		if v, ok := resp.Text("out"); ok {
			out.WriteString(v)
		}
		if v, ok := resp.Text("err"); ok {
			errOut.WriteString(v)
		}
		if v, ok := resp.Text("ex"); ok {
			result.Ex = v
		}
	}
	result.Out = out.String()
	result.Err = errOut.String()
	result.Failed = final(resps).HasStatus("eval-error")
	return result, nil
}

package ops

import "github.com/replkit/replctl/internal/nrepl"

// InfoResult is the source location of a namespace or symbol. Namespace hits
// carry no column; symbol hits do.
type InfoResult struct {
	Name     string `mapstructure:"name"`
	Ns       string `mapstructure:"ns"`
	File     string `mapstructure:"file"`
	Resource string `mapstructure:"resource"`
	Doc      string `mapstructure:"doc"`
	Line     int64  `mapstructure:"line"`
	Column   int64  `mapstructure:"column"`
}

// IsSymbol reports whether the result describes a symbol rather than a
// whole namespace.
func (r *InfoResult) IsSymbol() bool {
	return r.Column > 0
}

// Info looks up ns/sym on the server. A miss is not an error: the server
// answers with a "no-info" status and Info returns a nil result.
func Info(d Doer, session, ns, sym string) (*InfoResult, error) {
	args := map[string]string{"ns": ns, "sym": sym}
	if session != "" {
		args["session"] = session
	}
	resps, err := d.Do(nrepl.NewRequest("info", args))
	if err != nil {
		return nil, err
	}

	last := final(resps)
	if last.HasStatus("no-info") {
		return nil, nil
	}
	var result InfoResult
	if err := decodeResult(last, &result); err != nil {
		return nil, err
	}
	if result.File == "" && result.Line == 0 {
		// Some servers omit the no-info flag and just send an empty reply.
		return nil, nil
	}
	return &result, nil
}

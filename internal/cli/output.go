package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// printParseable writes KEY VALUE lines meant for scripts and editor
// integrations to consume.
func printParseable(w io.Writer, pairs [][2]string) {
	for _, pair := range pairs {
		fmt.Fprintf(w, "%s %s\n", pair[0], pair[1])
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

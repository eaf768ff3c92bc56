package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/shelf"
)

// writeView prints v as text or JSON. Error views are printed to stderr and
// returned as errors so the process exits non-zero.
func writeView(deps *Dependencies, v *shelf.View, asJSON bool) error {
	if v.Kind == shelf.ViewError {
		fmt.Fprintf(deps.Stderr, "error: %s\n", v.Text)
		return &shelf.Error{Code: v.Code, Message: v.Text}
	}
	if asJSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	printView(deps.Stdout, v)
	return nil
}

func printView(w io.Writer, v *shelf.View) {
	fmt.Fprintln(w, v.Title)
	if v.Text != "" {
		fmt.Fprintln(w, v.Text)
	}
	for _, c := range v.Contacts {
		fmt.Fprintf(w, "  %s <%s>\n", c.Name, c.Email)
	}
	for _, b := range v.Buttons {
		target := b.Payload
		if b.URL != "" {
			target = b.URL
		}
		fmt.Fprintf(w, "  [%s] %s  %s\n", b.Kind, b.Label, target)
	}
}

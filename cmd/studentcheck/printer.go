package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// printer writes indented lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) line(indent int, text string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, strings.Repeat("  ", indent)+text)
}

func (p *printer) blank() {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w)
}

// json writes v indented, followed by a newline.
func (p *printer) json(v any) {
	if p.err != nil {
		return
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	p.err = enc.Encode(v)
}

// jsonIndented writes v indented at the given text indentation level.
func (p *printer) jsonIndented(indent int, v any) {
	if p.err != nil {
		return
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		p.err = err
		return
	}
	for _, l := range strings.Split(string(raw), "\n") {
		p.line(indent, l)
	}
}

// Package textenc resolves the text encoding used for reading logs and
// writing results.
package textenc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Lookup returns the named encoding. UTF-8 (and an empty name) returns nil,
// meaning bytes pass through untouched.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// NewReader decodes r from enc into UTF-8.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// NewWriter encodes UTF-8 written to w into enc. Runes enc cannot represent
// are replaced rather than failing the write.
func NewWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if enc == nil {
		return w
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}

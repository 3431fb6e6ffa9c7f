package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/Penguin825/chatlog-search/internal/model"
	"github.com/Penguin825/chatlog-search/internal/textenc"
)

// nonWord matches runs of anything other than letters, digits and underscore.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// ResultFilename derives the output file name from the search term,
// e.g. "foo bar!" becomes "ResultsFor_foobar.txt".
func ResultFilename(term string) string {
	return "ResultsFor_" + nonWord.ReplaceAllString(term, "") + ".txt"
}

// WriteError reports a result file that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write results to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteResults creates (or truncates) path and writes every record as
// file name followed by line, in order, with no separator added.
func WriteResults(path string, rs model.ResultSet, enc encoding.Encoding) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	w := textenc.NewWriter(bw, enc)
	for _, rec := range rs {
		if _, err := io.WriteString(w, rec.String()); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if c, ok := w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ReadResults splits result file content back into records. Each physical
// line must start with one of the given source names; the longest matching
// name wins. Records whose line had no trailing newline run into the next
// record and cannot be told apart.
func ReadResults(r io.Reader, sources []string) (model.ResultSet, error) {
	names := append([]string(nil), sources...)
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	var rs model.ResultSet
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			rec, ok := splitRecord(line, names)
			if !ok {
				return nil, fmt.Errorf("line %d has no known source prefix: %q", len(rs)+1, line)
			}
			rs = append(rs, rec)
		}
		if errors.Is(err, io.EOF) {
			return rs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func splitRecord(line string, names []string) (model.MatchRecord, bool) {
	for _, name := range names {
		if rest, ok := strings.CutPrefix(line, name); ok {
			return model.MatchRecord{Source: name, Line: rest}, true
		}
	}
	return model.MatchRecord{}, false
}

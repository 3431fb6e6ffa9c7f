package scanner

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"

	"github.com/Penguin825/chatlog-search/internal/logging"
	"github.com/Penguin825/chatlog-search/internal/matcher"
	"github.com/Penguin825/chatlog-search/internal/model"
	"github.com/Penguin825/chatlog-search/internal/textenc"
)

const (
	plainPattern = "*.log"
	gzipPattern  = "*.log.gz"
)

type fileKind int

const (
	kindOther fileKind = iota
	kindPlain
	kindGzip
)

// Options configures a single scan.
type Options struct {
	Dir      string
	Matcher  matcher.Matcher
	Encoding encoding.Encoding // nil reads bytes as UTF-8
	Observer model.Observer    // optional
}

// Scanner walks one log directory and collects matching lines.
type Scanner struct {
	opts    Options
	results model.ResultSet
	logger  *log.Logger
}

// New creates a Scanner for the given options.
func New(opts Options) *Scanner {
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	return &Scanner{
		opts:   opts,
		logger: logging.New("scan"),
	}
}

// Scan lists opts.Dir (non-recursively, in lexicographic order) and returns
// every matching line from the *.log and *.log.gz files in it.
func Scan(opts Options) (model.ResultSet, error) {
	return New(opts).Run()
}

// Run performs the scan. A truncated gzip file is reported to the observer
// and skipped; any other read failure ends the scan with an error.
func (s *Scanner) Run() (model.ResultSet, error) {
	entries, err := os.ReadDir(s.opts.Dir)
	if err != nil {
		return nil, &DirectoryError{Path: s.opts.Dir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(s.opts.Dir, name)

		kind := classify(name)
		if kind != kindOther && isDir(entry, path) {
			kind = kindOther
		}
		if kind == kindOther {
			s.opts.Observer.Observe(model.Event{Kind: model.EventSkipped, File: name})
			continue
		}

		s.opts.Observer.Observe(model.Event{Kind: model.EventSearching, File: name})
		if err := s.scanFile(path, name, kind); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("scan complete", "dir", s.opts.Dir, "matches", len(s.results))
	return s.results, nil
}

// scanFile reads one log file line by line. The handle is closed on return.
func (s *Scanner) scanFile(path, name string, kind fileKind) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	var r io.Reader = f
	if kind == kindGzip {
		zr, err := gzip.NewReader(f)
		switch {
		case errors.Is(err, io.EOF):
			return nil // empty archive
		case errors.Is(err, io.ErrUnexpectedEOF):
			s.truncated(name, err)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}

	br := bufio.NewReader(textenc.NewReader(r, s.opts.Encoding))
	for {
		chunk, err := br.ReadString('\n')
		if err == nil || (errors.Is(err, io.EOF) && chunk != "") {
			if cerr := s.checkChunk(name, chunk); cerr != nil {
				return cerr
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if kind == kindGzip && errors.Is(err, io.ErrUnexpectedEOF) {
			// The partial line in front of the cut is dropped.
			s.truncated(name, err)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
}

// checkChunk splits one '\n'-terminated chunk into lines. "\r\n" and a lone
// "\r" both end a line and are rewritten as "\n".
func (s *Scanner) checkChunk(name, chunk string) error {
	for _, line := range splitLines(chunk) {
		if err := s.check(name, line); err != nil {
			return err
		}
	}
	return nil
}

// check applies the matcher to a single line and records a hit.
func (s *Scanner) check(name, line string) error {
	ok, err := s.opts.Matcher.Match(line)
	if err != nil {
		return fmt.Errorf("failed to match line in %s: %w", name, err)
	}
	if !ok {
		return nil
	}
	rec := model.MatchRecord{Source: name, Line: line}
	s.results = append(s.results, rec)
	s.opts.Observer.Match(rec)
	return nil
}

func splitLines(chunk string) []string {
	chunk = strings.ReplaceAll(chunk, "\r\n", "\n")
	if !strings.Contains(chunk, "\r") {
		return []string{chunk}
	}
	lines := strings.SplitAfter(strings.ReplaceAll(chunk, "\r", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (s *Scanner) truncated(name string, err error) {
	s.logger.Debug("archive truncated", "file", name, "err", err)
	s.opts.Observer.Observe(model.Event{Kind: model.EventTruncated, File: name, Err: err})
}

// classify maps a directory entry name to the way it should be read.
func classify(name string) fileKind {
	if ok, _ := doublestar.Match(gzipPattern, name); ok {
		return kindGzip
	}
	if ok, _ := doublestar.Match(plainPattern, name); ok {
		return kindPlain
	}
	return kindOther
}

// isDir reports whether the entry is a directory, following symlinks.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

type nopObserver struct{}

func (nopObserver) Observe(model.Event) {}
func (nopObserver) Match(model.MatchRecord) {}

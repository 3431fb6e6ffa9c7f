package model

// MatchRecord is a single matched line tagged with the file it came from.
type MatchRecord struct {
	Source string `json:"source"` // bare file name, not the full path
	Line   string `json:"line"`   // raw line text, trailing newline kept
}

// String returns the on-disk form: file name immediately followed by the line.
func (r MatchRecord) String() string {
	return r.Source + r.Line
}

// ResultSet is the ordered list of matches from one scan.
// Order is file discovery order, then line order within each file.
type ResultSet []MatchRecord

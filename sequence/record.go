package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// headerMarker opens a record header line.
const headerMarker = '>'

// Record is one entry of a multi-record sequence file.
// Header is the header line without its marker; it is empty for a
// headerless (plain-text) body.
type Record struct {
	Header string
	Seq    string
}

// ReadRecords parses r into an ordered list of records.
//
// Rules:
//   - a line starting with '>' opens a new record;
//   - every other non-blank line is trimmed and appended to the current
//     record's symbols;
//   - symbols before the first header form a headerless record, so plain
//     sequence text is accepted too;
//   - a header with no symbols beneath it is skipped;
//   - no non-empty records at all returns ErrNoRecords.
//
// Complexity: O(size of input).
func ReadRecords(r io.Reader) ([]Record, error) {
	var (
		records []Record
		cur     *Record
		body    strings.Builder
		line    int
	)
	flush := func() {
		if cur != nil && body.Len() > 0 {
			cur.Seq = body.String()
			records = append(records, *cur)
		}
		body.Reset()
		cur = nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text[0] == headerMarker {
			flush()
			cur = &Record{Header: strings.TrimSpace(text[1:])}
			continue
		}
		if cur == nil {
			cur = &Record{}
		}
		body.WriteString(text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records at line %d: %w", line, err)
	}
	flush()
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// ReadFile opens path and parses it with ReadRecords.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return recs, nil
}

// Selection is the outcome of picking an alignment pair from a record list.
type Selection struct {
	First  *Record // always set
	Second *Record // nil when only one record was available
	Total  int     // number of records in the source
}

// Truncated reports whether records beyond the first two were ignored.
func (s Selection) Truncated() bool { return s.Total > 2 }

// Missing reports whether the second sequence must come from elsewhere.
func (s Selection) Missing() bool { return s.Second == nil }

// SelectPair takes the first one or two records for alignment.
// Returns ErrNoRecords on an empty list.
func SelectPair(records []Record) (Selection, error) {
	if len(records) == 0 {
		return Selection{}, ErrNoRecords
	}
	sel := Selection{First: &records[0], Total: len(records)}
	if len(records) > 1 {
		sel.Second = &records[1]
	}

	return sel, nil
}

package rewrite

import (
	"bytes"
	"regexp"
	"strings"
	"time"
)

// GenBank keywords whose first value token receives the stem prefix. LOCUS
// carries the record name; ACCESSION and VERSION both render the record id,
// so all three are rewritten together to keep the file self-consistent.
var genbankKeywords = []string{"LOCUS", "ACCESSION", "VERSION"}

// reLocusDate matches the DD-MMM-YYYY date field of a LOCUS line.
var reLocusDate = regexp.MustCompile(`\d{2}-[A-Za-z]{3}-\d{4}`)

// GenBankRewriter inserts the file stem in front of the LOCUS, ACCESSION and
// VERSION values of every record in a GenBank flat file, and optionally
// refreshes the LOCUS date to today.
type GenBankRewriter struct {
	// UpdateDate replaces the LOCUS date field with today's date
	// (DD-MMM-YYYY, month abbreviation uppercased, as required by the
	// format) whenever it differs.
	UpdateDate bool

	// now is overridable for tests.
	now func() time.Time
}

// NewGenBankRewriter returns a GenBankRewriter; updateDate enables the
// LOCUS date refresh.
func NewGenBankRewriter(updateDate bool) *GenBankRewriter {
	return &GenBankRewriter{UpdateDate: updateDate, now: time.Now}
}

// Rewrite processes content line by line. Only the LOCUS, ACCESSION and
// VERSION keyword lines are touched; sequence data, features and record
// terminators pass through byte-identical. Values already carrying the
// "<stem>_" prefix are left alone, so re-running over rewritten output is a
// stable no-op. A file without any record is returned unchanged; a LOCUS
// line with no name field yields a *FormatError.
func (r *GenBankRewriter) Rewrite(content []byte, stem string) ([]byte, bool, error) {
	prefix := stem + "_"

	var out bytes.Buffer
	out.Grow(len(content) + 64)
	modified := false

	for _, line := range splitLines(content) {
		keyword := lineKeyword(line)
		rewritten := false

		for _, kw := range genbankKeywords {
			if keyword != kw {
				continue
			}

			newLine, changed, ok := prefixValue(line, kw, prefix)
			if !ok {
				return nil, false, &FormatError{Reason: "malformed " + kw + " line"}
			}
			line = newLine
			if changed {
				modified = true
			}
			rewritten = true
			break
		}

		if rewritten && keyword == "LOCUS" && r.UpdateDate {
			newLine, changed := r.updateDate(line)
			line = newLine
			if changed {
				modified = true
			}
		}

		out.Write(line)
	}

	return out.Bytes(), modified, nil
}

// lineKeyword returns the flush-left keyword of a GenBank line, or "" for
// continuation lines (which start with whitespace) and blank lines.
func lineKeyword(line []byte) string {
	trimmed := bytes.TrimRight(line, "\r\n")
	if len(trimmed) == 0 || trimmed[0] == ' ' || trimmed[0] == '\t' {
		return ""
	}
	fields := bytes.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return string(fields[0])
}

// prefixValue inserts prefix in front of the first value token following
// keyword, preserving the original whitespace run between them. Returns
// ok=false when the line has no value token at all. changed=false means the
// value already carried the prefix.
func prefixValue(line []byte, keyword, prefix string) ([]byte, bool, bool) {
	rest := line[len(keyword):]
	ws := len(rest) - len(bytes.TrimLeft(rest, " \t"))
	value := rest[ws:]

	tokenEnd := bytes.IndexAny(value, " \t\r\n")
	if tokenEnd == -1 {
		tokenEnd = len(value)
	}
	if tokenEnd == 0 {
		return nil, false, false
	}

	if bytes.HasPrefix(value, []byte(prefix)) {
		return line, false, true
	}

	var out bytes.Buffer
	out.WriteString(keyword)
	out.Write(rest[:ws])
	out.WriteString(prefix)
	out.Write(value)
	return out.Bytes(), true, true
}

// updateDate replaces the LOCUS date field with today's, uppercased month
// abbreviation included. Lines without a date field, or already carrying
// today's date, are returned unchanged.
func (r *GenBankRewriter) updateDate(line []byte) ([]byte, bool) {
	today := strings.ToUpper(r.now().Format("02-Jan-2006"))

	loc := reLocusDate.FindIndex(line)
	if loc == nil {
		return line, false
	}
	if string(line[loc[0]:loc[1]]) == today {
		return line, false
	}

	var out bytes.Buffer
	out.Write(line[:loc[0]])
	out.WriteString(today)
	out.Write(line[loc[1]:])
	return out.Bytes(), true
}

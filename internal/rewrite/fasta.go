package rewrite

import (
	"bytes"
	"strings"
)

// DefaultFastaMarker is the header token that identifies generic, ambiguous
// record identifiers produced by assemblers.
const DefaultFastaMarker = "contig"

// FastaRewriter inserts the file stem into every FASTA header that begins
// with the configured marker token. A header line ">  contig_1 length=512"
// for stem "sampleA" becomes ">sampleA_contig_1 length=512": leading
// whitespace after '>' is dropped, matching the upstream convention.
type FastaRewriter struct {
	// Marker is compared case-insensitively against the start of each
	// header. Empty means DefaultFastaMarker.
	Marker string
}

// NewFastaRewriter returns a FastaRewriter for the given marker token,
// falling back to DefaultFastaMarker when marker is empty.
func NewFastaRewriter(marker string) *FastaRewriter {
	if marker == "" {
		marker = DefaultFastaMarker
	}
	return &FastaRewriter{Marker: marker}
}

// Rewrite scans content line by line. Sequence lines pass through
// byte-identical; header lines matching the marker get the stem prefix.
// Headers already carrying the "<stem>_" prefix are left untouched so that
// re-running over rewritten output is a stable no-op. FASTA content never
// fails to parse, so err is always nil.
func (r *FastaRewriter) Rewrite(content []byte, stem string) ([]byte, bool, error) {
	marker := strings.ToLower(r.Marker)
	prefix := stem + "_"

	var out bytes.Buffer
	out.Grow(len(content) + 64)
	modified := false

	for _, line := range splitLines(content) {
		if len(line) == 0 || line[0] != '>' {
			out.Write(line)
			continue
		}

		header := bytes.TrimLeft(line[1:], " \t")
		if bytes.HasPrefix(header, []byte(prefix)) {
			out.Write(line)
			continue
		}
		if !strings.HasPrefix(strings.ToLower(string(header)), marker) {
			out.Write(line)
			continue
		}

		out.WriteByte('>')
		out.WriteString(prefix)
		out.Write(header)
		modified = true
	}

	return out.Bytes(), modified, nil
}

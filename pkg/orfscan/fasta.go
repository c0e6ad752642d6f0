package orfscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader is returned when sequence data precedes the first header.
var ErrNoHeader = errors.New("sequence data before first '>' header")

// maxLineSize bounds a single FASTA line.
const maxLineSize = 64 << 20

// ReadFASTA reads records from a FASTA file.
func ReadFASTA(filename string) ([]Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses FASTA format from a reader, keeping record order.
// Residues are upper-cased but not validated, so the same parser serves
// nucleotide queries and protein targets. Headers without residues are
// dropped.
func ParseFASTA(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var current *Record
	var residues strings.Builder

	flush := func() {
		if current != nil && residues.Len() > 0 {
			current.Seq = residues.String()
			records = append(records, *current)
		}
		current = nil
		residues.Reset()
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == ';' {
			continue
		}

		if line[0] == '>' {
			flush()

			// Parse header
			id, desc, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
			current = &Record{ID: id, Description: strings.TrimSpace(desc)}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrNoHeader)
		}
		residues.WriteString(strings.ToUpper(strings.Join(strings.Fields(line), "")))
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return records, nil
}

// WriteFASTA writes records to w, wrapping residues at width columns
// (60 when width <= 0).
func WriteFASTA(w io.Writer, records []Record, width int) error {
	if width <= 0 {
		width = 60
	}

	bw := bufio.NewWriter(w)
	for _, rec := range records {
		header := rec.ID
		if rec.Description != "" {
			header += " " + rec.Description
		}
		if _, err := fmt.Fprintf(bw, ">%s\n", header); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		for i := 0; i < len(rec.Seq); i += width {
			end := min(i+width, len(rec.Seq))
			if _, err := fmt.Fprintf(bw, "%s\n", rec.Seq[i:end]); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
	}
	return bw.Flush()
}

package importer

import (
	"encoding/csv"
	"errors"
	"io"

	"shop-catalog-api/internal/models"
)

// Parser lazily turns a CSV byte stream into field maps, one per data row.
// The header row supplies the field names. The sequence is finite and
// non-restartable; nothing is buffered beyond the current row.
type Parser struct {
	reader  *csv.Reader
	headers []string
	line    int
}

// NewParser wraps the given stream and consumes its header row.
// A missing or malformed header is a ParseError.
func NewParser(r io.Reader) (*Parser, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Line: 1, Err: errors.New("empty file, no header row")}
		}
		return nil, &ParseError{Line: 1, Err: err}
	}

	return &Parser{
		reader:  cr,
		headers: headers,
		line:    1,
	}, nil
}

// Next returns the next data row. It returns io.EOF at a clean end of
// stream and a *ParseError on a malformed row; a ParseError is terminal
// and the parser must not be used afterwards.
func (p *Parser) Next() (*models.ImportRow, error) {
	record, err := p.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, &ParseError{Line: p.line + 1, Err: err}
	}
	p.line++

	fields := make(map[string]string, len(p.headers))
	for i, header := range p.headers {
		if i < len(record) {
			fields[header] = record[i]
		}
	}

	return &models.ImportRow{Line: p.line, Fields: fields}, nil
}

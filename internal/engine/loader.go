package engine

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"dataproc/internal/models"
)

// Opener acquires a readable source. AnalyzeSource closes whatever it returns.
type Opener func() (io.ReadCloser, error)

// AnalyzeFile analyzes the manifest at path.
func AnalyzeFile(path string) (*models.Statistics, error) {
	stats, err := AnalyzeSource(func() (io.ReadCloser, error) { return os.Open(path) })
	var srcErr *SourceError
	if errors.As(err, &srcErr) && srcErr.Path == "" {
		srcErr.Path = path
	}
	return stats, err
}

// AnalyzeSource opens a source, analyzes it and closes it on every exit path.
func AnalyzeSource(open Opener) (*models.Statistics, error) {
	rc, err := open()
	if err != nil {
		return nil, &SourceError{Err: err}
	}
	defer rc.Close()

	return Analyze(rc)
}

// Analyze scans a passenger manifest in a single pass. The first header or
// row failure aborts the scan; no partial statistics are returned.
func Analyze(r io.Reader) (*models.Statistics, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.ReuseRecord = true
	// A stray quote inside an unquoted cell is kept as a literal character.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, headerError(err)
	}
	binding, err := PassengerSchema.Bind(header)
	if err != nil {
		return nil, err
	}

	var stats models.Statistics
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rowError(row, err)
		}

		p, err := binding.Decode(fields)
		if err != nil {
			return nil, rowError(row, err)
		}
		tally(&stats, &p)
	}

	stats.SurvivalRate = SurvivalRate(stats.SurvivedPassengers, stats.TotalPassengers)
	return &stats, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark. Read errors hit while
// peeking are returned by the next Read.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func tally(stats *models.Statistics, p *models.Passenger) {
	stats.TotalPassengers++
	if p.Survived == 1 {
		stats.SurvivedPassengers++
	}
	switch p.Sex {
	case "male":
		stats.MalePassengers++
	case "female":
		stats.FemalePassengers++
	}
}

// SurvivalRate returns survived/total as a percentage, or 0 when total is 0.
func SurvivalRate(survived, total uint32) float64 {
	if total == 0 {
		return 0
	}
	return float64(survived) / float64(total) * 100
}

func headerError(err error) error {
	if errors.Is(err, io.EOF) {
		return &SchemaError{Err: ErrMissingHeader}
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &SchemaError{Err: parseErr}
	}
	return &SourceError{Err: err}
}

func rowError(row int, err error) error {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return &RowParseError{Row: row, Column: fieldErr.Column, Err: fieldErr}
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &RowParseError{Row: row, Err: parseErr.Err}
	}
	return &SourceError{Err: err}
}

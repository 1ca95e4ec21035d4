package recording

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads the lfpColumn and rateColumn columns from a CSV stream with a
// header row. Other columns are ignored. Blank cells are malformed.
func ReadCSV(r io.Reader, lfpColumn, rateColumn string) (lfp, rate []float64, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	li, ri := -1, -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch {
		case li < 0 && strings.EqualFold(name, lfpColumn):
			li = i
		case ri < 0 && strings.EqualFold(name, rateColumn):
			ri = i
		}
	}
	if li < 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingColumn, lfpColumn)
	}
	if ri < 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingColumn, rateColumn)
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		l, err := parseCell(rec, li, row)
		if err != nil {
			return nil, nil, err
		}
		v, err := parseCell(rec, ri, row)
		if err != nil {
			return nil, nil, err
		}
		lfp = append(lfp, l)
		rate = append(rate, v)
	}

	return lfp, rate, nil
}

func parseCell(rec []string, col, row int) (float64, error) {
	if col >= len(rec) {
		return 0, fmt.Errorf("%w: row %d has %d fields", ErrMalformed, row, len(rec))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %d: %q", ErrMalformed, row, col+1, rec[col])
	}
	return v, nil
}

// WriteCSV writes lfp and rate as a two-column CSV with the default header.
func WriteCSV(w io.Writer, lfp, rate []float64) error {
	if len(lfp) != len(rate) {
		return fmt.Errorf("%w: lfp has %d samples, firing rate %d", ErrMalformed, len(lfp), len(rate))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{DefaultLFPColumn, DefaultRateColumn}); err != nil {
		return err
	}
	row := make([]string, 2)
	for i := range lfp {
		row[0] = strconv.FormatFloat(lfp[i], 'g', -1, 64)
		row[1] = strconv.FormatFloat(rate[i], 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package recording

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("recording: missing column")
	// ErrMalformed is returned for unparsable cells, ragged rows or traces
	// of unequal length.
	ErrMalformed = errors.New("recording: malformed data")
	// ErrUnsupportedFormat is returned by Load for unknown extensions.
	ErrUnsupportedFormat = errors.New("recording: unsupported format")
)

// Default column names and EDF signal indices.
const (
	DefaultLFPColumn  = "LFP"
	DefaultRateColumn = "firing rate"
	DefaultLFPSignal  = 0
	DefaultRateSignal = 1
)

// DefaultExtensions lists the file extensions Discover accepts by default.
var DefaultExtensions = []string{".csv", ".edf"}

// Options selects the traces inside a file.
type Options struct {
	SampleRate float64

	LFPColumn  string
	RateColumn string

	LFPSignal  int
	RateSignal int
}

// DefaultOptions returns the standard column names and signal indices at
// sampleRate.
func DefaultOptions(sampleRate float64) Options {
	return Options{
		SampleRate: sampleRate,
		LFPColumn:  DefaultLFPColumn,
		RateColumn: DefaultRateColumn,
		LFPSignal:  DefaultLFPSignal,
		RateSignal: DefaultRateSignal,
	}
}

// Recording is one loaded file.
type Recording struct {
	// Name is the file name without directories.
	Name string
	// Path is the path the recording was loaded from.
	Path       string
	SampleRate float64
	LFP        []float64
	FiringRate []float64
}

// Len returns the number of samples.
func (r *Recording) Len() int { return len(r.LFP) }

// Seconds returns the recording length in seconds.
func (r *Recording) Seconds() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(len(r.LFP)) / r.SampleRate
}

// Validate checks trace lengths and the sample rate.
func (r *Recording) Validate() error {
	if !(r.SampleRate > 0) {
		return fmt.Errorf("%w: sample rate %g", ErrMalformed, r.SampleRate)
	}
	if len(r.LFP) != len(r.FiringRate) {
		return fmt.Errorf("%w: lfp has %d samples, firing rate %d", ErrMalformed, len(r.LFP), len(r.FiringRate))
	}
	return nil
}

// Discover walks root and returns the paths of files whose extension is in
// exts (case-insensitive), sorted. A nil exts uses DefaultExtensions. A
// root that names a single file is returned as-is when it matches.
func Discover(root string, exts []string) ([]string, error) {
	if exts == nil {
		exts = DefaultExtensions
	}
	want := make([]string, len(exts))
	for i, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[i] = e
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(want, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording: discover %s: %w", root, err)
	}

	slices.Sort(paths)
	return paths, nil
}

// Load reads the recording at path, choosing the reader by extension.
func Load(path string, opts Options) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}
	defer f.Close()

	rec := &Recording{
		Name:       filepath.Base(path),
		Path:       path,
		SampleRate: opts.SampleRate,
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rec.LFP, rec.FiringRate, err = ReadCSV(f, opts.LFPColumn, opts.RateColumn)
	case ".edf":
		rec.LFP, rec.FiringRate, err = ReadEDF(f, opts.LFPSignal, opts.RateSignal)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Name, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Name, err)
	}
	return rec, nil
}

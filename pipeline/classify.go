package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnclassified is returned when no rule matches a recording path.
var ErrUnclassified = errors.New("pipeline: unclassified recording")

// Condition is the stimulation protocol of a recording.
type Condition int

const (
	Unknown Condition = iota
	NoStim
	OpenStim
	ClosedStim
)

func (c Condition) String() string {
	switch c {
	case NoStim:
		return "NoStim"
	case OpenStim:
		return "OpenStim"
	case ClosedStim:
		return "ClosedStim"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the condition name.
func (c Condition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseCondition parses a condition name, ignoring case.
func ParseCondition(s string) (Condition, error) {
	for _, c := range []Condition{NoStim, OpenStim, ClosedStim} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("pipeline: unknown condition %q", s)
}

// Phase is the stimulus phase in degrees.
type Phase int

const (
	Phase0   Phase = 0
	Phase90  Phase = 90
	Phase180 Phase = 180
	Phase270 Phase = 270
)

func (p Phase) String() string { return fmt.Sprintf("%d", int(p)) }

// PhaseOf reads the phase from the suffix of the file stem: "_0", "_90" or
// "_180". Anything else is 270.
func PhaseOf(path string) Phase {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch {
	case strings.HasSuffix(stem, "_180"):
		return Phase180
	case strings.HasSuffix(stem, "_90"):
		return Phase90
	case strings.HasSuffix(stem, "_0"):
		return Phase0
	default:
		return Phase270
	}
}

// Rule assigns Condition to path components containing any of Match.
type Rule struct {
	Condition Condition `mapstructure:"condition" yaml:"condition"`
	Match     []string  `mapstructure:"match" yaml:"match"`
}

// DefaultRules checks closed-loop before open-loop so "closed_open" style
// names resolve to ClosedStim.
func DefaultRules() []Rule {
	return []Rule{
		{Condition: ClosedStim, Match: []string{"closed"}},
		{Condition: OpenStim, Match: []string{"open"}},
		{Condition: NoStim, Match: []string{"nostim", "no_stim", "no-stim", "baseline", "sham"}},
	}
}

// Classify labels path by its components, nearest first: the file name,
// then its directory, then the one above. The first component matched by
// any rule decides, and rules are tried in order for each component. The
// phase comes from the file stem.
func Classify(path string, rules []Rule) (Condition, Phase, error) {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.ToLower(parts[i])
		if part == "" || part == "." || part == ".." {
			continue
		}
		for _, r := range rules {
			for _, m := range r.Match {
				if m != "" && strings.Contains(part, strings.ToLower(m)) {
					return r.Condition, PhaseOf(path), nil
				}
			}
		}
	}
	return Unknown, PhaseOf(path), fmt.Errorf("%w: %s", ErrUnclassified, path)
}

// RelativeTo returns path relative to the closest root that contains it,
// so that directories above a root never take part in classification.
// A path that is itself a root reduces to its file name. Paths outside
// every root are returned unchanged.
func RelativeTo(path string, roots []string) string {
	best := path
	found := false
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if rel == "." {
			rel = filepath.Base(path)
		}
		if !found || len(rel) < len(best) {
			best, found = rel, true
		}
	}
	return best
}

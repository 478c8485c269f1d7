package runconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// Duplicate-precinct policies. A second header for the same number with
// no intervening contest either starts a fresh segment or folds into the
// open one.
const (
	DuplicateNewSegment = "new-segment"
	DuplicateMerge      = "merge"
)

// Overrides is the operator-supplied run configuration. Every field is
// optional; the zero value disables nothing and forces nothing.
type Overrides struct {
	// FixedDate short-circuits event date extraction for every document.
	FixedDate string `json:"fixed_date,omitempty"`
	// FixedTotalBallots short-circuits total-ballots extraction.
	FixedTotalBallots string `json:"fixed_total_ballots,omitempty"`
	// ForcedParty maps a document base name to the party assigned to
	// every contest extracted from it.
	ForcedParty map[string]string `json:"forced_party,omitempty"`
	// PatternParsing disables the extraction pass entirely when false.
	// There is no non-pattern path, so false yields an empty result set.
	PatternParsing *bool `json:"pattern_parsing,omitempty"`
	// DuplicatePrecinct selects the duplicate-header policy.
	DuplicatePrecinct string `json:"duplicate_precinct,omitempty"`
}

// ParsingEnabled reports whether pattern extraction should run.
func (o *Overrides) ParsingEnabled() bool {
	return o == nil || o.PatternParsing == nil || *o.PatternParsing
}

// PartyFor returns the forced party for a document base name, or "".
func (o *Overrides) PartyFor(sourceFile string) string {
	if o == nil {
		return ""
	}
	return o.ForcedParty[sourceFile]
}

// DuplicatePolicy returns the configured policy, defaulting to new-segment.
func (o *Overrides) DuplicatePolicy() string {
	if o == nil || o.DuplicatePrecinct == "" {
		return DuplicateNewSegment
	}
	return o.DuplicatePrecinct
}

// Load reads and validates an overrides file. A missing path is not an
// error; it returns empty overrides.
func Load(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	if err := ValidateOverridesJSON(data); err != nil {
		return nil, err
	}
	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("unmarshal overrides: %w", err)
	}
	return &o, nil
}

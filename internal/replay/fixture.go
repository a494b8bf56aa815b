package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a traversal fixture:
// a batch of origin records plus the chains expected from walking
// them.
type Fixture struct {
	Description  string               `json:"description"`
	Records      []FixtureRecord      `json:"records"`
	Expectations []FixtureExpectation `json:"expectations"`
}

// FixtureRecord is one (id, origin record) pair to load into the log.
type FixtureRecord struct {
	ID     string        `json:"id"`
	Record origin.Record `json:"record"`
}

// FixtureExpectation is one traversal request with its expected chain.
type FixtureExpectation struct {
	StartID   string        `json:"start_id"`
	CharIndex int           `json:"char_index"`
	Terminal  string        `json:"terminal"` // "complete" | "wait_timeout" | "missing_record"
	Chain     []FixtureStep `json:"chain"`
}

// FixtureStep is one expected element of a chain. An empty origin id
// matches a synthetic untracked-literal terminal.
type FixtureStep struct {
	OriginID  string `json:"origin_id"`
	CharIndex int    `json:"char_index"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and validates a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Records) == 0 {
		return nil, fmt.Errorf("fixture %s has no records", path)
	}
	seen := make(map[string]bool, len(f.Records))
	for i, r := range f.Records {
		if r.ID == "" {
			return nil, fmt.Errorf("fixture record %d has no id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("fixture record id %s repeated", r.ID)
		}
		seen[r.ID] = true
	}
	return &f, nil
}

// #endregion fixture-loader

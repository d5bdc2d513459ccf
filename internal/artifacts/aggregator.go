package artifacts

import (
	"fmt"
	"os"
	"strings"
)

// aggregatorHeader marks the file as generated. The whole file is deleted and
// regenerated on every sync; it is never patched in place.
const aggregatorHeader = `//! Module aggregator. Generated by tauriforge. Do not edit.
//!
//! Declares and re-exports every enabled module behind its feature flag.

`

// AggregatorContent renders the aggregator source for an enabled set.
// Returns nil for an empty set: the file is removed, not emptied.
func AggregatorContent(enabled []string) []byte {
	ids := sortedIDs(enabled)
	if len(ids) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(aggregatorHeader)
	for _, id := range ids {
		feature := FeatureName(id)
		fmt.Fprintf(&b, "#[cfg(feature = %q)]\n", feature)
		fmt.Fprintf(&b, "pub mod %s;\n", id)
		fmt.Fprintf(&b, "#[cfg(feature = %q)]\n", feature)
		fmt.Fprintf(&b, "pub use %s::*;\n", id)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// SyncAggregator regenerates the aggregator file at path from the enabled
// set, or deletes it outright when the set is empty.
func SyncAggregator(path string, enabled []string) error {
	content := AggregatorContent(enabled)

	if content == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing aggregator %s: %w", path, err)
		}
		return nil
	}

	if err := writeFileAtomic(path, content, 0o644); err != nil {
		return fmt.Errorf("writing aggregator %s: %w", path, err)
	}
	return nil
}

// CheckAggregator reports whether the aggregator on disk already matches the
// enabled set, without writing anything. A missing file and an empty set are
// in sync with each other.
func CheckAggregator(path string, enabled []string) (bool, error) {
	expected := AggregatorContent(enabled)

	current, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return expected == nil, nil
		}
		return false, fmt.Errorf("reading aggregator %s: %w", path, err)
	}

	return expected != nil && string(current) == string(expected), nil
}

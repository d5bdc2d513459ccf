// Package artifacts regenerates the derived build artifacts of a generated
// project from an enabled-module set: the feature-flag list inside the build
// descriptor, the module aggregator source file, and the per-module source
// trees.
//
// The feature list and the aggregator are pure functions of the enabled set;
// they are always recomputed wholesale, never merged with previous contents,
// so repeated syncs with the same set produce byte-identical files.
package artifacts

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FeaturePrefix prefixes every module-derived Cargo feature.
const FeaturePrefix = "module-"

// FeatureName returns the Cargo feature flag for a module id.
func FeatureName(id string) string {
	return FeaturePrefix + id
}

// featuresTableRe bounds the [features] table: from its header to the next
// table header or end of file.
var featuresTableRe = regexp.MustCompile(`(?ms)^\[features\]\s*$.*?(?:^\[|\z)`)

// defaultArrayRe locates the default array inside the [features] table. The
// bounded region is the bracketed array only; everything around it is
// preserved byte for byte.
var defaultArrayRe = regexp.MustCompile(`(?m)^(default\s*=\s*)\[[^\]]*\]`)

// descriptorFeatures mirrors the slice of the build descriptor the
// synchronizer is responsible for. Used to re-validate rewrites.
type descriptorFeatures struct {
	Features struct {
		Default []string `toml:"default"`
	} `toml:"features"`
}

// sortedIDs returns a sorted copy of ids. Deterministic ordering is a
// required property of artifact generation; map-iteration order never leaks
// into output.
func sortedIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}

// FeatureList returns the sorted feature flags for an enabled set.
func FeatureList(enabled []string) []string {
	features := make([]string, 0, len(enabled))
	for _, id := range sortedIDs(enabled) {
		features = append(features, FeatureName(id))
	}
	return features
}

// RenderFeatures replaces the default-features array in descriptor content
// with the flags derived from the enabled set. Fails when the expected
// region is absent rather than appending anywhere else.
func RenderFeatures(current []byte, enabled []string) ([]byte, error) {
	features := FeatureList(enabled)

	items := make([]string, len(features))
	for i, f := range features {
		items[i] = fmt.Sprintf("%q", f)
	}
	replacement := "[" + strings.Join(items, ", ") + "]"

	table := featuresTableRe.FindIndex(current)
	if table == nil {
		return nil, fmt.Errorf("build descriptor has no [features] table")
	}

	loc := defaultArrayRe.FindSubmatchIndex(current[table[0]:table[1]])
	if loc == nil {
		return nil, fmt.Errorf("build descriptor has no default array in its [features] table")
	}

	var b strings.Builder
	b.Write(current[:table[0]+loc[3]]) // up to and including "default = "
	b.WriteString(replacement)
	b.Write(current[table[0]+loc[1]:])
	return []byte(b.String()), nil
}

// SyncFeatures rewrites the default-features array of the build descriptor at
// path from the enabled set, then re-parses the result with a TOML decoder to
// confirm the file is still well formed and carries exactly the expected
// flags. The write is temp-file + atomic rename.
func SyncFeatures(path string, enabled []string) error {
	current, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading build descriptor %s: %w", path, err)
	}

	updated, err := RenderFeatures(current, enabled)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := verifyFeatures(updated, enabled); err != nil {
		return fmt.Errorf("rewritten build descriptor %s failed validation: %w", path, err)
	}

	if err := writeFileAtomic(path, updated, 0o644); err != nil {
		return fmt.Errorf("writing build descriptor %s: %w", path, err)
	}
	return nil
}

// CheckFeatures reports whether the descriptor's feature list already matches
// the enabled set, without writing anything.
func CheckFeatures(path string, enabled []string) (bool, error) {
	current, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading build descriptor %s: %w", path, err)
	}

	updated, err := RenderFeatures(current, enabled)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	return string(current) == string(updated), nil
}

// verifyFeatures decodes the rewritten descriptor and compares the default
// array against the expected flags.
func verifyFeatures(content []byte, enabled []string) error {
	var doc descriptorFeatures
	if err := toml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("parsing rewritten TOML: %w", err)
	}

	expected := FeatureList(enabled)
	actual := doc.Features.Default
	if len(actual) != len(expected) {
		return fmt.Errorf("default features are %v, expected %v", actual, expected)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			return fmt.Errorf("default features are %v, expected %v", actual, expected)
		}
	}
	return nil
}

package modules

// Status classifies a module for display and decision purposes.
// output.StatusStyle mirrors these values; keep the two sets in lockstep.
type Status string

const (
	// StatusEnabled: config enabled AND filesystem-installed.
	StatusEnabled Status = "enabled"

	// StatusInstalled: filesystem-installed but not enabled in config.
	// A stale/dormant state reachable through manual edits.
	StatusInstalled Status = "installed"

	// StatusAvailable: neither installed nor enabled.
	StatusAvailable Status = "available"
)

// Classify derives the display status from the two independent predicates.
// The filesystem decides "installed"; the config decides "enabled". An
// enabled-but-not-installed entry (hand-deleted source tree) classifies as
// available: without the source tree there is nothing to enable.
func Classify(installed, enabled bool) Status {
	switch {
	case installed && enabled:
		return StatusEnabled
	case installed:
		return StatusInstalled
	default:
		return StatusAvailable
	}
}

// ModuleStatus is one row of the list output.
type ModuleStatus struct {
	ID           string   `json:"id"`
	Status       Status   `json:"status"`
	Version      string   `json:"version,omitempty"`
	Category     string   `json:"category,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`

	// HasManifest is false for ids that appear only in the config file or
	// only on disk (manual drift); such modules still list.
	HasManifest bool `json:"hasManifest"`
}

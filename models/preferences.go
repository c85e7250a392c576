package models

// Preferences is per-user presentation state. It carries no business
// invariants and is replaced wholesale on every toggle.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

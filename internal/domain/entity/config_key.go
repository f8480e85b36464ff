package entity

// ConfigKeyInfo documents one configuration key for `scanclip config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "camera.source".
	Key     string `json:"key"`
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of enum keys.
	Values []string `json:"values,omitempty"`
	// Range describes numeric bounds, e.g. "0-10000".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}

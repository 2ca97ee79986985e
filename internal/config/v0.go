package config

const configVersionV0 = "0"

// configV0 is the original configuration layout, before encoding and the
// major-version-zero regime became configurable.
type configV0 struct {
	Version  string `json:"version"` // required by vconfig-go
	Language string `json:"language,omitempty"`
}

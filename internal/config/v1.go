package config

import "fmt"

const configVersionV1 = "1"

type configV1 struct {
	Version string `json:"version"` // required by vconfig-go
	// Language selects the locale for interactive prompt text.
	Language string `json:"language,omitempty"`
	// Encoding names the text encoding of the info help document.
	Encoding string `json:"encoding,omitempty"`
	// InfoPath overrides the embedded info help document.
	InfoPath string `json:"info_path,omitempty"`
	// MajorVersionZero declares the project as 0.x; breaking changes then
	// bump MINOR instead of MAJOR.
	MajorVersionZero bool `json:"major_version_zero,omitempty"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version:  configVersionV1,
		Language: "en",
		Encoding: "utf-8",
	}
}

func (c *configV1) validateV1() error {
	if c.Language == "" {
		return fmt.Errorf("language is required")
	}
	return nil
}

// migrateV0ToV1 upgrades a v0 configuration, keeping the chosen language and
// filling the new fields with defaults.
func migrateV0ToV1(old *configV0) *configV1 {
	c := newConfigV1()
	if old.Language != "" {
		c.Language = old.Language
	}
	return c
}

package config

import (
	"testing"
)

func TestNewDefault(t *testing.T) {
	c := NewDefault()

	if c.Version != configVersionV1 {
		t.Errorf("Version = %q; want %q", c.Version, configVersionV1)
	}
	if c.Language != "en" {
		t.Errorf("Language = %q; want %q", c.Language, "en")
	}
	if c.Encoding != "utf-8" {
		t.Errorf("Encoding = %q; want %q", c.Encoding, "utf-8")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	c := NewDefault()
	c.Language = ""

	if err := c.Validate(); err == nil {
		t.Error("Validate() should fail without a language")
	}
}

func TestMigrateV0ToV1(t *testing.T) {
	old := &configV0{Version: configVersionV0, Language: "de"}

	c := migrateV0ToV1(old)

	if c.Version != configVersionV1 {
		t.Errorf("Version = %q; want %q", c.Version, configVersionV1)
	}
	if c.Language != "de" {
		t.Errorf("Language = %q; want %q", c.Language, "de")
	}
	if c.Encoding != "utf-8" {
		t.Errorf("Encoding = %q; want %q", c.Encoding, "utf-8")
	}
}

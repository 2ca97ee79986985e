package versioninfo

import (
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		info     Info
		expected string
	}{
		{Info{}, "dev"},
		{Info{Version: "1.2.3"}, "v1.2.3"},
		{Info{Version: "v1.2.3"}, "v1.2.3"},
		{Info{Version: "1.2.3", Commit: "abc123"}, "v1.2.3, commit abc123"},
		{Info{Version: "not-semver"}, "not-semver"},
	}

	for _, test := range tests {
		if got := test.info.String(); got != test.expected {
			t.Errorf("Info%+v.String() = %q; want %q", test.info, got, test.expected)
		}
	}
}

func TestIsMajorVersionZero(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
	}{
		{"0.1.0", true},
		{"v0.9.9", true},
		{"1.0.0", false},
		{"v2.3.4", false},
		{"not-semver", false},
		{"", false},
	}

	for _, test := range tests {
		if got := IsMajorVersionZero(test.version); got != test.expected {
			t.Errorf("IsMajorVersionZero(%q) = %v; want %v", test.version, got, test.expected)
		}
	}
}

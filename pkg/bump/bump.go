// Package bump maps conventional commits to semantic version increments.
package bump

import (
	"fmt"

	"github.com/coreos/go-semver/semver"

	"github.com/zbiljic/kommit/pkg/commit"
)

// Increment is the magnitude of the semantic version change implied by a
// commit.
type Increment int

const (
	NoneIncrement Increment = iota
	PatchIncrement
	MinorIncrement
	MajorIncrement
)

var incrementIds = map[Increment][]string{
	NoneIncrement:  {"none"},
	PatchIncrement: {"patch"},
	MinorIncrement: {"minor"},
	MajorIncrement: {"major"},
}

// ToString converts the Increment value to a string representation.
func (i Increment) ToString() string {
	if val, ok := incrementIds[i]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownIncrement(%d)", i)
}

// Classify returns the version increment for a single commit header.
//
// A breaking change bumps MAJOR, except in the major-version-zero regime
// where 0.x is unstable by convention and a breaking change only bumps
// MINOR. Non-breaking commits are looked up by type; unrecognized types
// carry no increment.
func Classify(changeType string, breaking, majorZero bool) Increment {
	if breaking || changeType == commit.BreakingChangeToken.ToString() {
		if majorZero {
			return MinorIncrement
		}
		return MajorIncrement
	}

	switch changeType {
	case commit.FeatToken.ToString():
		return MinorIncrement
	case commit.FixToken.ToString(),
		commit.PerfToken.ToString(),
		commit.RefactorToken.ToString():
		return PatchIncrement
	default:
		return NoneIncrement
	}
}

// ClassifyMessage extracts and classifies a single raw commit message.
// Non-conventional messages classify as NoneIncrement.
func ClassifyMessage(message string, majorZero bool) Increment {
	ex, ok := commit.Extract(message)
	if !ok {
		return NoneIncrement
	}
	return Classify(ex.ChangeType, ex.Breaking, majorZero)
}

// ClassifyEach classifies a batch of raw commit messages, preserving input
// order. Malformed or non-conventional entries are silently skipped; a merge
// commit in the log must never abort a run.
func ClassifyEach(messages []string, majorZero bool) []Increment {
	var result []Increment
	for _, message := range messages {
		if _, ok := commit.Extract(message); !ok {
			continue
		}
		result = append(result, ClassifyMessage(message, majorZero))
	}
	return result
}

// Highest returns the largest increment found in a batch of raw commit
// messages, or NoneIncrement for an empty or non-conventional batch.
func Highest(messages []string, majorZero bool) Increment {
	highest := NoneIncrement
	for _, inc := range ClassifyEach(messages, majorZero) {
		if inc > highest {
			highest = inc
		}
	}
	return highest
}

// Apply returns a copy of v bumped by the given increment.
func Apply(v semver.Version, inc Increment) semver.Version {
	switch inc {
	case MajorIncrement:
		v.BumpMajor()
	case MinorIncrement:
		v.BumpMinor()
	case PatchIncrement:
		v.BumpPatch()
	}
	return v
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/zbiljic/kommit/internal/buildinfo"
)

const latestReleaseURL = "https://api.github.com/repos/zbiljic/kommit/releases/latest"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	Args:  cobra.NoArgs,
	RunE:  runUpdateE,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdateE(cmd *cobra.Command, args []string) error {
	var responseJSON string

	err := requests.
		URL(latestReleaseURL).
		Header("Accept", "application/vnd.github+json").
		ToString(&responseJSON).
		Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to query latest release: %w", err)
	}

	tagName := gjson.Get(responseJSON, "tag_name").String()
	if tagName == "" {
		return errors.New("no release information available")
	}

	latest, err := semver.NewVersion(strings.TrimPrefix(tagName, "v"))
	if err != nil {
		return fmt.Errorf("invalid release tag %q: %w", tagName, err)
	}

	current, err := semver.NewVersion(strings.TrimPrefix(buildinfo.Version, "v"))
	if err != nil {
		// dev builds carry no comparable version
		fmt.Printf("latest release: v%s (current build: %s)\n", latest.String(), buildinfo.Version)
		return nil
	}

	if current.LessThan(*latest) {
		fmt.Printf("newer release available: v%s (current: v%s)\n", latest.String(), current.String())
	} else {
		fmt.Printf("up to date: v%s\n", current.String())
	}

	return nil
}

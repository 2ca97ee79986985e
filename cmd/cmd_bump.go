package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"

	"github.com/zbiljic/kommit/internal/config"
	"github.com/zbiljic/kommit/pkg/bump"
	"github.com/zbiljic/kommit/pkg/changelog"
	"github.com/zbiljic/kommit/pkg/versioninfo"
)

var bumpCmd = &cobra.Command{
	Use:         "bump [revision-range]",
	Short:       "Derive the next semantic version from commit history",
	Long:        `Classifies the commits in the given revision range (or the full history of the current branch) and prints the implied version increment and the next version.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runBumpE,
}

type bumpOptions struct {
	CurrentVersion   string
	MajorVersionZero bool
	Changelog        bool
}

var bumpFlags = bumpOptions{}

func bumpAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&bumpFlags.CurrentVersion, "current", "c", "0.0.0", "Current project version")
	cmd.Flags().BoolVar(&bumpFlags.MajorVersionZero, "major-version-zero", false, "Treat the project as 0.x: breaking changes bump MINOR instead of MAJOR")
	cmd.Flags().BoolVar(&bumpFlags.Changelog, "changelog", false, "Also print the changelog sections for the classified commits")
}

func init() {
	bumpAddFlags(bumpCmd)

	rootCmd.AddCommand(bumpCmd)
}

func runBumpE(cmd *cobra.Command, args []string) error {
	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	var revisionRange string
	if len(args) > 0 {
		revisionRange = args[0]
	}

	messages, err := gitLogSubjects(workDir, revisionRange)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	current, err := semver.NewVersion(strings.TrimPrefix(bumpFlags.CurrentVersion, "v"))
	if err != nil {
		return fmt.Errorf("invalid current version %q: %w", bumpFlags.CurrentVersion, err)
	}

	majorZero := bumpFlags.MajorVersionZero ||
		cfg.MajorVersionZero ||
		versioninfo.IsMajorVersionZero(bumpFlags.CurrentVersion)

	increment := bump.Highest(messages, majorZero)
	next := bump.Apply(*current, increment)

	fmt.Printf("increment: %s\n", strings.ToUpper(increment.ToString()))
	fmt.Printf("version: %s -> %s\n", current.String(), next.String())

	if bumpFlags.Changelog {
		c := changelog.Build(filepath.Base(workDir), next.String(), messages)
		if c.IsEmpty() {
			fmt.Println("no conventional commits found")
			return nil
		}
		fmt.Println()
		return changelog.FormatTerminal(c, os.Stdout, changelog.FormatOptions{Plain: isNotTerminal})
	}

	return nil
}

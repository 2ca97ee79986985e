package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/kommit/pkg/changelog"
)

var changelogCmd = &cobra.Command{
	Use:         "changelog [revision-range]",
	Aliases:     []string{"cl"},
	Short:       "Generate changelog sections from commit history",
	Long:        `Groups the conventional commits in the given revision range (or the full history of the current branch) into changelog sections. Malformed and non-conventional commits are skipped.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runChangelogE,
}

type changelogOptions struct {
	Format  FormatType
	Project string
	Release string
}

var changelogFlags = changelogOptions{
	Format: TextFormat,
}

func changelogAddFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(enumflag.New(&changelogFlags.Format, "format", FormatIds, enumflag.EnumCaseInsensitive), "format", "f", "Output format (text, markdown, yaml)")
	cmd.Flags().StringVar(&changelogFlags.Project, "project", "", "Project name for the changelog header (default repository directory name)")
	cmd.Flags().StringVar(&changelogFlags.Release, "release", "", "Version label for the generated sections (default unreleased)")
}

func init() {
	changelogAddFlags(changelogCmd)

	rootCmd.AddCommand(changelogCmd)
}

func runChangelogE(cmd *cobra.Command, args []string) error {
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

	project := changelogFlags.Project
	if project == "" {
		project = filepath.Base(workDir)
	}

	c := changelog.Build(project, changelogFlags.Release, messages)

	switch changelogFlags.Format {
	case MarkdownFormat:
		return changelog.RenderMarkdown(c, os.Stdout)
	case YAMLFormat:
		return changelog.RenderYAML(c, os.Stdout)
	default:
		return changelog.FormatTerminal(c, os.Stdout, changelog.FormatOptions{Plain: isNotTerminal})
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/kommit/internal/config"
	"github.com/zbiljic/kommit/pkg/i18n"
	"github.com/zbiljic/kommit/pkg/promptsx"
	"github.com/zbiljic/kommit/pkg/questions"
	"github.com/zbiljic/kommit/pkg/termio"
)

var commitCmd = &cobra.Command{
	Use: "commit",
	Aliases: []string{
		"c",
	},
	Short:       "Build a commit message interactively",
	Long:        `Walks through the conventional commit questions (type, scope, subject, body, breaking change, footer), assembles the message, and commits the staged changes with it.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runCommitE,
}

type commitOptions struct {
	Language string
	All      bool
	DryRun   bool
}

var commitFlags = commitOptions{}

func commitAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&commitFlags.Language, "language", "l", "", "Language for prompt text (default from configuration)")
	cmd.Flags().BoolVarP(&commitFlags.All, "all", "a", false, "Automatically stage all changes in tracked files")
	cmd.Flags().BoolVar(&commitFlags.DryRun, "dry-run", false, "Print the composed message instead of committing")
}

func init() {
	commitAddFlags(commitCmd)

	rootCmd.AddCommand(commitCmd)
}

func runCommitE(cmd *cobra.Command, args []string) error {
	if isNotTerminal {
		return errors.New("not a terminal")
	}

	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	language := cfg.Language
	if commitFlags.Language != "" {
		language = commitFlags.Language
	}

	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

	termio.ClearStdinBuffer()

	steps := questions.Steps(language, i18n.Builtin())

	answers, err := questions.Run(steps, promptsx.NewFlowPrompter())
	if err != nil {
		if prompts.IsCancel(err) {
			prompts.Outro("Commit cancelled")
			return nil
		}
		return err
	}

	message := answers.Message().Render()

	promptsx.Note(message)

	if commitFlags.DryRun {
		prompts.Outro("Dry run, nothing committed")
		return nil
	}

	confirmed, err := prompts.Confirm(prompts.ConfirmParams{
		Message:      "Commit with this message?",
		InitialValue: true,
	})
	if err != nil || !confirmed {
		prompts.Outro("Commit cancelled")
		return nil
	}

	if commitFlags.All {
		if err := gitAddAll(workDir); err != nil {
			return err
		}
	}

	files, err := gitStagedFileNames(workDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("No staged changes to commit") //nolint:staticcheck
	}

	if err := gitCommit(workDir, message); err != nil {
		return err
	}

	prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green("✔")))

	return nil
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/zbiljic/kommit/internal/buildinfo"
	"github.com/zbiljic/kommit/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "kommit"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Conventional commit messages, validation, and version bumps",
	Long:  `Author conventional commit messages interactively, validate commit history against the format, and derive semantic version bumps and changelog sections from it.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)
	},
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	switch {
	case isCommitCmd():
		return runCommitE(cmd, args)
	default:
		cmd.Usage() //nolint:errcheck
		return nil
	}
}

// isCommitCmd reports whether running the interactive commit flow as the
// default command makes sense, i.e. we are inside a Git working tree.
func isCommitCmd() bool {
	if workDir, err := gitWorkingTreeDir(getWd()); err != nil || workDir == "" {
		return false
	}
	return true
}

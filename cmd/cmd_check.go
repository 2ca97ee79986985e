package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/kommit/pkg/commit"
)

var checkCmd = &cobra.Command{
	Use:         "check [message...]",
	Short:       "Validate commit messages against the conventional format",
	Long:        `Validates commit messages against the conventional commit schema. Messages can be passed as arguments, read from a commit message file, or taken from the history of the current branch.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.ArbitraryArgs,
	RunE:        runCheckE,
}

type checkOptions struct {
	CommitMsgFile string
	RevisionRange string
}

var checkFlags = checkOptions{}

func checkAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkFlags.CommitMsgFile, "commit-msg-file", "", "Validate the message in the given file (commit-msg hook)")
	cmd.Flags().StringVar(&checkFlags.RevisionRange, "rev-range", "", "Validate commits in the given revision range (e.g. v1.2.0..HEAD)")
}

func init() {
	checkAddFlags(checkCmd)

	rootCmd.AddCommand(checkCmd)
}

func runCheckE(cmd *cobra.Command, args []string) error {
	messages, err := checkCollectMessages(args)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		return fmt.Errorf("no commit messages to check")
	}

	var invalid int
	for _, message := range messages {
		subject := commit.ExtractSubject(message)
		header, _, _ := strings.Cut(message, "\n")
		if subject == "" {
			invalid++
			fmt.Printf("%s %s\n", picocolors.Red("✖"), header)
			continue
		}
		fmt.Printf("%s %s\n", picocolors.Green("✔"), header)
	}

	if invalid > 0 {
		return fmt.Errorf("%d commit message(s) do not follow the conventional format", invalid)
	}

	return nil
}

func checkCollectMessages(args []string) ([]string, error) {
	if checkFlags.CommitMsgFile != "" {
		data, err := os.ReadFile(checkFlags.CommitMsgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read commit message file: %w", err)
		}
		return []string{strings.TrimSpace(string(data))}, nil
	}

	if len(args) > 0 {
		return args, nil
	}

	workDir, err := setupGitWorkDir()
	if err != nil {
		return nil, err
	}

	return gitLogSubjects(workDir, checkFlags.RevisionRange)
}

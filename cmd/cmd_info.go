package cmd

import (
	"fmt"
	"sort"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/spf13/cobra"

	"github.com/zbiljic/kommit/internal/config"
	"github.com/zbiljic/kommit/pkg/commit"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the conventional commits help document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		content, err := commit.Info(cfg.InfoPath, cfg.Encoding)
		if err != nil {
			return err
		}

		fmt.Println(content)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the commit message schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(commit.Schema)
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show an example commit message",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(commit.Example)
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the commit types and their descriptions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		types := maputil.Keys(commit.ConventionalCommitTypes)
		sort.Strings(types)

		for _, t := range types {
			fmt.Printf("%-10s %s\n", t, commit.ConventionalCommitTypes[t])
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(typesCmd)
}

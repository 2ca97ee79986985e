package cmd

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/zbiljic/gitexec"
)

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return string(out), err
	}

	return strings.TrimSpace(string(out)), nil
}

func gitCommit(path, message string) error {
	_, err := gitexec.Commit(&gitexec.CommitOptions{
		CmdDir:  path,
		Message: message,
	})
	if err != nil {
		return err
	}

	return nil
}

func gitAddAll(path string) error {
	_, err := gitexec.Add(&gitexec.AddOptions{
		CmdDir: path,
		All:    true,
	})
	if err != nil {
		return err
	}

	return nil
}

// gitStagedFileNames returns the paths of currently staged files.
func gitStagedFileNames(workDir string) ([]string, error) {
	out, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:   workDir,
		Cached:   true,
		NameOnly: true,
	})
	if err != nil {
		return nil, err
	}

	outString := strings.TrimSpace(string(out))
	if outString == "" {
		return nil, nil
	}

	return strings.Split(outString, "\n"), nil
}

// gitLogSubjects returns commit subject lines, newest first. An empty
// revisionRange walks the full history of the current branch.
func gitLogSubjects(workDir, revisionRange string) ([]string, error) {
	opts := &gitexec.LogOptions{
		CmdDir: workDir,
		Format: "%s", // subject only
	}

	if revisionRange != "" {
		opts.RevisionRange = revisionRange
	}

	output, err := gitexec.Log(opts)
	if err != nil {
		return nil, err
	}

	if len(output) == 0 {
		return nil, nil
	}

	messages := strings.Split(strings.TrimSpace(string(output)), "\n")

	return slice.Filter(messages, func(_ int, s string) bool {
		return strutil.IsNotBlank(s)
	}), nil
}

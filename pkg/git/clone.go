package git

import (
	"fmt"
	"path/filepath"

	"github.com/arbordev/arbor/pkg/executor"
)

// Clone clones a repository to the specified path, optionally on a named
// branch. Output is streamed line by line to OnProgress so long clones can
// surface live progress.
func (g *realGit) Clone(params CloneParams) error {
	args := []string{"clone"}
	if params.Branch != "" {
		args = append(args, "--branch", params.Branch)
	}
	args = append(args, params.URL, params.TargetPath)

	_, err := g.exec.RunStreaming(executor.RunParams{
		Command: "git",
		Args:    args,
		Dir:     filepath.Dir(params.TargetPath),
		Timeout: params.Timeout,
	}, params.OnProgress)
	if err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	return nil
}

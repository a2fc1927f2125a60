package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/arbor/consts"
	"github.com/arbordev/arbor/pkg/repository"
	"github.com/arbordev/arbor/pkg/repourl"
)

// CloneRepository clones a remote into a target path, optionally onto a named
// branch, creating the branch when it does not yet exist remotely.
func (a *realArbor) CloneRepository(params CloneRepositoryParams) OperationResult {
	opID := newOperationID()

	return a.execute(consts.CloneRepository, opID, func() (string, error) {
		if !repourl.IsValid(params.URL) {
			return "", fmt.Errorf("%w: %s", repourl.ErrInvalidRepositoryURL, params.URL)
		}
		if params.TargetPath == "" {
			return "", ErrEmptyTargetPath
		}

		a.logger.Logf("[%s] cloning %s into %s", opID, params.URL, params.TargetPath)

		if err := a.repository.Clone(repository.CloneParams{
			URL:        params.URL,
			TargetPath: params.TargetPath,
			Branch:     params.Branch,
		}); err != nil {
			return "", err
		}

		if err := a.statusManager.AddRepository(params.TargetPath, params.URL); err != nil {
			a.logger.Logf("[%s] failed to record repository in registry: %v", opID, err)
		}

		return fmt.Sprintf("Cloned %s into %s", repourl.Name(params.URL), params.TargetPath), nil
	})
}

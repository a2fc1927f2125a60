package arbor

import (
	"fmt"

	"github.com/arbordev/arbor/pkg/forge"
	"github.com/arbordev/arbor/pkg/repourl"
)

// GenericProvider labels remotes no registered provider recognizes.
const GenericProvider = "generic"

// InspectRemote classifies a repository URL and enriches it with provider
// metadata. Unknown providers and unreachable APIs degrade to URL-derived
// data, so inspection works offline.
func (a *realArbor) InspectRemote(repoURL string) (*forge.RemoteInfo, error) {
	if !repourl.IsValid(repoURL) {
		return nil, fmt.Errorf("%w: %s", repourl.ErrInvalidRepositoryURL, repoURL)
	}

	provider, err := a.forgeManager.GetForgeForURL(repoURL)
	if err != nil {
		return &forge.RemoteInfo{
			URL:        repoURL,
			Provider:   GenericProvider,
			Repository: repourl.Name(repoURL),
		}, nil
	}

	return provider.Inspect(repoURL)
}

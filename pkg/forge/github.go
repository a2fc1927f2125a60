package forge

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for the GitHub provider.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL matching.
	GitHubDomain = "github.com"
	// apiTimeout bounds every GitHub API call.
	apiTimeout = 10 * time.Second
)

var (
	githubHTTPSPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	githubSCPPattern   = regexp.MustCompile(`^[A-Za-z0-9._-]+@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	githubSSHPattern   = regexp.MustCompile(`^ssh://[A-Za-z0-9._-]+@github\.com/([^/]+)/([^/]+?)(?:\.git)?$`)
)

// GitHub resolves repository metadata through the GitHub API.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a GitHub provider, authenticated when GITHUB_TOKEN is set.
func NewGitHub() *GitHub {
	var client *github.Client

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client}
}

// NewGitHubWithClient creates a GitHub provider backed by the given client.
func NewGitHubWithClient(client *github.Client) *GitHub {
	return &GitHub{client: client}
}

// Name returns the name of the provider.
func (g *GitHub) Name() string {
	return GitHubName
}

// Matches reports whether the URL references a repository on github.com.
func (g *GitHub) Matches(repoURL string) bool {
	_, _, err := g.parseRepoURL(repoURL)
	return err == nil
}

// Inspect resolves metadata for a GitHub repository URL. The owner and
// repository names come from the URL itself; default branch, description and
// visibility come from the API and are left empty when it cannot be reached,
// so inspection works offline.
func (g *GitHub) Inspect(repoURL string) (*RemoteInfo, error) {
	owner, repo, err := g.parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	info := &RemoteInfo{
		URL:        repoURL,
		Provider:   GitHubName,
		Owner:      owner,
		Repository: repo,
	}

	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
	defer cancel()

	remote, _, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return info, nil
	}

	info.DefaultBranch = remote.GetDefaultBranch()
	info.Description = remote.GetDescription()
	info.Private = remote.GetPrivate()
	return info, nil
}

// parseRepoURL extracts owner and repository from HTTPS, scp-like SSH, and
// ssh:// GitHub URL forms.
func (g *GitHub) parseRepoURL(repoURL string) (string, string, error) {
	repoURL = strings.TrimSpace(repoURL)

	for _, pattern := range []*regexp.Regexp{githubHTTPSPattern, githubSCPPattern, githubSSHPattern} {
		if matches := pattern.FindStringSubmatch(repoURL); matches != nil {
			return matches[1], matches[2], nil
		}
	}

	return "", "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, repoURL)
}

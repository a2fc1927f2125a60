// Package repourl classifies repository URLs and derives short names and
// canonical identities from them.
package repourl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FallbackName is returned by Name when no repository name can be extracted.
const FallbackName = "repository"

// Hosting providers accepted without further domain validation.
var knownHosts = map[string]struct{}{
	"github.com":    {},
	"gitlab.com":    {},
	"bitbucket.org": {},
	"codeberg.org":  {},
}

var (
	scpLikePattern    = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[^/\s]+/[^\s]+$`)
	scpCapturePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@([A-Za-z0-9.-]+):([^/\s]+)/([^\s]+)$`)
	gitProtoPattern   = regexp.MustCompile(`^git://[A-Za-z0-9.-]+(:\d+)?/[^/\s]+/[^\s]+$`)
	sshProtoPattern   = regexp.MustCompile(`^ssh://([A-Za-z0-9._-]+@)?[A-Za-z0-9.-]+(:\d+)?/[^/\s]+/[^\s]+$`)
	domainPattern     = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)+$`)
	namePattern       = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// IsValid reports whether raw looks like a usable repository URL over HTTP(S),
// SSH, or the native git protocol. It returns false on anything unparseable
// and never panics.
func IsValid(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return isValidHTTP(raw)
	}

	if gitProtoPattern.MatchString(raw) || sshProtoPattern.MatchString(raw) {
		return true
	}

	return scpLikePattern.MatchString(raw)
}

func isValidHTTP(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := parsed.Hostname()
	if host == "" || !strings.Contains(host, ".") {
		return false
	}

	// Require an owner/repo shaped path
	if len(pathSegments(parsed.Path)) < 2 {
		return false
	}

	if _, ok := knownHosts[strings.ToLower(host)]; ok {
		return true
	}

	return domainPattern.MatchString(host)
}

// Name extracts a best-effort repository name from the final path segment of
// raw, stripping a trailing ".git". It returns FallbackName when nothing
// usable can be extracted.
func Name(raw string) string {
	raw = strings.TrimSpace(raw)

	if hasURLScheme(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return FallbackName
		}
		segments := pathSegments(parsed.Path)
		if len(segments) == 0 {
			return FallbackName
		}
		name := strings.TrimSuffix(segments[len(segments)-1], ".git")
		if !namePattern.MatchString(name) {
			return FallbackName
		}
		return name
	}

	trimmed := strings.TrimSuffix(raw, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	name := trimmed
	if idx := strings.LastIndexAny(trimmed, "/:"); idx >= 0 {
		name = trimmed[idx+1:]
	}

	if !namePattern.MatchString(name) {
		return FallbackName
	}
	return name
}

func hasURLScheme(raw string) bool {
	return strings.HasPrefix(raw, "http://") ||
		strings.HasPrefix(raw, "https://") ||
		strings.HasPrefix(raw, "ssh://") ||
		strings.HasPrefix(raw, "git://")
}

// Normalize reduces raw to its canonical "host/owner/repo" identity, used to
// derive stable clone and worktree paths. Nested group paths keep all their
// segments.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case hasURLScheme(raw):
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, raw)
		}

		host := parsed.Hostname()
		segments := pathSegments(parsed.Path)
		if host == "" || len(segments) < 2 {
			return "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, raw)
		}

		segments[len(segments)-1] = strings.TrimSuffix(segments[len(segments)-1], ".git")
		if segments[len(segments)-1] == "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, raw)
		}

		return host + "/" + strings.Join(segments, "/"), nil

	default:
		matches := scpCapturePattern.FindStringSubmatch(raw)
		if matches == nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, raw)
		}

		host, owner := matches[1], matches[2]
		repo := strings.TrimSuffix(matches[3], ".git")
		if repo == "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, raw)
		}

		return host + "/" + owner + "/" + repo, nil
	}
}

func pathSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

package git

import "strings"

// This file is the only place that interprets free-text git output. The
// wording git prints is not a stable interface, so every helper here is
// pinned to known output samples in parse_test.go; a git upgrade that changes
// the wording should only ever require updating this file.

const (
	remoteHeadPrefix   = "refs/heads/"
	originSymrefPrefix = "refs/remotes/origin/"
)

// parseOriginSymref extracts the branch name from the output of
// `git symbolic-ref refs/remotes/origin/HEAD`:
//
//	refs/remotes/origin/main
func parseOriginSymref(output string) string {
	ref := strings.TrimSpace(output)
	if !strings.HasPrefix(ref, originSymrefPrefix) {
		return ""
	}
	return strings.TrimPrefix(ref, originSymrefPrefix)
}

// parseLsRemoteSymref extracts the branch name from the output of
// `git ls-remote --symref origin HEAD`:
//
//	ref: refs/heads/main	HEAD
//	8f5a3b...	HEAD
func parseLsRemoteSymref(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ref:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if strings.HasPrefix(fields[1], remoteHeadPrefix) {
			return strings.TrimPrefix(fields[1], remoteHeadPrefix)
		}
	}
	return ""
}

// parseRemoteHeads extracts bare branch names from the output of
// `git ls-remote --heads origin`:
//
//	8f5a3b...	refs/heads/main
//	1c9d7e...	refs/heads/feature/login
func parseRemoteHeads(output string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		ref := fields[len(fields)-1]
		if !strings.HasPrefix(ref, remoteHeadPrefix) {
			continue
		}
		branches = append(branches, strings.TrimPrefix(ref, remoteHeadPrefix))
	}
	return branches
}

// IsRemoteBranchMissing reports whether the error text is git's complaint
// about cloning or fetching a branch that does not exist on the remote:
//
//	fatal: Remote branch release-1 not found in upstream origin
//	fatal: couldn't find remote ref release-1
func IsRemoteBranchMissing(err error) bool {
	if err == nil {
		return false
	}
	text := err.Error()
	if strings.Contains(text, "Remote branch") && strings.Contains(text, "not found in upstream") {
		return true
	}
	return strings.Contains(text, "couldn't find remote ref")
}

// IsFilteringContent reports whether the error text contains git's
// "Filtering content" progress marker, printed while smudge filters (e.g.
// git-lfs) run during checkout.
func IsFilteringContent(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Filtering content")
}

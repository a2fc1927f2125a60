//go:build unit

package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These samples are captured from real git output. If a git upgrade changes
// the wording, update the sample and the matching helper together.

func TestParseOriginSymref(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{name: "main", output: "refs/remotes/origin/main\n", want: "main"},
		{name: "master", output: "refs/remotes/origin/master\n", want: "master"},
		{name: "nested branch", output: "refs/remotes/origin/release/v2\n", want: "release/v2"},
		{name: "unexpected ref", output: "refs/heads/main\n", want: ""},
		{name: "empty", output: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOriginSymref(tt.output))
		})
	}
}

func TestParseLsRemoteSymref(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "github style",
			output: "ref: refs/heads/main\tHEAD\n8f5a3b2c1d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a\tHEAD\n",
			want:   "main",
		},
		{
			name:   "master default",
			output: "ref: refs/heads/master\tHEAD\nabcdef0123456789abcdef0123456789abcdef01\tHEAD\n",
			want:   "master",
		},
		{
			name:   "nested default branch",
			output: "ref: refs/heads/stable/3.x\tHEAD\nabcdef0123456789abcdef0123456789abcdef01\tHEAD\n",
			want:   "stable/3.x",
		},
		{
			name:   "detached head remote reports no symref",
			output: "abcdef0123456789abcdef0123456789abcdef01\tHEAD\n",
			want:   "",
		},
		{name: "empty", output: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLsRemoteSymref(tt.output))
		})
	}
}

func TestParseRemoteHeads(t *testing.T) {
	output := "8f5a3b2c1d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a\trefs/heads/main\n" +
		"1c9d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d\trefs/heads/feature/login\n" +
		"2d0e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e\trefs/heads/develop\n"

	assert.Equal(t, []string{"main", "feature/login", "develop"}, parseRemoteHeads(output))
}

func TestParseRemoteHeads_IgnoresNonHeadRefs(t *testing.T) {
	output := "8f5a3b2c1d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a\trefs/heads/main\n" +
		"1c9d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d\trefs/tags/v1.0.0\n" +
		"\n"

	assert.Equal(t, []string{"main"}, parseRemoteHeads(output))
}

func TestParseRemoteHeads_Empty(t *testing.T) {
	assert.Empty(t, parseRemoteHeads(""))
}

func TestIsRemoteBranchMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "clone error",
			err:  errors.New("git clone failed: fatal: Remote branch release-1 not found in upstream origin"),
			want: true,
		},
		{
			name: "fetch error",
			err:  errors.New("git fetch failed: fatal: couldn't find remote ref release-1"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("fatal: unable to access 'https://github.com/owner/repo/': Could not resolve host"),
			want: false,
		},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemoteBranchMissing(tt.err))
		})
	}
}

func TestIsFilteringContent(t *testing.T) {
	assert.True(t, IsFilteringContent(errors.New("Filtering content:  45% (9/20)")))
	assert.False(t, IsFilteringContent(errors.New("fatal: not a git repository")))
	assert.False(t, IsFilteringContent(nil))
}

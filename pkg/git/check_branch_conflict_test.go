//go:build unit

package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCheckBranchConflict_Symmetry(t *testing.T) {
	tests := []struct {
		name      string
		heads     string
		candidate string
		want      string
	}{
		{
			name:      "candidate nests under existing branch",
			heads:     "abc123\trefs/heads/feature\n",
			candidate: "feature/sub",
			want:      "feature",
		},
		{
			name:      "existing branch nests under candidate",
			heads:     "abc123\trefs/heads/feature/sub\n",
			candidate: "feature",
			want:      "feature/sub",
		},
		{
			name:      "deeply nested collision",
			heads:     "abc123\trefs/heads/release\n",
			candidate: "release/v2/hotfix",
			want:      "release",
		},
		{
			name:      "no collision between siblings",
			heads:     "abc123\trefs/heads/feature/a\n",
			candidate: "feature/b",
			want:      "",
		},
		{
			name:      "same name is not a namespace collision",
			heads:     "abc123\trefs/heads/feature\n",
			candidate: "feature",
			want:      "",
		},
		{
			name:      "shared name prefix without separator",
			heads:     "abc123\trefs/heads/feature\n",
			candidate: "features",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			git, exec := newTestGit(t)
			expectRun(exec, tt.heads, nil)

			assert.Equal(t, tt.want, git.CheckBranchConflict("/repo", tt.candidate))
		})
	}
}

func TestCheckBranchConflict_QueryFailureIsPermissive(t *testing.T) {
	git, exec := newTestGit(t)
	expectRun(exec, "", errors.New("fatal: unable to access remote"))

	assert.Empty(t, git.CheckBranchConflict("/repo", "feature/sub"))
}

func TestCheckBranchConflict_DetectionIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parent := rapid.StringMatching(`[a-z][a-z0-9-]{0,10}`).Draw(t, "parent")
		child := rapid.StringMatching(`[a-z][a-z0-9-]{0,10}`).Draw(t, "child")
		nested := parent + "/" + child

		// parent exists, candidate is nested
		git, exec := newTestGit(t)
		expectRun(exec, "abc123\trefs/heads/"+parent+"\n", nil)
		if got := git.CheckBranchConflict("/repo", nested); got != parent {
			t.Fatalf("candidate %q against existing %q: got %q", nested, parent, got)
		}

		// nested exists, candidate is parent
		git, exec = newTestGit(t)
		expectRun(exec, "abc123\trefs/heads/"+nested+"\n", nil)
		if got := git.CheckBranchConflict("/repo", parent); got != nested {
			t.Fatalf("candidate %q against existing %q: got %q", parent, nested, got)
		}
	})
}

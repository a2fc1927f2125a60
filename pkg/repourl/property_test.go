//go:build unit

package repourl

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestIsValid_NeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		_ = IsValid(raw)
	})
}

func TestName_AlwaysReturnsUsableName(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		name := Name(raw)
		if name == "" {
			t.Fatalf("empty name for input %q", raw)
		}
		if strings.ContainsAny(name, "/\\") {
			t.Fatalf("name %q contains path separators for input %q", name, raw)
		}
	})
}

func TestNormalize_AcceptedURLsRoundTripThroughName(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		owner := rapid.StringMatching(`[a-z][a-z0-9-]{0,20}`).Draw(t, "owner")
		repo := rapid.StringMatching(`[a-z][a-z0-9-]{0,20}`).Draw(t, "repo")
		url := "https://github.com/" + owner + "/" + repo + ".git"

		normalized, err := Normalize(url)
		if err != nil {
			t.Fatalf("normalize rejected %q: %v", url, err)
		}
		if normalized != "github.com/"+owner+"/"+repo {
			t.Fatalf("unexpected identity %q for %q", normalized, url)
		}
		if Name(url) != repo {
			t.Fatalf("name %q does not match repo %q", Name(url), repo)
		}
	})
}

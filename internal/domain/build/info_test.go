package build_test

import (
	"testing"

	"github.com/bnema/scanclip/internal/domain/build"
	"github.com/stretchr/testify/assert"
)

func TestInfo_ResolveKeepsInjectedValues(t *testing.T) {
	info := build.Info{
		Version:   "v1.2.3",
		Commit:    "abc1234",
		BuildDate: "2026-01-02",
		GoVersion: "go1.25.3",
	}

	assert.Equal(t, info, info.Resolve())
}

func TestInfo_ResolveFillsEmptyFields(t *testing.T) {
	info := build.Info{}.Resolve()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
}

func TestRepoURL(t *testing.T) {
	assert.Contains(t, build.RepoURL(), "scanclip")
}

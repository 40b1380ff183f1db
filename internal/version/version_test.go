package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.BuildDate)
	assert.NotEmpty(t, info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestLdflagsTakePrecedence(t *testing.T) {
	saved := []string{version, buildDate, gitCommit}
	t.Cleanup(func() { version, buildDate, gitCommit = saved[0], saved[1], saved[2] })

	version, buildDate, gitCommit = "v1.4.0", "2024-05-01T00:00:00Z", "abc123"

	info := Get()
	assert.Equal(t, "v1.4.0", info.Version)
	assert.Equal(t, "2024-05-01T00:00:00Z", info.BuildDate)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "v1.4.0 (built 2024-05-01T00:00:00Z, commit abc123, "+runtime.Version()+")", info.String())
}

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, CommitSHA, BuildDate
	t.Cleanup(func() { Version, CommitSHA, BuildDate = oldVersion, oldCommit, oldDate })

	Version, CommitSHA, BuildDate = "v1.2.3", "abc1234", "2026-01-02"

	assert.Equal(t, "v1.2.3 (commit abc1234, built 2026-01-02)", String())
	assert.Equal(t, "pushover-mcp/v1.2.3", UserAgent())
}

package ed25519

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)

	floor, err := semver.ParseTolerant("0.1.0")
	assert.NoError(err)

	if Version.Compare(floor) < 0 {
		t.Fatal("hardcoded Version regressed below the first released tag")
	}
}

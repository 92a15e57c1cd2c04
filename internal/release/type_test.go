package release_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsline/cutover/internal/exception"
	"github.com/opsline/cutover/internal/release"
)

func TestParseType(t *testing.T) {
	t.Run("accepts all valid release tokens", func(st *testing.T) {
		for _, token := range []string{
			"first",
			"prerelease",
			"patch",
			"minor",
			"major",
			"preview",
		} {
			releaseType, explicit, err := release.ParseType(token)

			assert.NoError(st, err)
			assert.Equal(st, release.Type(token), releaseType)
			assert.Equal(st, "", explicit)
		}
	})

	t.Run("defaults to patch when no argument given", func(st *testing.T) {
		releaseType, explicit, err := release.ParseType("")

		assert.NoError(st, err)
		assert.Equal(st, release.TypePatch, releaseType)
		assert.Equal(st, "", explicit)
	})

	t.Run("treats a version literal as an explicit override", func(st *testing.T) {
		releaseType, explicit, err := release.ParseType("1.2.3")

		assert.NoError(st, err)
		assert.Equal(st, release.TypeExplicit, releaseType)
		assert.Equal(st, "1.2.3", explicit)
	})

	t.Run("rejects anything else", func(st *testing.T) {
		for _, token := range []string{
			"Patch",
			"MINOR",
			"nope",
			"1.2",
			"v1.2.3",
			"1.2.3.4",
		} {
			_, _, err := release.ParseType(token)

			assert.ErrorIs(st, err, exception.ErrInvalidReleaseType)
		}
	})
}

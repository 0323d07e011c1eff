package countries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_DirectoryShape(t *testing.T) {
	all := All()
	require.Len(t, all, 22)

	codes := map[string]bool{}
	for _, c := range all {
		assert.False(t, codes[c.Code], "duplicate code %s", c.Code)
		codes[c.Code] = true
		assert.NotEmpty(t, c.Name)
		assert.True(t, strings.HasPrefix(c.DialCode, "+"), "dial code %q", c.DialCode)
		assert.NotEmpty(t, c.Flag)
	}
}

func TestByCode(t *testing.T) {
	c, ok := ByCode("EG")
	require.True(t, ok)
	assert.Equal(t, "+20", c.DialCode)

	_, ok = ByCode("XX")
	assert.False(t, ok)
}

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, st := range All() {
		parsed, err := ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "pending", "SHIPPED", "PAID "} {
		_, err := ParseStatus(input)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", input)
	}
}

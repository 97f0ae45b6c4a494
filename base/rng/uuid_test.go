package rng

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	id, err := UUID()
	require.NoError(t, err)
	assert.Equal(t, byte(uuid.V4), id.Version())
	assert.Equal(t, uuid.VariantRFC4122, id.Variant())

	other, err := UUID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	// Version and variant bits are set on top of the source bytes.
	id, err = withBytes(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	).UUID()
	require.NoError(t, err)
	assert.Equal(t, "00010203-0405-4607-8809-0a0b0c0d0e0f", id.String())

	_, err = New(&Options{Source: errSource{}}).UUID()
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
}

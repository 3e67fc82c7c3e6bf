package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Encode("session-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", id)
}

func TestCodecRejectsWrongKey(t *testing.T) {
	token, err := NewCodec("key-one").Encode("session-123", time.Hour)
	require.NoError(t, err)

	_, err = NewCodec("key-two").Decode(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestCodecRejectsExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Encode("session-123", -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(token)
	require.Error(t, err)
}

func TestCodecRejectsGarbage(t *testing.T) {
	_, err := NewCodec("test-secret").Decode("not-a-token")
	require.Error(t, err)
}

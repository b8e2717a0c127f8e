package sessions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bysecret/noteflux/sessions"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := sessions.NewCodec("test-secret")

	for _, session := range []sessions.Session{
		{},
		{SiteAuthed: true},
		{SiteAuthed: true, AdminAuthed: true},
	} {
		raw, err := codec.Encode(session)
		require.NoError(t, err)
		require.Equal(t, session, codec.Decode(raw))
	}
}

func TestCodec_Decode_RejectsUntrustedInput(t *testing.T) {
	codec := sessions.NewCodec("test-secret")
	anon := sessions.Session{}

	t.Run("empty value", func(t *testing.T) {
		require.Equal(t, anon, codec.Decode(""))
	})

	t.Run("garbage value", func(t *testing.T) {
		require.Equal(t, anon, codec.Decode("not.a.token"))
		require.Equal(t, anon, codec.Decode("missing-dots"))
	})

	t.Run("tampered signature resets to anonymous", func(t *testing.T) {
		raw, err := codec.Encode(sessions.Session{SiteAuthed: true, AdminAuthed: true})
		require.NoError(t, err)

		// Flip one character of the signature segment
		flipped := raw[:len(raw)-1]
		if strings.HasSuffix(raw, "A") {
			flipped += "B"
		} else {
			flipped += "A"
		}
		require.Equal(t, anon, codec.Decode(flipped))
	})

	t.Run("tampered payload resets to anonymous", func(t *testing.T) {
		raw, err := codec.Encode(sessions.Session{SiteAuthed: true})
		require.NoError(t, err)

		parts := strings.SplitN(raw, ".", 3)
		require.Len(t, parts, 3)
		forged := parts[0] + "." + "eyJzaXRlQXV0aGVkIjp0cnVlLCJhZG1pbkF1dGhlZCI6dHJ1ZX0" + "." + parts[2]
		require.Equal(t, anon, codec.Decode(forged))
	})

	t.Run("token from a different secret", func(t *testing.T) {
		other := sessions.NewCodec("another-secret")
		raw, err := other.Encode(sessions.Session{SiteAuthed: true})
		require.NoError(t, err)
		require.Equal(t, anon, codec.Decode(raw))
	})
}

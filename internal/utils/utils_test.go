package utils

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestFormatReference(t *testing.T) {
    at := time.Date(2024, 3, 8, 23, 30, 0, 0, time.FixedZone("EAT", 3*3600))
    // 23:30 at +03:00 is still the 8th in UTC
    assert.Equal(t, "ISH-20240308-1234", FormatReference(at, 1234))
}

func TestNewReferenceMatchesPattern(t *testing.T) {
    at := time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC)
    for i := 0; i < 200; i++ {
        ref := NewReference(at)
        require.Regexp(t, ReferencePattern, ref)
        assert.Equal(t, "ISH-20251231-", ref[:13])
        assert.NotEqual(t, '0', rune(ref[13]), "suffix is drawn from 1000..9999")
    }
}

func TestSessionTokenRoundTrip(t *testing.T) {
    raw, err := SignSessionToken("secret", "abc-123", time.Now().Add(time.Hour))
    require.NoError(t, err)

    sid, err := ParseSessionToken("secret", raw)
    require.NoError(t, err)
    assert.Equal(t, "abc-123", sid)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
    raw, err := SignSessionToken("secret", "abc-123", time.Now().Add(time.Hour))
    require.NoError(t, err)

    _, err = ParseSessionToken("other-secret", raw)
    assert.ErrorIs(t, err, ErrInvalidSessionToken)

    _, err = ParseSessionToken("secret", raw+"x")
    assert.ErrorIs(t, err, ErrInvalidSessionToken)

    _, err = ParseSessionToken("secret", "not-a-token")
    assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestSessionTokenExpired(t *testing.T) {
    raw, err := SignSessionToken("secret", "abc-123", time.Now().Add(-time.Minute))
    require.NoError(t, err)
    _, err = ParseSessionToken("secret", raw)
    assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

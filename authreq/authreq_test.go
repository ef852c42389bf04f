package authreq_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravwell/osguard/authreq"
)

func TestIssuer_IssueThenVerifyRoundTrips(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("test-secret"), time.Minute)
	token, err := issuer.Issue("alice", authreq.KindMFA)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = issuer.Verify(token, "alice", authreq.KindMFA)
	assert.NoError(t, err)
}

func TestIssuer_Verify_RejectsWrongPrincipal(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("test-secret"), time.Minute)
	token, err := issuer.Issue("alice", authreq.KindMFA)
	require.NoError(t, err)

	err = issuer.Verify(token, "bob", authreq.KindMFA)
	assert.Error(t, err)
}

func TestIssuer_Verify_RejectsWrongKind(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("test-secret"), time.Minute)
	token, err := issuer.Issue("alice", authreq.KindMFA)
	require.NoError(t, err)

	err = issuer.Verify(token, "alice", authreq.KindReauth)
	assert.Error(t, err)
}

func TestIssuer_Verify_RejectsExpiredToken(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("test-secret"), -time.Minute)
	token, err := issuer.Issue("alice", authreq.KindReauth)
	require.NoError(t, err)

	err = issuer.Verify(token, "alice", authreq.KindReauth)
	assert.Error(t, err)
}

func TestIssuer_Verify_RejectsTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("secret-a"), time.Minute)
	token, err := issuer.Issue("alice", authreq.KindMFA)
	require.NoError(t, err)

	other := authreq.NewIssuer([]byte("secret-b"), time.Minute)
	err = other.Verify(token, "alice", authreq.KindMFA)
	assert.Error(t, err)
}

func TestNewIssuer_DefaultsTTLWhenZero(t *testing.T) {
	issuer := authreq.NewIssuer([]byte("test-secret"), 0)
	token, err := issuer.Issue("alice", authreq.KindMFA)
	require.NoError(t, err)
	assert.NoError(t, issuer.Verify(token, "alice", authreq.KindMFA))
}

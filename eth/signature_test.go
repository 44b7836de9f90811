package eth

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func signDigest(t *testing.T, digest [32]byte) (r, s [32]byte, parity byte, pubKey []byte) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(digest[:], key)
	require.NoError(t, err)

	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])

	return r, s, sig[64], crypto.FromECDSAPub(&key.PublicKey)
}

func TestRecoverParity(t *testing.T) {
	t.Parallel()

	digest := crypto.Keccak256Hash([]byte("native transfer payload"))

	t.Run("recovers the signing parity", func(t *testing.T) {
		t.Parallel()

		r, s, parity, pubKey := signDigest(t, digest)

		recovered, err := RecoverParity(digest, r, s, pubKey)
		require.NoError(t, err)
		require.Equal(t, parity, recovered)
	})

	t.Run("signature over a different digest fails", func(t *testing.T) {
		t.Parallel()

		r, s, _, pubKey := signDigest(t, digest)

		otherDigest := crypto.Keccak256Hash([]byte("some other payload"))

		_, err := RecoverParity(otherDigest, r, s, pubKey)
		require.ErrorIs(t, err, ErrSignatureRecoveryFailed)
	})

	t.Run("zero scalar is rejected before recovery", func(t *testing.T) {
		t.Parallel()

		_, s, _, pubKey := signDigest(t, digest)

		var zeroR [32]byte

		_, err := RecoverParity(digest, zeroR, s, pubKey)
		require.ErrorIs(t, err, ErrInvalidSignatureEncoding)
	})

	t.Run("malformed expected key", func(t *testing.T) {
		t.Parallel()

		r, s, _, _ := signDigest(t, digest)

		_, err := RecoverParity(digest, r, s, make([]byte, 33))
		require.ErrorIs(t, err, ErrInvalidPublicKey)
	})
}

package stellarkeys

import (
	"strings"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/aalvaropc/lumen/internal/domain"
)

func TestParser_DeriveAddress(t *testing.T) {
	kp := keypair.MustRandom()
	p := NewParser()

	addr, err := p.DeriveAddress(domain.Secret(kp.Seed()))
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), addr)
	assert.NotContains(t, addr, kp.Seed())
}

func TestParser_DeriveAddressRejectsPublicKey(t *testing.T) {
	kp := keypair.MustRandom()

	_, err := NewParser().DeriveAddress(domain.Secret(kp.Address()))
	require.Error(t, err)
}

func TestParser_ValidateAddress(t *testing.T) {
	kp := keypair.MustRandom()
	p := NewParser()

	require.NoError(t, p.ValidateAddress(kp.Address()))
	require.Error(t, p.ValidateAddress(kp.Seed()))
	require.Error(t, p.ValidateAddress("GABC"))
	require.Error(t, p.ValidateAddress(""))
}

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	w, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, strings.Fields(w.Mnemonic), 24)
	assert.True(t, bip39.IsMnemonicValid(w.Mnemonic))
	assert.Len(t, w.PublicKey, domain.KeyLength)
	assert.True(t, strings.HasPrefix(w.PublicKey, "G"))

	addr, err := NewParser().DeriveAddress(w.Secret)
	require.NoError(t, err)
	assert.Equal(t, w.PublicKey, addr)
}

func TestGenerator_GenerateTwelveWords(t *testing.T) {
	w, err := NewGenerator(WithEntropyBits(128)).Generate()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(w.Mnemonic), 12)
}

func TestGenerator_RecoverIsDeterministic(t *testing.T) {
	g := NewGenerator()
	w, err := g.Generate()
	require.NoError(t, err)

	again, err := g.Recover("  " + strings.ReplaceAll(w.Mnemonic, " ", "   ") + "\n")
	require.NoError(t, err)
	assert.Equal(t, w.PublicKey, again.PublicKey)
	assert.Equal(t, w.Secret.Reveal(), again.Secret.Reveal())
}

// SEP-5 test vector 1.
func TestGenerator_RecoverSEP5Vector(t *testing.T) {
	const mnemonic = "illness spike retreat truth genius clock brain pass fit cave bargain toe"

	w, err := NewGenerator().Recover(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6", w.PublicKey)
	assert.Equal(t, "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN", w.Secret.Reveal())
}

func TestGenerator_RecoverRejectsGarbage(t *testing.T) {
	_, err := NewGenerator().Recover("not a real mnemonic at all")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestGenerator_RecoverWithPassphrase(t *testing.T) {
	const mnemonic = "illness spike retreat truth genius clock brain pass fit cave bargain toe"

	plain, err := NewGenerator().Recover(mnemonic)
	require.NoError(t, err)

	salted, err := NewGenerator(WithPassphrase("p4ssphr4se")).Recover(mnemonic)
	require.NoError(t, err)
	again, err := NewGenerator(WithPassphrase("p4ssphr4se")).Recover(mnemonic)
	require.NoError(t, err)

	assert.NotEqual(t, plain.PublicKey, salted.PublicKey)
	assert.Equal(t, salted.PublicKey, again.PublicKey)
}

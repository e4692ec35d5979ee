package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
)

func testEnvelope() envelope {
	return envelope{
		suite:      crypto.SuiteAES256GCM,
		params:     crypto.KDFParams{Time: 2, MemoryKiB: 512, Threads: 2},
		salt:       []byte("0123456789abcdef"),
		nonce:      []byte("nonce-12byte"),
		ciphertext: []byte("ciphertext and tag"),
	}
}

var testLimits = crypto.KDFLimits{MaxTime: 4, MaxMemoryKiB: 1024, MaxThreads: 4}

func TestEnvelope_StringAndParse(t *testing.T) {
	e := testEnvelope()
	blob := e.String()

	assert.True(t, strings.HasPrefix(blob, "fcvault$1$aes-256-gcm$argon2id$m=512,t=2,p=2$"))
	assert.NotContains(t, blob, "=$", "base64 fields carry no padding")

	got, aad, err := parseEnvelope(blob, testLimits)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, e.header(), string(aad))
}

func TestParseEnvelope_Rejects(t *testing.T) {
	valid := testEnvelope().String()
	parts := strings.Split(valid, "$")

	with := func(i int, v string) string {
		cp := append([]string(nil), parts...)
		cp[i] = v
		return strings.Join(cp, "$")
	}

	tests := map[string]string{
		"empty":             "",
		"too few segments":  strings.Join(parts[:7], "$"),
		"too many segments": valid + "$extra",
		"tag":               with(0, "vault"),
		"version":           with(1, "2"),
		"suite":             with(2, "aes-128-cbc"),
		"kdf":               with(3, "scrypt"),
		"kdf order":         with(4, "t=2,m=512,p=2"),
		"kdf leading zero":  with(4, "m=0512,t=2,p=2"),
		"kdf sign":          with(4, "m=+512,t=2,p=2"),
		"kdf missing":       with(4, "m=512,t=2"),
		"kdf zero time":     with(4, "m=512,t=0,p=2"),
		"kdf memory limit":  with(4, "m=2048,t=2,p=2"),
		"kdf threads limit": with(4, "m=512,t=2,p=5"),
		"kdf overflow":      with(4, "m=512,t=2,p=256"),
		"salt padding":      with(5, parts[5]+"=="),
		"salt short":        with(5, b64.EncodeToString([]byte("short"))),
		"salt alphabet":     with(5, strings.Replace(parts[5], parts[5][:1], "-", 1)),
		"nonce size":        with(6, b64.EncodeToString([]byte("nonce-24-bytes-long-xxxx"))),
		"nonce alphabet":    with(6, "*"+parts[6][1:]),
		"ciphertext":        with(7, parts[7]+"!"),
	}

	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseEnvelope(blob, testLimits)
			assert.Error(t, err)
		})
	}
}

func TestParseEnvelope_StrictBase64(t *testing.T) {
	e := testEnvelope()
	e.salt = []byte("0123456789abcdefX") // 17 bytes leaves 2 spare bits in the last character
	blob := e.String()

	_, _, err := parseEnvelope(blob, testLimits)
	require.NoError(t, err)

	parts := strings.Split(blob, "$")
	last := parts[5][len(parts[5])-1]
	parts[5] = parts[5][:len(parts[5])-1] + string(last^0x01)

	_, _, err = parseEnvelope(strings.Join(parts, "$"), testLimits)
	assert.Error(t, err, "non-zero padding bits must be rejected")
}

package vault

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
)

// A sealed vault is stored as one printable string:
//
//	fcvault$1$<suite>$argon2id$m=<KiB>,t=<passes>,p=<lanes>$<salt>$<nonce>$<ciphertext>
//
// Binary fields use unpadded standard base64. The first six segments form
// the header and are authenticated as additional data, so the cipher, KDF
// cost and salt cannot be changed without failing Open.
const (
	blobTag        = "fcvault"
	blobVersion    = "1"
	blobKDF        = "argon2id"
	blobSeparator  = "$"
	blobSegments   = 8
	headerSegments = 6
)

// strict decoding rejects non-zero padding bits, so every character of the
// encoded fields is significant
var b64 = base64.RawStdEncoding.Strict()

var errInvalidEnvelope = errors.New("invalid vault envelope")

type envelope struct {
	suite      crypto.Suite
	params     crypto.KDFParams
	salt       []byte
	nonce      []byte
	ciphertext []byte
}

func (e envelope) header() string {
	return strings.Join([]string{
		blobTag,
		blobVersion,
		string(e.suite),
		blobKDF,
		formatKDFParams(e.params),
		b64.EncodeToString(e.salt),
	}, blobSeparator)
}

func (e envelope) String() string {
	return e.header() + blobSeparator +
		b64.EncodeToString(e.nonce) + blobSeparator +
		b64.EncodeToString(e.ciphertext)
}

func formatKDFParams(p crypto.KDFParams) string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.MemoryKiB, p.Time, p.Threads)
}

// parseEnvelope splits a stored value into its fields and returns the
// header text exactly as stored, for use as additional data. KDF parameters
// outside limits are rejected before any key derivation happens.
func parseEnvelope(blob string, limits crypto.KDFLimits) (envelope, []byte, error) {
	parts := strings.Split(blob, blobSeparator)
	if len(parts) != blobSegments {
		return envelope{}, nil, fmt.Errorf("%w: %d segments", errInvalidEnvelope, len(parts))
	}
	if parts[0] != blobTag {
		return envelope{}, nil, fmt.Errorf("%w: unknown tag", errInvalidEnvelope)
	}
	if parts[1] != blobVersion {
		return envelope{}, nil, fmt.Errorf("%w: unsupported version %q", errInvalidEnvelope, parts[1])
	}
	if parts[3] != blobKDF {
		return envelope{}, nil, fmt.Errorf("%w: unsupported kdf %q", errInvalidEnvelope, parts[3])
	}

	var (
		e   envelope
		err error
	)
	if e.suite, err = crypto.ParseSuite(parts[2]); err != nil {
		return envelope{}, nil, fmt.Errorf("%w: %w", errInvalidEnvelope, err)
	}
	if e.params, err = parseKDFParams(parts[4]); err != nil {
		return envelope{}, nil, err
	}
	if err = e.params.Validate(limits); err != nil {
		return envelope{}, nil, fmt.Errorf("%w: %w", errInvalidEnvelope, err)
	}

	if e.salt, err = b64.DecodeString(parts[5]); err != nil {
		return envelope{}, nil, fmt.Errorf("%w: salt: %w", errInvalidEnvelope, err)
	}
	if len(e.salt) < crypto.MinSaltSize {
		return envelope{}, nil, fmt.Errorf("%w: salt too short", errInvalidEnvelope)
	}
	if e.nonce, err = b64.DecodeString(parts[6]); err != nil {
		return envelope{}, nil, fmt.Errorf("%w: nonce: %w", errInvalidEnvelope, err)
	}
	if size, _ := e.suite.NonceSize(); len(e.nonce) != size {
		return envelope{}, nil, fmt.Errorf("%w: nonce size %d", errInvalidEnvelope, len(e.nonce))
	}
	if e.ciphertext, err = b64.DecodeString(parts[7]); err != nil {
		return envelope{}, nil, fmt.Errorf("%w: ciphertext: %w", errInvalidEnvelope, err)
	}

	aad := []byte(strings.Join(parts[:headerSegments], blobSeparator))
	return e, aad, nil
}

// parseKDFParams reads "m=<KiB>,t=<passes>,p=<lanes>" in that exact order.
func parseKDFParams(s string) (crypto.KDFParams, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return crypto.KDFParams{}, fmt.Errorf("%w: kdf params %q", errInvalidEnvelope, s)
	}

	m, err := parseKDFField(fields[0], "m=", 32)
	if err != nil {
		return crypto.KDFParams{}, err
	}
	t, err := parseKDFField(fields[1], "t=", 32)
	if err != nil {
		return crypto.KDFParams{}, err
	}
	p, err := parseKDFField(fields[2], "p=", 8)
	if err != nil {
		return crypto.KDFParams{}, err
	}

	return crypto.KDFParams{Time: uint32(t), MemoryKiB: uint32(m), Threads: uint8(p)}, nil
}

func parseKDFField(field, prefix string, bits int) (uint64, error) {
	v, ok := strings.CutPrefix(field, prefix)
	if !ok || v == "" || (len(v) > 1 && v[0] == '0') {
		return 0, fmt.Errorf("%w: kdf field %q", errInvalidEnvelope, field)
	}
	n, err := strconv.ParseUint(v, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: kdf field %q: %w", errInvalidEnvelope, field, err)
	}
	return n, nil
}

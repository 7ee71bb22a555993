package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arundaya/poinku/internal/domain"
)

// Prefix tags QR payloads so they can be told apart from typed
// friendly codes at the lookup endpoint.
const Prefix = "PQR."

// Signer issues and verifies opaque voucher tokens: the voucher's
// public id plus an HMAC-SHA256 signature, base64url-wrapped. A
// scanner relays the token verbatim; tampering breaks the signature
// before anything touches storage.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Issue(publicID uuid.UUID) string {
	payload := publicID.String()
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return Prefix + base64.URLEncoding.EncodeToString([]byte(token))
}

// IsToken reports whether the input looks like a QR payload rather
// than a friendly code.
func IsToken(input string) bool {
	return strings.HasPrefix(input, Prefix)
}

func (s *Signer) Parse(token string) (uuid.UUID, error) {
	raw, err := base64.URLEncoding.DecodeString(strings.TrimPrefix(token, Prefix))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 {
		return uuid.Nil, domain.ErrInvalidToken
	}
	if !hmac.Equal([]byte(s.sign(parts[0])), []byte(parts[1])) {
		return uuid.Nil, domain.ErrInvalidToken
	}

	publicID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return publicID, nil
}

func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

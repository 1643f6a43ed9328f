package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrMissingSignatureHeaders = errors.New("missing x-signature or x-request-id header")
	ErrSignatureMismatch       = errors.New("webhook signature mismatch")
)

// Verifier checks the Mercado Pago x-signature header.
//
// The provider signs the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;"
// with HMAC-SHA256 and sends "ts=<ts>,v1=<hex digest>".
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify returns nil when the notification is authentic.
func (v *Verifier) Verify(paymentID, requestID, signatureHeader string) error {
	if strings.TrimSpace(requestID) == "" || strings.TrimSpace(signatureHeader) == "" {
		return ErrMissingSignatureHeaders
	}

	ts, v1 := parseSignatureHeader(signatureHeader)
	if ts == "" || v1 == "" {
		return ErrSignatureMismatch
	}

	expected := v.Sign(paymentID, requestID, ts)
	if !hmac.Equal([]byte(strings.ToLower(v1)), []byte(expected)) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign computes the lowercase hex digest of the manifest.
func (v *Verifier) Sign(paymentID, requestID, ts string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(Manifest(paymentID, requestID, ts)))
	return hex.EncodeToString(mac.Sum(nil))
}

func Manifest(paymentID, requestID, ts string) string {
	return "id:" + paymentID + ";request-id:" + requestID + ";ts:" + ts + ";"
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}

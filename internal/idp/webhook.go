// webhook.go — проверка подписи webhook IdP.
// Заголовок X-Webhook-Signature: sha256=<hex HMAC-SHA256 тела>.
package idp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader — имя заголовка с подписью.
const SignatureHeader = "X-Webhook-Signature"

const signaturePrefix = "sha256="

// ErrInvalidSignature — подпись отсутствует или не совпадает.
var ErrInvalidSignature = errors.New("неверная подпись webhook")

// Sign вычисляет значение заголовка подписи для тела.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сравнивает подпись за постоянное время.
func VerifySignature(secret string, body []byte, header string) error {
	if secret == "" || !strings.HasPrefix(header, signaturePrefix) {
		return ErrInvalidSignature
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

package ai

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignaturePrefix tags the algorithm in signature header values
const SignaturePrefix = "sha256="

// SignHMAC returns the hex sha256 HMAC of payload under secret
func SignHMAC(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeaderValue returns "sha256=<hex>" for payload, or "" without a secret
func SignatureHeaderValue(secret string, payload []byte) string {
	if secret == "" {
		return ""
	}
	return SignaturePrefix + SignHMAC(secret, payload)
}

// VerifyHMAC checks a hex signature, with or without the sha256= prefix
func VerifyHMAC(secret string, payload []byte, signature string) bool {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), SignaturePrefix)
	if secret == "" || signature == "" {
		return false
	}
	expected := SignHMAC(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

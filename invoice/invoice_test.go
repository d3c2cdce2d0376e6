package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := QRPayload("order-1", "u1")

	assert.True(t, strings.HasPrefix(payload, "order-1|u1|"))
	assert.True(t, VerifyQRPayload(payload))
}

func TestVerifyQRPayloadRejectsTampering(t *testing.T) {
	payload := QRPayload("order-1", "u1")

	tampered := strings.Replace(payload, "order-1", "order-2", 1)
	assert.False(t, VerifyQRPayload(tampered))

	assert.False(t, VerifyQRPayload("garbage"))
	assert.False(t, VerifyQRPayload("a|b"))
}

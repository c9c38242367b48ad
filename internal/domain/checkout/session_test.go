//go:build unit

package checkout_test

import (
	"testing"

	"shopbot-checkout/internal/domain/checkout"
	"shopbot-checkout/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeComment(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantComment string
		wantOK      bool
	}{
		{name: "plain comment", in: "please hurry", wantComment: "please hurry", wantOK: true},
		{name: "trims whitespace", in: "  note  ", wantComment: "note", wantOK: true},
		{name: "blank rejected", in: "   ", wantOK: false},
		{name: "empty rejected", in: "", wantOK: false},
		{name: "sentinel no comment", in: "no comment", wantComment: "", wantOK: true},
		{name: "sentinel case-insensitive", in: "SKIP", wantComment: "", wantOK: true},
		{name: "sentinel dash", in: "-", wantComment: "", wantOK: true},
		{name: "sentinel none", in: "none", wantComment: "", wantOK: true},
		{name: "sentinel embedded in text is kept", in: "none of the above", wantComment: "none of the above", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := checkout.NormalizeComment(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantComment, got)
		})
	}
}

func TestSessionReceiptStaging(t *testing.T) {
	sess := checkout.New(7, 42, order.PaymentTypeCard)
	assert.Equal(t, checkout.StageSummary, sess.Stage)
	assert.True(t, sess.BindsOrder(42))
	assert.False(t, sess.BindsOrder(43))

	sess.ResetReceipt()
	assert.Equal(t, checkout.StageAwaitReceipt, sess.Stage)

	sess.StageReceipt(checkout.ReceiptKindImage, "file-123", "", "paid at noon")
	assert.Equal(t, checkout.StageAwaitReceiptComment, sess.Stage)
	assert.Equal(t, checkout.ReceiptKindImage, sess.ReceiptKind)
	assert.Equal(t, "file-123", sess.ReceiptFileRef)
	assert.Equal(t, "paid at noon", sess.ReceiptComment, "caption seeds the comment")

	// a re-submission replaces the staged payload entirely
	sess.ResetReceipt()
	assert.Empty(t, sess.ReceiptKind)
	assert.Empty(t, sess.ReceiptFileRef)
	assert.Empty(t, sess.ReceiptComment)
}

func TestNilSessionBindsNothing(t *testing.T) {
	var sess *checkout.Session
	assert.False(t, sess.BindsOrder(1))
}

func TestReceiptKind(t *testing.T) {
	assert.True(t, checkout.ReceiptKindImage.IsFile())
	assert.True(t, checkout.ReceiptKindDocument.IsFile())
	assert.False(t, checkout.ReceiptKindText.IsFile())
	assert.False(t, checkout.ReceiptKind("audio").IsValid())
}

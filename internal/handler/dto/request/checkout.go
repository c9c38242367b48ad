package request

import (
	"strconv"
	"strings"
)

type StartCheckoutRequest struct {
	Method string `json:"method" binding:"required"`
}

type DiscountCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type ReceiptRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=image document text"`
	FileRef string `json:"file_ref,omitempty"`
	Text    string `json:"text,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// MixedAmountRequest carries the wallet share as a string because chat
// gateways forward the buyer's raw keypad input.
type MixedAmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// ParseAmount returns the wallet share as a non-negative integer; ok is
// false for anything that is not one.
func (r MixedAmountRequest) ParseAmount() (int64, bool) {
	amount, err := strconv.ParseInt(strings.TrimSpace(r.Amount), 10, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

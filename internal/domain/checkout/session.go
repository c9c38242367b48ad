package checkout

import (
	"strings"
	"time"

	"shopbot-checkout/internal/domain/order"
)

// Stage is the in-flight sub-state of one user's checkout conversation.
type Stage string

const (
	StageSummary             Stage = "summary"
	StageDiscountCode        Stage = "discount_code"
	StageAwaitReceipt        Stage = "await_receipt"
	StageAwaitReceiptComment Stage = "await_receipt_comment"
	StageReviewReceipt       Stage = "review_receipt"
	StageAwaitWalletComment  Stage = "await_wallet_comment"
	StageAwaitMixedAmount    Stage = "await_mixed_amount"
	StageAwaitPlanComment    Stage = "await_plan_comment"
	StageReviewPlan          Stage = "review_plan"
)

// ReceiptKind classifies the card-transfer proof payload.
type ReceiptKind string

const (
	ReceiptKindImage    ReceiptKind = "image"
	ReceiptKindDocument ReceiptKind = "document"
	ReceiptKindText     ReceiptKind = "text"
)

func (k ReceiptKind) IsValid() bool {
	switch k {
	case ReceiptKindImage, ReceiptKindDocument, ReceiptKindText:
		return true
	default:
		return false
	}
}

func (k ReceiptKind) IsFile() bool {
	return k == ReceiptKindImage || k == ReceiptKindDocument
}

// Session is the ephemeral per-user checkout state. It is never shared across
// users and is replaced wholesale on every write (last write wins), so
// concurrent taps cannot leave half-written scratch fields behind.
type Session struct {
	UserID              int64             `json:"user_id"`
	OrderID             int64             `json:"order_id"`
	Method              order.PaymentType `json:"method,omitempty"`
	Stage               Stage             `json:"stage"`
	PendingDiscountCode string            `json:"pending_discount_code,omitempty"`
	WalletAmount        int64             `json:"wallet_amount,omitempty"`
	WalletComment       string            `json:"wallet_comment,omitempty"`
	MixedTotal          int64             `json:"mixed_total,omitempty"`
	ReceiptKind         ReceiptKind       `json:"receipt_kind,omitempty"`
	ReceiptFileRef      string            `json:"receipt_file_ref,omitempty"`
	ReceiptText         string            `json:"receipt_text,omitempty"`
	ReceiptComment      string            `json:"receipt_comment,omitempty"`
	PlanComment         string            `json:"plan_comment,omitempty"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func New(userID, orderID int64, method order.PaymentType) *Session {
	return &Session{
		UserID:  userID,
		OrderID: orderID,
		Method:  method,
		Stage:   StageSummary,
	}
}

// BindsOrder guards in-flight sub-states against operating on a different
// order than the one the session was opened for.
func (s *Session) BindsOrder(orderID int64) bool {
	return s != nil && s.OrderID == orderID
}

// StageReceipt stores a fresh receipt payload; the caption seeds the comment
// and may be overwritten in the comment step.
func (s *Session) StageReceipt(kind ReceiptKind, fileRef, text, caption string) {
	s.ReceiptKind = kind
	s.ReceiptFileRef = fileRef
	s.ReceiptText = text
	s.ReceiptComment = caption
	s.Stage = StageAwaitReceiptComment
}

// ResetReceipt clears any staged receipt ahead of the card flow.
func (s *Session) ResetReceipt() {
	s.ReceiptKind = ""
	s.ReceiptFileRef = ""
	s.ReceiptText = ""
	s.ReceiptComment = ""
	s.Stage = StageAwaitReceipt
}

// noCommentSentinels are the phrases a buyer may send instead of a comment.
var noCommentSentinels = map[string]struct{}{
	"no comment":  {},
	"no comments": {},
	"none":        {},
	"-":           {},
	"skip":        {},
	"done":        {},
}

// NormalizeComment trims free text and maps the explicit no-comment sentinels
// to the empty comment. ok is false for blank input, which callers must
// reject rather than treat as "no comment".
func NormalizeComment(text string) (comment string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	if _, isSentinel := noCommentSentinels[strings.ToLower(trimmed)]; isSentinel {
		return "", true
	}
	return trimmed, true
}

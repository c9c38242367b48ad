package response

import (
	"log/slog"

	"shopbot-checkout/internal/usecase/commands"
	"shopbot-checkout/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SummaryResponse struct {
	OrderID        int64  `json:"order_id"`
	Status         string `json:"status"`
	Method         string `json:"method,omitempty"`
	AmountTotal    int64  `json:"amount_total"`
	DiscountCode   string `json:"discount_code,omitempty"`
	DiscountAmount int64  `json:"discount_amount"`
	Payable        int64  `json:"payable"`
	Reserved       int64  `json:"reserved"`
	Owed           int64  `json:"owed"`
	PendingCode    string `json:"pending_code,omitempty"`
}

type CardDetailsResponse struct {
	Number   string `json:"number"`
	Holder   string `json:"holder"`
	Currency string `json:"currency"`
}

type ProceedResponse struct {
	Outcome string               `json:"outcome"`
	Summary SummaryResponse      `json:"summary"`
	Card    *CardDetailsResponse `json:"card,omitempty"`
	Owed    int64                `json:"owed"`
}

type ReviewResponse struct {
	Kind    string `json:"kind"`
	FileRef string `json:"file_ref,omitempty"`
	Text    string `json:"text,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type WalletConfirmResponse struct {
	AmountDebited int64  `json:"amount_debited"`
	Status        string `json:"status"`
}

type MixedAmountResponse struct {
	Reserved      int64               `json:"reserved"`
	RemainingCard int64               `json:"remaining_card"`
	Card          CardDetailsResponse `json:"card"`
}

type PlanReviewResponse struct {
	PlanTitle string `json:"plan_title,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

type CancelResponse struct {
	Refunded int64 `json:"refunded"`
}

type RemoveDiscountResponse struct {
	Removed bool `json:"removed"`
}

type CartResponse struct {
	OrderID        int64  `json:"order_id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	AmountTotal    int64  `json:"amount_total"`
	DiscountAmount int64  `json:"discount_amount"`
	Payable        int64  `json:"payable"`
	Reserved       int64  `json:"reserved"`
	RemainingCard  int64  `json:"remaining_card"`
	PlanEligible   bool   `json:"plan_eligible"`
}

func FromSummary(s commands.Summary) SummaryResponse {
	var resp SummaryResponse
	if err := copier.Copy(&resp, &s); err != nil {
		slog.Error("failed to map summary response", "error", err.Error())
	}
	resp.Status = s.Status.String()
	resp.Method = s.Method.String()
	return resp
}

func FromProceedResult(r commands.ProceedResult) ProceedResponse {
	resp := ProceedResponse{
		Outcome: string(r.Outcome),
		Summary: FromSummary(r.Summary),
		Owed:    r.Owed,
	}
	if r.Card != nil {
		resp.Card = &CardDetailsResponse{
			Number:   r.Card.Number,
			Holder:   r.Card.Holder,
			Currency: r.Card.Currency,
		}
	}
	return resp
}

func FromReview(v commands.ReviewView) ReviewResponse {
	return ReviewResponse{
		Kind:    string(v.Kind),
		FileRef: v.FileRef,
		Text:    v.Text,
		Comment: v.Comment,
	}
}

func FromMixedResult(r commands.MixedResult) MixedAmountResponse {
	return MixedAmountResponse{
		Reserved:      r.Reserved,
		RemainingCard: r.RemainingCard,
		Card: CardDetailsResponse{
			Number:   r.Card.Number,
			Holder:   r.Card.Holder,
			Currency: r.Card.Currency,
		},
	}
}

func FromSummaryView(v queries.SummaryView) SummaryResponse {
	var resp SummaryResponse
	if err := copier.Copy(&resp, &v); err != nil {
		slog.Error("failed to map summary response", "error", err.Error())
	}
	resp.Status = v.Status.String()
	resp.Method = v.Method.String()
	return resp
}

func FromCartView(v queries.CartView) CartResponse {
	var resp CartResponse
	if err := copier.Copy(&resp, &v); err != nil {
		slog.Error("failed to map cart response", "error", err.Error())
	}
	resp.Status = v.Status.String()
	return resp
}

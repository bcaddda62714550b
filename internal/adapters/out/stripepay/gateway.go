// Package stripepay implements the payment gateway port on top of Stripe.
// Card orders get a payment intent; saved cards are exchanged for Stripe
// tokens so raw numbers never reach storage.
package stripepay

import (
	"context"
	"strconv"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// Gateway is a Stripe-backed implementation of ports.PaymentGateway.
type Gateway struct {
	api *client.API
}

// NewGateway creates a gateway using the given Stripe secret key.
func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// CreateIntent registers a pending charge and returns the intent identifier.
func (g *Gateway) CreateIntent(ctx context.Context, amount kernel.Money, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount.Cents()),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ID, nil
}

// ConfirmIntent confirms the intent and reports whether the charge succeeded.
func (g *Gateway) ConfirmIntent(ctx context.Context, intentID string) (bool, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return false, err
	}

	return intent.Status == stripe.PaymentIntentStatusSucceeded ||
		intent.Status == stripe.PaymentIntentStatusRequiresCapture, nil
}

// TokenizeCard exchanges raw card details for a reusable Stripe token and the
// card brand reported by Stripe.
func (g *Gateway) TokenizeCard(ctx context.Context, card paymentmethod.CardDetails) (string, string, error) {
	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(card.Number()),
			ExpMonth: stripe.String(strconv.Itoa(card.ExpiryMonth())),
			ExpYear:  stripe.String(strconv.Itoa(card.ExpiryYear())),
			CVC:      stripe.String(card.CVV()),
		},
	}
	params.Context = ctx

	token, err := g.api.Tokens.New(params)
	if err != nil {
		return "", "", err
	}

	return token.ID, string(token.Card.Brand), nil
}

package booking

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway creates payment intents with an external processor.
type PaymentGateway interface {
	// CreateIntent requests an intent for the amount in minor units and
	// returns the processor's client secret.
	CreateIntent(amount int64) (string, error)
}

// StripeGateway implements PaymentGateway against the Stripe API. The API key
// is set process-wide in main via stripe.Key.
type StripeGateway struct{}

// CreateIntent requests a card payment intent in USD.
func (StripeGateway) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

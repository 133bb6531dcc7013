package exchange

import (
	"context"
	"fmt"
	rates "go-currency-rates"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount rates.Amount, from rates.Currency, to rates.Currency) (rates.Exchanged, error)
}

// LookupFunc for looking up exchange rates against a base currency.
// Implementations must be safe for concurrent use.
type LookupFunc func(base rates.Currency) (rates.Rates, error)

// LookupWithTable looks up rates in the built-in table, rebased to the
// requested currency via cross rates.
func LookupWithTable() LookupFunc {
	return rates.Rebased
}

// service converts currencies with rates from a LookupFunc
type service struct {
	lookup LookupFunc
}

// NewService constructs a valid Service
func NewService(lookup LookupFunc) Service {
	return &service{
		lookup: lookup,
	}
}

// Convert computes a conversion from one currency to another. With the
// built-in table, Convert(a, "USD", c) multiplies by c's rate and
// Convert(a, c, "USD") divides by it.
func (s *service) Convert(_ context.Context, amount rates.Amount, from rates.Currency, to rates.Currency) (rates.Exchanged, error) {
	fromRates, err := s.lookup(from)
	if err != nil {
		return rates.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	rate, ok := fromRates[to]
	if !ok {
		return rates.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, rates.ErrUnknownCurrency)
	}

	result := rates.Exchanged{
		Rate:   rate,
		Amount: rates.Amount(float64(rate) * float64(amount)),
	}

	return result, nil
}

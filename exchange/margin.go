package exchange

import (
	"context"
	"fmt"
	rates "go-currency-rates"
)

// marginService decorates an exchange.Service with a percentage markup,
// simulating the spread payment services take on conversions.
type marginService struct {
	// percent markup, e.g. 3.5 for a 3.5% margin
	percent float64

	// next the Service being decorated
	next Service
}

// NewMarginService returns a Service that reduces the effective rate by
// percent. A zero percent leaves conversions unchanged. percent must be
// less than 100 and not negative.
func NewMarginService(percent float64, s Service) (Service, error) {
	if percent < 0 || percent >= 100 {
		return nil, fmt.Errorf("margin percent out of range: %v", percent)
	}
	return &marginService{
		percent: percent,
		next:    s,
	}, nil
}

func (s *marginService) Convert(ctx context.Context, amount rates.Amount, from rates.Currency, to rates.Currency) (rates.Exchanged, error) {
	result, err := s.next.Convert(ctx, amount, from, to)
	if err != nil {
		return rates.Exchanged{}, err
	}

	factor := 1 - s.percent/100
	result.Rate = rates.Rate(float64(result.Rate) * factor)
	result.Amount = rates.Amount(float64(result.Amount) * factor)

	return result, nil
}

package exchange

import (
	"context"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMarginService_Convert(t *testing.T) {
	service, err := NewMarginService(3.5, NewService(LookupWithTable()))
	assert.NoError(t, err)

	got, err := service.Convert(context.Background(), 100, "USD", "EUR")
	assert.NoError(t, err)
	assert.InDelta(t, 0.8516*0.965, float64(got.Rate), 1e-9)
	assert.InDelta(t, 85.16*0.965, float64(got.Amount), 1e-9)
}

func TestMarginService_ZeroIsIdentity(t *testing.T) {
	plain := NewService(LookupWithTable())
	service, err := NewMarginService(0, plain)
	assert.NoError(t, err)

	want, err := plain.Convert(context.Background(), 100, "USD", "JPY")
	assert.NoError(t, err)
	got, err := service.Convert(context.Background(), 100, "USD", "JPY")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarginService_PercentOutOfRange(t *testing.T) {
	next := NewService(LookupWithTable())

	_, err := NewMarginService(-1, next)
	assert.Error(t, err)

	_, err = NewMarginService(100, next)
	assert.Error(t, err)
}

// Package rates exposes a fixed table of currency exchange rates against USD.
//
// Each supported currency is a typed constant, so conversions are plain
// arithmetic:
//
//	100 * rates.EUR   // 100 USD in EUR
//	100 / rates.EUR   // 100 EUR in USD
//
// Referencing a currency that isn't in the table fails to compile. Dynamic
// access goes through Lookup, which reports ErrUnknownCurrency instead.
package rates

import (
	"errors"
	"fmt"
)

// Currency a currency code
type Currency string

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate an exchange rate, expressed as units of target currency per one USD
type Rate float64

type Rates map[Currency]Rate

// Exchanged the result of a conversion: the rate applied and the amount produced
type Exchanged struct {
	Rate   Rate
	Amount Amount
}

// ErrUnknownCurrency reported when a code is not in the table
var ErrUnknownCurrency = errors.New("unknown currency")

// Rate constants. Snapshot values, not live quotes.
const (
	// Major world currencies
	USD Rate = 1.0
	EUR Rate = 0.8516
	GBP Rate = 0.7392
	JPY Rate = 147.05
	CNY Rate = 7.1228
	CHF Rate = 0.8044
	AUD Rate = 1.5386
	CAD Rate = 1.3815
	NZD Rate = 1.6842
	HKD Rate = 7.8123
	SGD Rate = 1.2854

	// European currencies
	SEK Rate = 9.5541
	NOK Rate = 10.1317
	DKK Rate = 6.3558
	PLN Rate = 3.6284
	CZK Rate = 20.876
	HUF Rate = 336.47
	RON Rate = 4.3205
	BGN Rate = 1.6656
	HRK Rate = 6.4158
	RSD Rate = 99.713
	ISK Rate = 122.84
	RUB Rate = 80.367
	UAH Rate = 41.274
	TRY Rate = 40.918

	// Asian currencies
	INR Rate = 87.437
	KRW Rate = 1387.6
	THB Rate = 32.405
	MYR Rate = 4.2173
	IDR Rate = 16289.0
	PHP Rate = 56.964
	VND Rate = 26213.0
	TWD Rate = 30.512
	PKR Rate = 283.71
	BDT Rate = 121.63
	LKR Rate = 301.24
	NPR Rate = 139.90
	MMK Rate = 2099.8
	KHR Rate = 4012.5

	// Middle East & Africa
	AED Rate = 3.6725
	SAR Rate = 3.7501
	ILS Rate = 3.3877
	EGP Rate = 48.512
	ZAR Rate = 17.648
	NGN Rate = 1532.9
	KES Rate = 129.21
	GHS Rate = 10.947
	MAD Rate = 9.0412
	QAR Rate = 3.6403
	KWD Rate = 0.30554
	BHD Rate = 0.37697
	OMR Rate = 0.38451
	JOD Rate = 0.70901

	// Americas
	MXN Rate = 18.672
	BRL Rate = 5.4231
	ARS Rate = 1322.5
	CLP Rate = 965.84
	COP Rate = 4021.7
	PEN Rate = 3.5412
	UYU Rate = 40.083
)

// CurrencyCodes all supported codes, in table order
var CurrencyCodes = []Currency{
	"USD", "EUR", "GBP", "JPY", "CNY", "CHF", "AUD", "CAD", "NZD", "HKD", "SGD",
	"SEK", "NOK", "DKK", "PLN", "CZK", "HUF", "RON", "BGN", "HRK", "RSD", "ISK", "RUB", "UAH", "TRY",
	"INR", "KRW", "THB", "MYR", "IDR", "PHP", "VND", "TWD", "PKR", "BDT", "LKR", "NPR", "MMK", "KHR",
	"AED", "SAR", "ILS", "EGP", "ZAR", "NGN", "KES", "GHS", "MAD", "QAR", "KWD", "BHD", "OMR", "JOD",
	"MXN", "BRL", "ARS", "CLP", "COP", "PEN", "UYU",
}

// table populated once at load, read-only afterwards
var table = Rates{
	"USD": USD, "EUR": EUR, "GBP": GBP, "JPY": JPY, "CNY": CNY, "CHF": CHF,
	"AUD": AUD, "CAD": CAD, "NZD": NZD, "HKD": HKD, "SGD": SGD,
	"SEK": SEK, "NOK": NOK, "DKK": DKK, "PLN": PLN, "CZK": CZK, "HUF": HUF,
	"RON": RON, "BGN": BGN, "HRK": HRK, "RSD": RSD, "ISK": ISK, "RUB": RUB,
	"UAH": UAH, "TRY": TRY,
	"INR": INR, "KRW": KRW, "THB": THB, "MYR": MYR, "IDR": IDR, "PHP": PHP,
	"VND": VND, "TWD": TWD, "PKR": PKR, "BDT": BDT, "LKR": LKR, "NPR": NPR,
	"MMK": MMK, "KHR": KHR,
	"AED": AED, "SAR": SAR, "ILS": ILS, "EGP": EGP, "ZAR": ZAR, "NGN": NGN,
	"KES": KES, "GHS": GHS, "MAD": MAD, "QAR": QAR, "KWD": KWD, "BHD": BHD,
	"OMR": OMR, "JOD": JOD,
	"MXN": MXN, "BRL": BRL, "ARS": ARS, "CLP": CLP, "COP": COP, "PEN": PEN,
	"UYU": UYU,
}

// Supported reports whether currency is in the table
func Supported(currency Currency) bool {
	_, ok := table[currency]
	return ok
}

// Lookup returns the rate for currency against USD
func Lookup(currency Currency) (Rate, error) {
	rate, ok := table[currency]
	if !ok {
		return 0, fmt.Errorf("lookup [%v]: %w", currency, ErrUnknownCurrency)
	}
	return rate, nil
}

// All returns a copy of the table. Callers may mutate the copy freely.
func All() Rates {
	rates := make(Rates, len(table))
	for currency, rate := range table {
		rates[currency] = rate
	}
	return rates
}

// Rebased derives the table expressed against another base currency using
// cross rates. Rebased("USD") is equivalent to All.
func Rebased(base Currency) (Rates, error) {
	baseRate, ok := table[base]
	if !ok {
		return nil, fmt.Errorf("rebase [%v]: %w", base, ErrUnknownCurrency)
	}
	rates := make(Rates, len(table))
	for currency, rate := range table {
		rates[currency] = rate / baseRate
	}
	return rates, nil
}

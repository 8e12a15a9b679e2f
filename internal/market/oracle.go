// Package market provides the price-lookup capability consumed by the
// assistant: a Quote record, an Oracle interface, a CoinGecko-backed
// implementation, and a TTL cache decorator.
package market

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupportedSymbol is returned for symbols the oracle does not track.
var ErrUnsupportedSymbol = errors.New("market: unsupported symbol")

// Quote is a point-in-time market data record for one currency.
type Quote struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	MarketCap         float64   `json:"market_cap"`
	Rank              int       `json:"rank"`
	Change24h         float64   `json:"change_24h"` // percent
	Change7d          float64   `json:"change_7d"`  // percent
	Volume24h         float64   `json:"volume_24h"`
	CirculatingSupply float64   `json:"circulating_supply"`
	ATH               float64   `json:"ath"`
	ATHDate           time.Time `json:"ath_date"`
	FromATHPct        float64   `json:"from_ath_pct"` // percent below the ATH (negative)
	ATL               float64   `json:"atl"`
	ATLDate           time.Time `json:"atl_date"`
	FromATLPct        float64   `json:"from_atl_pct"` // percent above the ATL
	FetchedAt         time.Time `json:"fetched_at"`
}

// Oracle looks up current market data for a currency. Implementations may
// be slow or fail; callers must treat errors as "no data" and degrade.
type Oracle interface {
	Lookup(ctx context.Context, symbol string) (*Quote, error)
}

package market

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// StaticOracle serves fixture quotes without network access. Used by the
// chat REPL when no market endpoint is configured, and by tests.
type StaticOracle struct {
	quotes map[string]*Quote
}

// NewStaticOracle creates a static oracle with representative fixture data.
func NewStaticOracle() *StaticOracle {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return &StaticOracle{
		quotes: map[string]*Quote{
			"aptos": {
				Symbol: "aptos", Name: "Aptos", Price: 8.42, MarketCap: 4.1e9,
				Rank: 28, Change24h: 1.8, Change7d: -3.2, Volume24h: 1.4e8,
				CirculatingSupply: 4.9e8,
				ATH:               19.92, ATHDate: date(2023, time.January, 26), FromATHPct: -57.7,
				ATL: 3.08, ATLDate: date(2022, time.December, 29), FromATLPct: 173.4,
			},
			"bitcoin": {
				Symbol: "bitcoin", Name: "Bitcoin", Price: 67250, MarketCap: 1.33e12,
				Rank: 1, Change24h: 0.6, Change7d: 2.4, Volume24h: 2.8e10,
				CirculatingSupply: 1.97e7,
				ATH:               73750, ATHDate: date(2024, time.March, 14), FromATHPct: -8.8,
				ATL: 67.81, ATLDate: date(2013, time.July, 6), FromATLPct: 99077.0,
			},
			"ethereum": {
				Symbol: "ethereum", Name: "Ethereum", Price: 3180, MarketCap: 3.8e11,
				Rank: 2, Change24h: -0.4, Change7d: 1.1, Volume24h: 1.2e10,
				CirculatingSupply: 1.2e8,
				ATH:               4878, ATHDate: date(2021, time.November, 10), FromATHPct: -34.8,
				ATL: 0.43, ATLDate: date(2015, time.October, 20), FromATLPct: 738000.0,
			},
		},
	}
}

func (s *StaticOracle) Lookup(_ context.Context, symbol string) (*Quote, error) {
	key := strings.ToLower(symbol)
	if id, ok := coinIDs[key]; ok {
		key = id
	}
	q, ok := s.quotes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbol, symbol)
	}
	copied := *q
	copied.FetchedAt = time.Now().UTC()
	return &copied, nil
}

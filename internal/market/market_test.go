package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// countingOracle records lookups and returns a fixed quote or error.
type countingOracle struct {
	mu    sync.Mutex
	calls int
	quote *Quote
	err   error
}

func (o *countingOracle) Lookup(_ context.Context, symbol string) (*Quote, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if o.err != nil {
		return nil, o.err
	}
	return o.quote, nil
}

func (o *countingOracle) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func TestCachedOracleHitsCache(t *testing.T) {
	inner := &countingOracle{quote: &Quote{Symbol: "aptos", Price: 8.5}}
	cached := NewCachedOracle(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		q, err := cached.Lookup(ctx, "aptos")
		if err != nil {
			t.Fatalf("Lookup[%d]: %v", i, err)
		}
		if q.Price != 8.5 {
			t.Errorf("unexpected price %f", q.Price)
		}
	}

	if inner.callCount() != 1 {
		t.Errorf("expected 1 upstream call, got %d", inner.callCount())
	}
}

func TestCachedOracleDoesNotCacheErrors(t *testing.T) {
	inner := &countingOracle{err: errors.New("boom")}
	cached := NewCachedOracle(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := cached.Lookup(ctx, "aptos"); err == nil {
			t.Fatal("expected error")
		}
	}

	if inner.callCount() != 2 {
		t.Errorf("expected errors to pass through uncached, got %d calls", inner.callCount())
	}
}

func TestStaticOracleKnownSymbols(t *testing.T) {
	oracle := NewStaticOracle()
	ctx := context.Background()

	for _, symbol := range []string{"aptos", "apt", "bitcoin", "btc", "ethereum", "eth"} {
		q, err := oracle.Lookup(ctx, symbol)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", symbol, err)
		}
		if q.Price <= 0 || q.ATH <= 0 {
			t.Errorf("fixture quote for %s looks wrong: %+v", symbol, q)
		}
	}

	if _, err := oracle.Lookup(ctx, "dogecoin"); !errors.Is(err, ErrUnsupportedSymbol) {
		t.Errorf("expected ErrUnsupportedSymbol, got %v", err)
	}
}

func TestCoinGeckoLookup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/aptos" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"symbol": "apt",
			"name": "Aptos",
			"market_data": {
				"current_price": {"usd": 8.42},
				"market_cap": {"usd": 4100000000},
				"market_cap_rank": 28,
				"price_change_percentage_24h": 1.8,
				"price_change_percentage_7d": -3.2,
				"total_volume": {"usd": 140000000},
				"circulating_supply": 490000000,
				"ath": {"usd": 19.92},
				"ath_change_percentage": {"usd": -57.7},
				"ath_date": {"usd": "2023-01-26T00:00:00.000Z"},
				"atl": {"usd": 3.08},
				"atl_change_percentage": {"usd": 173.4},
				"atl_date": {"usd": "2022-12-29T00:00:00.000Z"}
			}
		}`))
	}))
	defer ts.Close()

	oracle := NewCoinGecko(ts.URL)
	q, err := oracle.Lookup(context.Background(), "apt")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if q.Symbol != "aptos" || q.Name != "Aptos" {
		t.Errorf("unexpected identity: %s/%s", q.Symbol, q.Name)
	}
	if q.Price != 8.42 || q.Rank != 28 {
		t.Errorf("unexpected quote: %+v", q)
	}
	if q.ATH != 19.92 || q.ATL != 3.08 {
		t.Errorf("unexpected extremes: ath=%f atl=%f", q.ATH, q.ATL)
	}
	if q.ATHDate.Year() != 2023 {
		t.Errorf("unexpected ath date %v", q.ATHDate)
	}
}

func TestCoinGeckoUnsupportedSymbol(t *testing.T) {
	oracle := NewCoinGecko("http://127.0.0.1:0")
	if _, err := oracle.Lookup(context.Background(), "dogecoin"); !errors.Is(err, ErrUnsupportedSymbol) {
		t.Errorf("expected ErrUnsupportedSymbol, got %v", err)
	}
}

func TestCoinGeckoServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	oracle := NewCoinGecko(ts.URL)
	if _, err := oracle.Lookup(context.Background(), "aptos"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

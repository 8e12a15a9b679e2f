package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public CoinGecko API endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// coinIDs maps the symbols the assistant understands to CoinGecko coin IDs.
var coinIDs = map[string]string{
	"aptos":    "aptos",
	"apt":      "aptos",
	"bitcoin":  "bitcoin",
	"btc":      "bitcoin",
	"ethereum": "ethereum",
	"eth":      "ethereum",
}

// CoinGecko is an Oracle backed by the CoinGecko REST API.
type CoinGecko struct {
	client *resty.Client
}

// NewCoinGecko creates a CoinGecko oracle. An empty baseURL uses the public
// API.
func NewCoinGecko(baseURL string) *CoinGecko {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &CoinGecko{client: client}
}

// coinResponse mirrors the subset of /coins/{id} the assistant consumes.
type coinResponse struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	MarketData struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
		MarketCap struct {
			USD float64 `json:"usd"`
		} `json:"market_cap"`
		MarketCapRank int `json:"market_cap_rank"`
		Change24h     float64 `json:"price_change_percentage_24h"`
		Change7d      float64 `json:"price_change_percentage_7d"`
		TotalVolume   struct {
			USD float64 `json:"usd"`
		} `json:"total_volume"`
		CirculatingSupply float64 `json:"circulating_supply"`
		ATH               struct {
			USD float64 `json:"usd"`
		} `json:"ath"`
		ATHChangePct struct {
			USD float64 `json:"usd"`
		} `json:"ath_change_percentage"`
		ATHDate struct {
			USD time.Time `json:"usd"`
		} `json:"ath_date"`
		ATL struct {
			USD float64 `json:"usd"`
		} `json:"atl"`
		ATLChangePct struct {
			USD float64 `json:"usd"`
		} `json:"atl_change_percentage"`
		ATLDate struct {
			USD time.Time `json:"usd"`
		} `json:"atl_date"`
	} `json:"market_data"`
}

func (c *CoinGecko) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	id, ok := coinIDs[strings.ToLower(symbol)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbol, symbol)
	}

	var coin coinResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&coin).
		SetQueryParams(map[string]string{
			"localization":   "false",
			"tickers":        "false",
			"community_data": "false",
			"developer_data": "false",
		}).
		Get("/coins/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetching quote for %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching quote for %s: status %d", id, resp.StatusCode())
	}

	md := coin.MarketData
	return &Quote{
		Symbol:            id,
		Name:              coin.Name,
		Price:             md.CurrentPrice.USD,
		MarketCap:         md.MarketCap.USD,
		Rank:              md.MarketCapRank,
		Change24h:         md.Change24h,
		Change7d:          md.Change7d,
		Volume24h:         md.TotalVolume.USD,
		CirculatingSupply: md.CirculatingSupply,
		ATH:               md.ATH.USD,
		ATHDate:           md.ATHDate.USD,
		FromATHPct:        md.ATHChangePct.USD,
		ATL:               md.ATL.USD,
		ATLDate:           md.ATLDate.USD,
		FromATLPct:        md.ATLChangePct.USD,
		FetchedAt:         time.Now().UTC(),
	}, nil
}

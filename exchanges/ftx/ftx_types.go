package ftx

import "github.com/takerfee/cclib/types"

// MarketsResponse wraps the market list.
type MarketsResponse struct {
	Success bool     `json:"success"`
	Result  []Market `json:"result"`
}

// MarketResponse wraps a single market.
type MarketResponse struct {
	Success bool   `json:"success"`
	Result  Market `json:"result"`
}

// Market holds one spot or derivative market definition with its current
// prices.
type Market struct {
	Name           string  `json:"name"`
	BaseCurrency   string  `json:"baseCurrency"`
	QuoteCurrency  string  `json:"quoteCurrency"`
	Underlying     string  `json:"underlying"`
	Type           string  `json:"type"`
	Enabled        bool    `json:"enabled"`
	PostOnly       bool    `json:"postOnly"`
	Restricted     bool    `json:"restricted"`
	Ask            float64 `json:"ask"`
	Bid            float64 `json:"bid"`
	Last           float64 `json:"last"`
	Price          float64 `json:"price"`
	PriceIncrement float64 `json:"priceIncrement"`
	SizeIncrement  float64 `json:"sizeIncrement"`
	MinProvideSize float64 `json:"minProvideSize"`
	Change1h       float64 `json:"change1h"`
	Change24h      float64 `json:"change24h"`
	ChangeBod      float64 `json:"changeBod"`
	QuoteVolume24h float64 `json:"quoteVolume24h"`
	VolumeUsd24h   float64 `json:"volumeUsd24h"`
}

// OrderbookResponse wraps an order book snapshot.
type OrderbookResponse struct {
	Success bool      `json:"success"`
	Result  Orderbook `json:"result"`
}

// Orderbook holds price levels as [price, size] pairs, best first.
type Orderbook struct {
	Asks [][2]float64 `json:"asks"`
	Bids [][2]float64 `json:"bids"`
}

// CandlesResponse wraps klines.
type CandlesResponse struct {
	Success bool     `json:"success"`
	Result  []Candle `json:"result"`
}

// Candle holds one kline. Time is the window start in milliseconds;
// StartTime repeats it as the venue's RFC3339 rendering.
type Candle struct {
	StartTime string     `json:"startTime"`
	Time      types.Time `json:"time"`
	Open      float64    `json:"open"`
	High      float64    `json:"high"`
	Low       float64    `json:"low"`
	Close     float64    `json:"close"`
	Volume    float64    `json:"volume"`
}

// AccountResponse wraps account information.
type AccountResponse struct {
	Success bool    `json:"success"`
	Result  Account `json:"result"`
}

// Account holds margin state and open positions.
type Account struct {
	Username                     string     `json:"username"`
	Collateral                   float64    `json:"collateral"`
	FreeCollateral               float64    `json:"freeCollateral"`
	TotalAccountValue            float64    `json:"totalAccountValue"`
	TotalPositionSize            float64    `json:"totalPositionSize"`
	InitialMarginRequirement     float64    `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement float64    `json:"maintenanceMarginRequirement"`
	MarginFraction               float64    `json:"marginFraction"`
	OpenMarginFraction           float64    `json:"openMarginFraction"`
	Leverage                     float64    `json:"leverage"`
	BackstopProvider             bool       `json:"backstopProvider"`
	Liquidating                  bool       `json:"liquidating"`
	MakerFee                     float64    `json:"makerFee"`
	TakerFee                     float64    `json:"takerFee"`
	Positions                    []Position `json:"positions"`
}

// BalancesResponse wraps wallet balances.
type BalancesResponse struct {
	Success bool      `json:"success"`
	Result  []Balance `json:"result"`
}

// Balance holds one coin's wallet balance.
type Balance struct {
	Coin                   string  `json:"coin"`
	Free                   float64 `json:"free"`
	Total                  float64 `json:"total"`
	SpotBorrow             float64 `json:"spotBorrow"`
	AvailableWithoutBorrow float64 `json:"availableWithoutBorrow"`
	UsdValue               float64 `json:"usdValue"`
}

// PositionsResponse wraps open positions.
type PositionsResponse struct {
	Success bool       `json:"success"`
	Result  []Position `json:"result"`
}

// Position holds one futures position.
type Position struct {
	Future                       string  `json:"future"`
	Side                         string  `json:"side"`
	Size                         float64 `json:"size"`
	NetSize                      float64 `json:"netSize"`
	OpenSize                     float64 `json:"openSize"`
	Cost                         float64 `json:"cost"`
	EntryPrice                   float64 `json:"entryPrice"`
	EstimatedLiquidationPrice    float64 `json:"estimatedLiquidationPrice"`
	InitialMarginRequirement     float64 `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement float64 `json:"maintenanceMarginRequirement"`
	LongOrderSize                float64 `json:"longOrderSize"`
	ShortOrderSize               float64 `json:"shortOrderSize"`
	RealizedPnl                  float64 `json:"realizedPnl"`
	UnrealizedPnl                float64 `json:"unrealizedPnl"`
	RecentAverageOpenPrice       float64 `json:"recentAverageOpenPrice"`
	RecentBreakEvenPrice         float64 `json:"recentBreakEvenPrice"`
	RecentPnl                    float64 `json:"recentPnl"`
}

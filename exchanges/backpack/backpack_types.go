package backpack

import "github.com/takerfee/cclib/types"

// Asset holds one supported asset and its chain level transfer rules.
type Asset struct {
	Symbol string  `json:"symbol"`
	Tokens []Token `json:"tokens"`
}

// Token holds deposit and withdrawal rules for an asset on one chain.
type Token struct {
	Blockchain        string       `json:"blockchain"`
	DepositEnabled    bool         `json:"depositEnabled"`
	MinimumDeposit    types.Number `json:"minimumDeposit"`
	WithdrawEnabled   bool         `json:"withdrawEnabled"`
	MinimumWithdrawal types.Number `json:"minimumWithdrawal"`
	MaximumWithdrawal types.Number `json:"maximumWithdrawal"`
	WithdrawalFee     types.Number `json:"withdrawalFee"`
}

// Market holds one market definition.
type Market struct {
	Symbol         string        `json:"symbol"`
	BaseSymbol     string        `json:"baseSymbol"`
	QuoteSymbol    string        `json:"quoteSymbol"`
	MarketType     string        `json:"marketType"`
	OrderBookState string        `json:"orderBookState"`
	Filters        MarketFilters `json:"filters"`
}

// MarketFilters holds price and quantity constraints for a market.
type MarketFilters struct {
	Price    PriceFilter    `json:"price"`
	Quantity QuantityFilter `json:"quantity"`
}

// PriceFilter bounds order prices.
type PriceFilter struct {
	MinPrice types.Number `json:"minPrice"`
	MaxPrice types.Number `json:"maxPrice"`
	TickSize types.Number `json:"tickSize"`
}

// QuantityFilter bounds order sizes.
type QuantityFilter struct {
	MinQuantity types.Number `json:"minQuantity"`
	MaxQuantity types.Number `json:"maxQuantity"`
	StepSize    types.Number `json:"stepSize"`
}

// Ticker holds a 24h market snapshot. All numerics arrive quoted.
type Ticker struct {
	Symbol             string       `json:"symbol"`
	FirstPrice         types.Number `json:"firstPrice"`
	LastPrice          types.Number `json:"lastPrice"`
	PriceChange        types.Number `json:"priceChange"`
	PriceChangePercent types.Number `json:"priceChangePercent"`
	High               types.Number `json:"high"`
	Low                types.Number `json:"low"`
	Trades             types.Number `json:"trades"`
	Volume             types.Number `json:"volume"`
	QuoteVolume        types.Number `json:"quoteVolume"`
}

// Candle holds one kline. Window boundaries arrive as venue local
// datetime strings.
type Candle struct {
	Start       string       `json:"start"`
	End         string       `json:"end"`
	Open        types.Number `json:"open"`
	High        types.Number `json:"high"`
	Low         types.Number `json:"low"`
	Close       types.Number `json:"close"`
	Volume      types.Number `json:"volume"`
	QuoteVolume types.Number `json:"quoteVolume"`
	Trades      types.Number `json:"trades"`
}

// Depth holds the order book with levels as [price, size] pairs.
type Depth struct {
	Asks         [][2]types.Number `json:"asks"`
	Bids         [][2]types.Number `json:"bids"`
	LastUpdateID types.Number      `json:"lastUpdateId"`
	Timestamp    types.Time        `json:"timestamp"`
}

package bybit

import (
	"encoding/json"

	"github.com/takerfee/cclib/types"
)

// BaseResponse is the envelope shared by the legacy v2 endpoints.
type BaseResponse struct {
	RetCode int64  `json:"ret_code"`
	RetMsg  string `json:"ret_msg"`
	ExtCode string `json:"ext_code"`
	ExtInfo string `json:"ext_info"`
	TimeNow string `json:"time_now"`
}

// SpotSymbolsResponse wraps the spot instrument list.
type SpotSymbolsResponse struct {
	BaseResponse
	Result []SpotSymbol `json:"result"`
}

// SpotSymbol holds one spot instrument definition.
type SpotSymbol struct {
	Name           string       `json:"name"`
	Alias          string       `json:"alias"`
	BaseCurrency   string       `json:"baseCurrency"`
	QuoteCurrency  string       `json:"quoteCurrency"`
	BasePrecision  types.Number `json:"basePrecision"`
	QuotePrecision types.Number `json:"quotePrecision"`
	MinTradeQty    types.Number `json:"minTradeQuantity"`
	MinTradeAmount types.Number `json:"minTradeAmount"`
	MaxTradeQty    types.Number `json:"maxTradeQuantity"`
	MaxTradeAmount types.Number `json:"maxTradeAmount"`
}

// SpotCandlesResponse wraps spot klines.
type SpotCandlesResponse struct {
	BaseResponse
	Result []SpotCandle `json:"result"`
}

// SpotCandle holds one spot kline delivered as a positional array.
type SpotCandle struct {
	StartTime        types.Time
	Open             types.Number
	High             types.Number
	Low              types.Number
	Close            types.Number
	Volume           types.Number
	EndTime          types.Time
	QuoteVolume      types.Number
	TradeCount       int64
	TakerBaseVolume  types.Number
	TakerQuoteVolume types.Number
}

// UnmarshalJSON decodes a positional kline array.
func (c *SpotCandle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[11]interface{}{
		&c.StartTime, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume,
		&c.EndTime, &c.QuoteVolume, &c.TradeCount, &c.TakerBaseVolume,
		&c.TakerQuoteVolume})
}

// SymbolsResponse wraps the derivative instrument list.
type SymbolsResponse struct {
	BaseResponse
	Result []Symbol `json:"result"`
}

// Symbol holds one derivative instrument definition.
type Symbol struct {
	Name            string         `json:"name"`
	Alias           string         `json:"alias"`
	Status          string         `json:"status"`
	BaseCurrency    string         `json:"base_currency"`
	QuoteCurrency   string         `json:"quote_currency"`
	PriceScale      int64          `json:"price_scale"`
	TakerFee        types.Number   `json:"taker_fee"`
	MakerFee        types.Number   `json:"maker_fee"`
	FundingInterval int64          `json:"funding_interval"`
	LeverageFilter  LeverageFilter `json:"leverage_filter"`
	PriceFilter     PriceFilter    `json:"price_filter"`
	LotSizeFilter   LotSizeFilter  `json:"lot_size_filter"`
}

// LeverageFilter bounds instrument leverage.
type LeverageFilter struct {
	MinLeverage  types.Number `json:"min_leverage"`
	MaxLeverage  types.Number `json:"max_leverage"`
	LeverageStep types.Number `json:"leverage_step"`
}

// PriceFilter bounds instrument price increments.
type PriceFilter struct {
	MinPrice types.Number `json:"min_price"`
	MaxPrice types.Number `json:"max_price"`
	TickSize types.Number `json:"tick_size"`
}

// LotSizeFilter bounds instrument quantity increments.
type LotSizeFilter struct {
	MaxTradingQty types.Number `json:"max_trading_qty"`
	MinTradingQty types.Number `json:"min_trading_qty"`
	QtyStep       types.Number `json:"qty_step"`
}

// TickersResponse wraps derivative tickers.
type TickersResponse struct {
	BaseResponse
	Result []Ticker `json:"result"`
}

// Ticker holds one derivative ticker snapshot.
type Ticker struct {
	Symbol          string       `json:"symbol"`
	BidPrice        types.Number `json:"bid_price"`
	AskPrice        types.Number `json:"ask_price"`
	LastPrice       types.Number `json:"last_price"`
	PrevPrice24H    types.Number `json:"prev_price_24h"`
	Price24HPcnt    types.Number `json:"price_24h_pcnt"`
	HighPrice24H    types.Number `json:"high_price_24h"`
	LowPrice24H     types.Number `json:"low_price_24h"`
	MarkPrice       types.Number `json:"mark_price"`
	IndexPrice      types.Number `json:"index_price"`
	OpenInterest    types.Number `json:"open_interest"`
	Turnover24H     types.Number `json:"turnover_24h"`
	Volume24H       types.Number `json:"volume_24h"`
	FundingRate     types.Number `json:"funding_rate"`
	NextFundingTime string       `json:"next_funding_time"`
}

// CandlesResponse wraps derivative klines.
type CandlesResponse struct {
	BaseResponse
	Result []Candle `json:"result"`
}

// Candle holds one derivative kline. Open time arrives in unix seconds.
type Candle struct {
	Symbol   string       `json:"symbol"`
	Interval string       `json:"interval"`
	OpenTime types.Time   `json:"open_time"`
	Open     types.Number `json:"open"`
	High     types.Number `json:"high"`
	Low      types.Number `json:"low"`
	Close    types.Number `json:"close"`
	Volume   types.Number `json:"volume"`
	Turnover types.Number `json:"turnover"`
}

// WalletBalanceResponse wraps v2 wallet balances keyed by coin.
type WalletBalanceResponse struct {
	BaseResponse
	Result map[string]WalletBalance `json:"result"`
}

// WalletBalance holds one coin balance.
type WalletBalance struct {
	Equity           float64 `json:"equity"`
	AvailableBalance float64 `json:"available_balance"`
	UsedMargin       float64 `json:"used_margin"`
	OrderMargin      float64 `json:"order_margin"`
	PositionMargin   float64 `json:"position_margin"`
	WalletBalance    float64 `json:"wallet_balance"`
	RealisedPnl      float64 `json:"realised_pnl"`
	UnrealisedPnl    float64 `json:"unrealised_pnl"`
	CumRealisedPnl   float64 `json:"cum_realised_pnl"`
}

// PositionsResponse wraps v2 positions.
type PositionsResponse struct {
	BaseResponse
	Result []PositionEntry `json:"result"`
}

// PositionEntry pairs a position with its validity marker.
type PositionEntry struct {
	Data    Position `json:"data"`
	IsValid bool     `json:"is_valid"`
}

// Position holds one derivative position.
type Position struct {
	UserID         int64        `json:"user_id"`
	Symbol         string       `json:"symbol"`
	Side           string       `json:"side"`
	Size           float64      `json:"size"`
	PositionValue  types.Number `json:"position_value"`
	EntryPrice     types.Number `json:"entry_price"`
	Leverage       types.Number `json:"leverage"`
	LiqPrice       types.Number `json:"liq_price"`
	PositionMargin types.Number `json:"position_margin"`
	TakeProfit     types.Number `json:"take_profit"`
	StopLoss       types.Number `json:"stop_loss"`
	UnrealisedPnl  float64      `json:"unrealised_pnl"`
}

// V5Response is the envelope shared by the unified v5 endpoints.
type V5Response struct {
	RetCode int64      `json:"retCode"`
	RetMsg  string     `json:"retMsg"`
	Time    types.Time `json:"time"`
}

// V5TimeResponse wraps the venue clock.
type V5TimeResponse struct {
	V5Response
	Result V5Time `json:"result"`
}

// V5Time holds the venue clock readings.
type V5Time struct {
	TimeSecond types.Number `json:"timeSecond"`
	TimeNano   types.Number `json:"timeNano"`
}

// V5TickersResponse wraps unified tickers.
type V5TickersResponse struct {
	V5Response
	Result struct {
		Category string     `json:"category"`
		List     []V5Ticker `json:"list"`
	} `json:"result"`
}

// V5Ticker holds one unified ticker snapshot.
type V5Ticker struct {
	Symbol          string       `json:"symbol"`
	LastPrice       types.Number `json:"lastPrice"`
	IndexPrice      types.Number `json:"indexPrice"`
	MarkPrice       types.Number `json:"markPrice"`
	PrevPrice24H    types.Number `json:"prevPrice24h"`
	Price24HPcnt    types.Number `json:"price24hPcnt"`
	HighPrice24H    types.Number `json:"highPrice24h"`
	LowPrice24H     types.Number `json:"lowPrice24h"`
	OpenInterest    types.Number `json:"openInterest"`
	Turnover24H     types.Number `json:"turnover24h"`
	Volume24H       types.Number `json:"volume24h"`
	FundingRate     types.Number `json:"fundingRate"`
	NextFundingTime types.Time   `json:"nextFundingTime"`
	Bid1Price       types.Number `json:"bid1Price"`
	Bid1Size        types.Number `json:"bid1Size"`
	Ask1Price       types.Number `json:"ask1Price"`
	Ask1Size        types.Number `json:"ask1Size"`
}

// V5CandlesResponse wraps unified klines.
type V5CandlesResponse struct {
	V5Response
	Result struct {
		Category string     `json:"category"`
		Symbol   string     `json:"symbol"`
		List     []V5Candle `json:"list"`
	} `json:"result"`
}

// V5Candle holds one unified kline delivered as a positional array.
type V5Candle struct {
	StartTime types.Time
	Open      types.Number
	High      types.Number
	Low       types.Number
	Close     types.Number
	Volume    types.Number
	Turnover  types.Number
}

// UnmarshalJSON decodes a positional kline array.
func (c *V5Candle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[7]interface{}{
		&c.StartTime, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume,
		&c.Turnover})
}

// V5WalletBalanceResponse wraps unified wallet balances.
type V5WalletBalanceResponse struct {
	V5Response
	Result struct {
		List []V5WalletAccount `json:"list"`
	} `json:"result"`
}

// V5WalletAccount holds the balances of one unified account.
type V5WalletAccount struct {
	AccountType           string          `json:"accountType"`
	TotalEquity           types.Number    `json:"totalEquity"`
	TotalWalletBalance    types.Number    `json:"totalWalletBalance"`
	TotalMarginBalance    types.Number    `json:"totalMarginBalance"`
	TotalAvailableBalance types.Number    `json:"totalAvailableBalance"`
	Coin                  []V5CoinBalance `json:"coin"`
}

// V5CoinBalance holds one coin balance inside a unified account.
type V5CoinBalance struct {
	Coin                string       `json:"coin"`
	Equity              types.Number `json:"equity"`
	WalletBalance       types.Number `json:"walletBalance"`
	Locked              types.Number `json:"locked"`
	USDValue            types.Number `json:"usdValue"`
	UnrealisedPnl       types.Number `json:"unrealisedPnl"`
	CumRealisedPnl      types.Number `json:"cumRealisedPnl"`
	AvailableToWithdraw types.Number `json:"availableToWithdraw"`
}

// V5PositionsResponse wraps unified positions.
type V5PositionsResponse struct {
	V5Response
	Result struct {
		Category string       `json:"category"`
		List     []V5Position `json:"list"`
	} `json:"result"`
}

// V5Position holds one unified position.
type V5Position struct {
	PositionIdx    int64        `json:"positionIdx"`
	Symbol         string       `json:"symbol"`
	Side           string       `json:"side"`
	Size           types.Number `json:"size"`
	AvgPrice       types.Number `json:"avgPrice"`
	PositionValue  types.Number `json:"positionValue"`
	UnrealisedPnl  types.Number `json:"unrealisedPnl"`
	MarkPrice      types.Number `json:"markPrice"`
	LiqPrice       types.Number `json:"liqPrice"`
	Leverage       types.Number `json:"leverage"`
	TakeProfit     types.Number `json:"takeProfit"`
	StopLoss       types.Number `json:"stopLoss"`
	CreatedTime    types.Time   `json:"createdTime"`
	UpdatedTime    types.Time   `json:"updatedTime"`
	PositionStatus string       `json:"positionStatus"`
}

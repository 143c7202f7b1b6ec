package okx

import (
	"encoding/json"

	"github.com/takerfee/cclib/types"
)

// BaseResponse is the v5 envelope. Code is a string and "0" means success.
type BaseResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// SystemStatusResponse wraps maintenance windows.
type SystemStatusResponse struct {
	BaseResponse
	Data []SystemStatus `json:"data"`
}

// SystemStatus holds one maintenance window.
type SystemStatus struct {
	Title       string     `json:"title"`
	State       string     `json:"state"`
	Begin       types.Time `json:"begin"`
	End         types.Time `json:"end"`
	Href        string     `json:"href"`
	ServiceType string     `json:"serviceType"`
	System      string     `json:"system"`
	ScheDesc    string     `json:"scheDesc"`
}

// InstrumentsResponse wraps instrument definitions.
type InstrumentsResponse struct {
	BaseResponse
	Data []Instrument `json:"data"`
}

// Instrument holds one instrument definition.
type Instrument struct {
	InstType  string       `json:"instType"`
	InstID    string       `json:"instId"`
	Uly       string       `json:"uly"`
	Category  string       `json:"category"`
	BaseCcy   string       `json:"baseCcy"`
	QuoteCcy  string       `json:"quoteCcy"`
	SettleCcy string       `json:"settleCcy"`
	CtVal     types.Number `json:"ctVal"`
	CtMult    types.Number `json:"ctMult"`
	CtValCcy  string       `json:"ctValCcy"`
	CtType    string       `json:"ctType"`
	ListTime  types.Time   `json:"listTime"`
	ExpTime   types.Time   `json:"expTime"`
	Lever     types.Number `json:"lever"`
	TickSz    types.Number `json:"tickSz"`
	LotSz     types.Number `json:"lotSz"`
	MinSz     types.Number `json:"minSz"`
	State     string       `json:"state"`
}

// TickersResponse wraps ticker snapshots.
type TickersResponse struct {
	BaseResponse
	Data []Ticker `json:"data"`
}

// Ticker holds one 24h market snapshot.
type Ticker struct {
	InstType  string       `json:"instType"`
	InstID    string       `json:"instId"`
	Last      types.Number `json:"last"`
	LastSz    types.Number `json:"lastSz"`
	AskPx     types.Number `json:"askPx"`
	AskSz     types.Number `json:"askSz"`
	BidPx     types.Number `json:"bidPx"`
	BidSz     types.Number `json:"bidSz"`
	Open24h   types.Number `json:"open24h"`
	High24h   types.Number `json:"high24h"`
	Low24h    types.Number `json:"low24h"`
	VolCcy24h types.Number `json:"volCcy24h"`
	Vol24h    types.Number `json:"vol24h"`
	Ts        types.Time   `json:"ts"`
}

// CandlesResponse wraps klines.
type CandlesResponse struct {
	BaseResponse
	Data []Candle `json:"data"`
}

// Candle holds one kline delivered as a positional array of strings.
type Candle struct {
	Ts        types.Time
	Open      types.Number
	High      types.Number
	Low       types.Number
	Close     types.Number
	Volume    types.Number
	VolumeCcy types.Number
}

// UnmarshalJSON decodes a positional kline array.
func (c *Candle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[7]interface{}{
		&c.Ts, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume, &c.VolumeCcy})
}

// IndexCandlesResponse wraps index klines.
type IndexCandlesResponse struct {
	BaseResponse
	Data []IndexCandle `json:"data"`
}

// IndexCandle holds one index kline. Index series carry no volumes.
type IndexCandle struct {
	Ts    types.Time
	Open  types.Number
	High  types.Number
	Low   types.Number
	Close types.Number
}

// UnmarshalJSON decodes a positional index kline array.
func (c *IndexCandle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[5]interface{}{
		&c.Ts, &c.Open, &c.High, &c.Low, &c.Close})
}

// FundingRatesResponse wraps settled funding rates.
type FundingRatesResponse struct {
	BaseResponse
	Data []FundingRate `json:"data"`
}

// FundingRate holds one settled funding event.
type FundingRate struct {
	InstType     string       `json:"instType"`
	InstID       string       `json:"instId"`
	FundingRate  types.Number `json:"fundingRate"`
	RealizedRate types.Number `json:"realizedRate"`
	FundingTime  types.Time   `json:"fundingTime"`
}

// BalancesResponse wraps the unified account balance.
type BalancesResponse struct {
	BaseResponse
	Data []Balance `json:"data"`
}

// Balance holds account level equity with per currency detail.
type Balance struct {
	TotalEq types.Number    `json:"totalEq"`
	AdjEq   types.Number    `json:"adjEq"`
	IsoEq   types.Number    `json:"isoEq"`
	UTime   types.Time      `json:"uTime"`
	Details []BalanceDetail `json:"details"`
}

// BalanceDetail holds one currency's balances.
type BalanceDetail struct {
	Ccy       string       `json:"ccy"`
	Eq        types.Number `json:"eq"`
	CashBal   types.Number `json:"cashBal"`
	AvailBal  types.Number `json:"availBal"`
	AvailEq   types.Number `json:"availEq"`
	FrozenBal types.Number `json:"frozenBal"`
	OrdFrozen types.Number `json:"ordFrozen"`
	Liab      types.Number `json:"liab"`
	Upl       types.Number `json:"upl"`
	IsoEq     types.Number `json:"isoEq"`
	EqUsd     types.Number `json:"eqUsd"`
	UTime     types.Time   `json:"uTime"`
}

// TradeFeesResponse wraps the account fee schedule.
type TradeFeesResponse struct {
	BaseResponse
	Data []TradeFee `json:"data"`
}

// TradeFee holds fee rates for one product category. Negative values are
// rebates.
type TradeFee struct {
	Category string       `json:"category"`
	InstType string       `json:"instType"`
	Level    string       `json:"level"`
	Maker    types.Number `json:"maker"`
	Taker    types.Number `json:"taker"`
	Delivery types.Number `json:"delivery"`
	Exercise types.Number `json:"exercise"`
	Ts       types.Time   `json:"ts"`
}

// PositionsResponse wraps open positions.
type PositionsResponse struct {
	BaseResponse
	Data []Position `json:"data"`
}

// Position holds one open position.
type Position struct {
	InstType    string       `json:"instType"`
	InstID      string       `json:"instId"`
	MgnMode     string       `json:"mgnMode"`
	PosID       string       `json:"posId"`
	PosSide     string       `json:"posSide"`
	Pos         types.Number `json:"pos"`
	PosCcy      string       `json:"posCcy"`
	AvailPos    types.Number `json:"availPos"`
	AvgPx       types.Number `json:"avgPx"`
	Upl         types.Number `json:"upl"`
	UplRatio    types.Number `json:"uplRatio"`
	Lever       types.Number `json:"lever"`
	LiqPx       types.Number `json:"liqPx"`
	MarkPx      types.Number `json:"markPx"`
	Imr         types.Number `json:"imr"`
	Margin      types.Number `json:"margin"`
	MgnRatio    types.Number `json:"mgnRatio"`
	Mmr         types.Number `json:"mmr"`
	Ccy         string       `json:"ccy"`
	Last        types.Number `json:"last"`
	NotionalUsd types.Number `json:"notionalUsd"`
	Adl         types.Number `json:"adl"`
	CTime       types.Time   `json:"cTime"`
	UTime       types.Time   `json:"uTime"`
}

// BillsResponse wraps balance change records.
type BillsResponse struct {
	BaseResponse
	Data []Bill `json:"data"`
}

// Bill holds one balance change record.
type Bill struct {
	BillID   string       `json:"billId"`
	Ccy      string       `json:"ccy"`
	Bal      types.Number `json:"bal"`
	BalChg   types.Number `json:"balChg"`
	Sz       types.Number `json:"sz"`
	Pnl      types.Number `json:"pnl"`
	Fee      types.Number `json:"fee"`
	InstType string       `json:"instType"`
	InstID   string       `json:"instId"`
	MgnMode  string       `json:"mgnMode"`
	OrdID    string       `json:"ordId"`
	Type     string       `json:"type"`
	SubType  string       `json:"subType"`
	Notes    string       `json:"notes"`
	Ts       types.Time   `json:"ts"`
}

// AccountConfigResponse wraps account configuration.
type AccountConfigResponse struct {
	BaseResponse
	Data []AccountConfig `json:"data"`
}

// AccountConfig holds account level configuration.
type AccountConfig struct {
	UID        string `json:"uid"`
	AcctLv     string `json:"acctLv"`
	PosMode    string `json:"posMode"`
	AutoLoan   bool   `json:"autoLoan"`
	GreeksType string `json:"greeksType"`
	Level      string `json:"level"`
	LevelTmp   string `json:"levelTmp"`
	CtIsoMode  string `json:"ctIsoMode"`
	MgnIsoMode string `json:"mgnIsoMode"`
	Perm       string `json:"perm"`
}

// LeverageResponse wraps leverage settings.
type LeverageResponse struct {
	BaseResponse
	Data []Leverage `json:"data"`
}

// Leverage holds leverage for one instrument and margin mode.
type Leverage struct {
	InstID  string       `json:"instId"`
	MgnMode string       `json:"mgnMode"`
	PosSide string       `json:"posSide"`
	Lever   types.Number `json:"lever"`
}

// FixedLoanOrdersResponse wraps fixed loan borrowing orders.
type FixedLoanOrdersResponse struct {
	BaseResponse
	Data []FixedLoanOrder `json:"data"`
}

// FixedLoanOrder holds one fixed loan borrowing order.
type FixedLoanOrder struct {
	OrdID           string       `json:"ordId"`
	Ccy             string       `json:"ccy"`
	State           string       `json:"state"`
	Rate            types.Number `json:"rate"`
	ReqAmt          types.Number `json:"reqAmt"`
	ActualBorrowAmt types.Number `json:"actualBorrowAmt"`
	Term            string       `json:"term"`
	ExpiryTime      types.Time   `json:"expiryTime"`
	CTime           types.Time   `json:"cTime"`
	UTime           types.Time   `json:"uTime"`
}

// FixedLoanStatesResponse wraps fixed loan state transitions.
type FixedLoanStatesResponse struct {
	BaseResponse
	Data []FixedLoanState `json:"data"`
}

// FixedLoanState reports the state of a fixed loan order after an
// operation.
type FixedLoanState struct {
	OrdID string `json:"ordId"`
	State string `json:"state"`
}

// OrdersResponse wraps completed orders.
type OrdersResponse struct {
	BaseResponse
	Data []Order `json:"data"`
}

// Order holds one order record.
type Order struct {
	InstType  string       `json:"instType"`
	InstID    string       `json:"instId"`
	OrdID     string       `json:"ordId"`
	ClOrdID   string       `json:"clOrdId"`
	Tag       string       `json:"tag"`
	Px        types.Number `json:"px"`
	Sz        types.Number `json:"sz"`
	OrdType   string       `json:"ordType"`
	Side      string       `json:"side"`
	PosSide   string       `json:"posSide"`
	TdMode    string       `json:"tdMode"`
	AccFillSz types.Number `json:"accFillSz"`
	FillPx    types.Number `json:"fillPx"`
	TradeID   string       `json:"tradeId"`
	FillSz    types.Number `json:"fillSz"`
	FillTime  types.Time   `json:"fillTime"`
	AvgPx     types.Number `json:"avgPx"`
	State     string       `json:"state"`
	Lever     types.Number `json:"lever"`
	Fee       types.Number `json:"fee"`
	FeeCcy    string       `json:"feeCcy"`
	Pnl       types.Number `json:"pnl"`
	Category  string       `json:"category"`
	CTime     types.Time   `json:"cTime"`
	UTime     types.Time   `json:"uTime"`
}

// FillsResponse wraps transaction details.
type FillsResponse struct {
	BaseResponse
	Data []Fill `json:"data"`
}

// Fill holds one transaction detail.
type Fill struct {
	InstType string       `json:"instType"`
	InstID   string       `json:"instId"`
	TradeID  string       `json:"tradeId"`
	OrdID    string       `json:"ordId"`
	ClOrdID  string       `json:"clOrdId"`
	BillID   string       `json:"billId"`
	Tag      string       `json:"tag"`
	FillPx   types.Number `json:"fillPx"`
	FillSz   types.Number `json:"fillSz"`
	Side     string       `json:"side"`
	PosSide  string       `json:"posSide"`
	ExecType string       `json:"execType"`
	FeeCcy   string       `json:"feeCcy"`
	Fee      types.Number `json:"fee"`
	Ts       types.Time   `json:"ts"`
}

// OrderResultsResponse wraps order placement and amendment results.
type OrderResultsResponse struct {
	BaseResponse
	Data []OrderResult `json:"data"`
}

// OrderResult reports per order acceptance. SCode "0" means the order was
// accepted even when the envelope code is zero.
type OrderResult struct {
	ClOrdID string `json:"clOrdId"`
	OrdID   string `json:"ordId"`
	ReqID   string `json:"reqId"`
	Tag     string `json:"tag"`
	SCode   string `json:"sCode"`
	SMsg    string `json:"sMsg"`
}

// EasyConvertCurrencyListResponse wraps convertible small balances.
type EasyConvertCurrencyListResponse struct {
	BaseResponse
	Data []EasyConvertCurrencyList `json:"data"`
}

// EasyConvertCurrencyList holds convertible balances and target
// currencies.
type EasyConvertCurrencyList struct {
	FromData []EasyConvertFromData `json:"fromData"`
	ToCcy    []string              `json:"toCcy"`
}

// EasyConvertFromData holds one convertible balance.
type EasyConvertFromData struct {
	FromAmt types.Number `json:"fromAmt"`
	FromCcy string       `json:"fromCcy"`
}

// EasyConvertResponse wraps conversion results.
type EasyConvertResponse struct {
	BaseResponse
	Data []EasyConvertResult `json:"data"`
}

// EasyConvertResult holds one conversion outcome.
type EasyConvertResult struct {
	FromCcy    string       `json:"fromCcy"`
	ToCcy      string       `json:"toCcy"`
	FillFromSz types.Number `json:"fillFromSz"`
	FillToSz   types.Number `json:"fillToSz"`
	Status     string       `json:"status"`
	UTime      types.Time   `json:"uTime"`
}

// RebatesResponse wraps broker rebate rates.
type RebatesResponse struct {
	BaseResponse
	Data []Rebate `json:"data"`
}

// Rebate holds the rebate rate for one product line.
type Rebate struct {
	Rebate types.Number `json:"rebate"`
	Type   string       `json:"type"`
}

// RebatePerOrdersResponse wraps per order rebate file records.
type RebatePerOrdersResponse struct {
	BaseResponse
	Data []RebatePerOrder `json:"data"`
}

// RebatePerOrder holds one per order rebate file record.
type RebatePerOrder struct {
	Type     string     `json:"type"`
	Begin    types.Time `json:"begin"`
	End      types.Time `json:"end"`
	FileHref string     `json:"fileHref"`
	Ts       types.Time `json:"ts"`
}

// V3PositionsResponse wraps legacy v3 futures positions.
type V3PositionsResponse struct {
	Result  bool           `json:"result"`
	Holding [][]V3Position `json:"holding"`
}

// V3Position holds one legacy futures position.
type V3Position struct {
	InstrumentID     string       `json:"instrument_id"`
	MarginMode       string       `json:"margin_mode"`
	LongQty          types.Number `json:"long_qty"`
	LongAvailQty     types.Number `json:"long_avail_qty"`
	LongAvgCost      types.Number `json:"long_avg_cost"`
	ShortQty         types.Number `json:"short_qty"`
	ShortAvailQty    types.Number `json:"short_avail_qty"`
	ShortAvgCost     types.Number `json:"short_avg_cost"`
	LiquidationPrice types.Number `json:"liquidation_price"`
	RealisedPnl      types.Number `json:"realised_pnl"`
	Leverage         types.Number `json:"leverage"`
	Last             types.Number `json:"last"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
}

// V3AccountsResponse wraps legacy v3 futures accounts.
type V3AccountsResponse struct {
	Info map[string]V3Account `json:"info"`
}

// V3Account holds legacy futures equity for one currency.
type V3Account struct {
	Equity            types.Number `json:"equity"`
	MarginMode        string       `json:"margin_mode"`
	Margin            types.Number `json:"margin"`
	MarginFrozen      types.Number `json:"margin_frozen"`
	MarginRatio       types.Number `json:"margin_ratio"`
	RealizedPnl       types.Number `json:"realized_pnl"`
	UnrealizedPnl     types.Number `json:"unrealized_pnl"`
	TotalAvailBalance types.Number `json:"total_avail_balance"`
	CanWithdraw       types.Number `json:"can_withdraw"`
}

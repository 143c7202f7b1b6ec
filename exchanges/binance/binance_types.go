package binance

import (
	"encoding/json"
	"errors"

	"github.com/takerfee/cclib/types"
)

var errNilOrderRequest = errors.New("order request cannot be nil")

// SystemStatus holds venue availability; 0 normal, 1 maintenance
type SystemStatus struct {
	Status int64  `json:"status"`
	Msg    string `json:"msg"`
}

// ExchangeInfo holds spot trading rules and symbol information
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime types.Time   `json:"serverTime"`
	RateLimits []RateLimit  `json:"rateLimits"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// RateLimit holds a published request ceiling
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int64  `json:"intervalNum"`
	Limit         int64  `json:"limit"`
}

// SymbolInfo holds listing details for one spot symbol
type SymbolInfo struct {
	Symbol                 string   `json:"symbol"`
	Status                 string   `json:"status"`
	BaseAsset              string   `json:"baseAsset"`
	BaseAssetPrecision     int64    `json:"baseAssetPrecision"`
	QuoteAsset             string   `json:"quoteAsset"`
	QuotePrecision         int64    `json:"quotePrecision"`
	OrderTypes             []string `json:"orderTypes"`
	IcebergAllowed         bool     `json:"icebergAllowed"`
	OcoAllowed             bool     `json:"ocoAllowed"`
	IsSpotTradingAllowed   bool     `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed bool     `json:"isMarginTradingAllowed"`
	Permissions            []string `json:"permissions"`
}

// ServerTime holds the venue clock reading
type ServerTime struct {
	ServerTime types.Time `json:"serverTime"`
}

// TickerPrice holds the latest traded price for a symbol
type TickerPrice struct {
	Symbol string       `json:"symbol"`
	Price  types.Number `json:"price"`
	Time   types.Time   `json:"time,omitempty"`
}

// Candle holds kline data deserialised from the venue's positional array
// form
type Candle struct {
	OpenTime            types.Time
	Open                types.Number
	High                types.Number
	Low                 types.Number
	Close               types.Number
	Volume              types.Number
	CloseTime           types.Time
	QuoteAssetVolume    types.Number
	TradeCount          int64
	TakerBuyBaseVolume  types.Number
	TakerBuyQuoteVolume types.Number
}

// UnmarshalJSON decodes the positional kline array, discarding the unused
// trailing field
func (c *Candle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[11]interface{}{
		&c.OpenTime, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume,
		&c.CloseTime, &c.QuoteAssetVolume, &c.TradeCount,
		&c.TakerBuyBaseVolume, &c.TakerBuyQuoteVolume,
	})
}

// CoinConfig holds deposit and withdrawal configuration for one coin
type CoinConfig struct {
	Coin              string        `json:"coin"`
	Name              string        `json:"name"`
	Free              types.Number  `json:"free"`
	Locked            types.Number  `json:"locked"`
	Freeze            types.Number  `json:"freeze"`
	DepositAllEnable  bool          `json:"depositAllEnable"`
	WithdrawAllEnable bool          `json:"withdrawAllEnable"`
	Trading           bool          `json:"trading"`
	NetworkList       []CoinNetwork `json:"networkList"`
}

// CoinNetwork holds per network transfer settings for a coin
type CoinNetwork struct {
	Network         string       `json:"network"`
	Coin            string       `json:"coin"`
	WithdrawFee     types.Number `json:"withdrawFee"`
	WithdrawMin     types.Number `json:"withdrawMin"`
	DepositEnable   bool         `json:"depositEnable"`
	WithdrawEnable  bool         `json:"withdrawEnable"`
	IsDefault       bool         `json:"isDefault"`
	MinConfirm      int64        `json:"minConfirm"`
	UnLockConfirm   int64        `json:"unLockConfirm"`
	SpecialTips     string       `json:"specialTips"`
	DepositDesc     string       `json:"depositDesc"`
	WithdrawDesc    string       `json:"withdrawDesc"`
	AddressRegex    string       `json:"addressRegex"`
	MemoRegex       string       `json:"memoRegex"`
	EstimatedArrive int64        `json:"estimatedArrivalTime"`
}

// AccountInfo holds spot account balances and permissions
type AccountInfo struct {
	MakerCommission  int64            `json:"makerCommission"`
	TakerCommission  int64            `json:"takerCommission"`
	BuyerCommission  int64            `json:"buyerCommission"`
	SellerCommission int64            `json:"sellerCommission"`
	CanTrade         bool             `json:"canTrade"`
	CanWithdraw      bool             `json:"canWithdraw"`
	CanDeposit       bool             `json:"canDeposit"`
	UpdateTime       types.Time       `json:"updateTime"`
	AccountType      string           `json:"accountType"`
	Balances         []AccountBalance `json:"balances"`
	Permissions      []string         `json:"permissions"`
}

// AccountBalance holds free and locked amounts for one spot asset
type AccountBalance struct {
	Asset  string       `json:"asset"`
	Free   types.Number `json:"free"`
	Locked types.Number `json:"locked"`
}

// APITradingStatus holds the account's API trading indicator data
type APITradingStatus struct {
	Data struct {
		IsLocked           bool             `json:"isLocked"`
		PlannedRecoverTime types.Time       `json:"plannedRecoverTime"`
		TriggerCondition   map[string]int64 `json:"triggerCondition"`
		UpdateTime         types.Time       `json:"updateTime"`
	} `json:"data"`
}

// TransactionResponse holds the identifier a transfer style call returns
type TransactionResponse struct {
	TranID int64 `json:"tranId"`
}

// AssetTransferHistory holds paged universal transfer records
type AssetTransferHistory struct {
	Total int64                 `json:"total"`
	Rows  []AssetTransferRecord `json:"rows"`
}

// AssetTransferRecord holds one universal transfer
type AssetTransferRecord struct {
	Asset     string       `json:"asset"`
	Amount    types.Number `json:"amount"`
	Type      string       `json:"type"`
	Status    string       `json:"status"`
	TranID    int64        `json:"tranId"`
	Timestamp types.Time   `json:"timestamp"`
}

// Order holds the queryable state of a spot order
type Order struct {
	Symbol              string       `json:"symbol"`
	OrderID             int64        `json:"orderId"`
	OrderListID         int64        `json:"orderListId"`
	ClientOrderID       string       `json:"clientOrderId"`
	Price               types.Number `json:"price"`
	OrigQty             types.Number `json:"origQty"`
	ExecutedQty         types.Number `json:"executedQty"`
	CummulativeQuoteQty types.Number `json:"cummulativeQuoteQty"`
	Status              string       `json:"status"`
	TimeInForce         string       `json:"timeInForce"`
	Type                string       `json:"type"`
	Side                string       `json:"side"`
	StopPrice           types.Number `json:"stopPrice"`
	IcebergQty          types.Number `json:"icebergQty"`
	Time                types.Time   `json:"time"`
	UpdateTime          types.Time   `json:"updateTime"`
	IsWorking           bool         `json:"isWorking"`
}

// OrderRequest holds the caller supplied parameters for spot order
// placement
type OrderRequest struct {
	Symbol           string
	Side             string
	OrderType        string
	Quantity         float64
	QuoteOrderQty    float64
	Price            float64
	TimeInForce      string
	NewClientOrderID string
}

// OrderResponse holds the venue acknowledgement of a placed spot order
type OrderResponse struct {
	Symbol              string       `json:"symbol"`
	OrderID             int64        `json:"orderId"`
	OrderListID         int64        `json:"orderListId"`
	ClientOrderID       string       `json:"clientOrderId"`
	TransactTime        types.Time   `json:"transactTime"`
	Price               types.Number `json:"price"`
	OrigQty             types.Number `json:"origQty"`
	ExecutedQty         types.Number `json:"executedQty"`
	CummulativeQuoteQty types.Number `json:"cummulativeQuoteQty"`
	Status              string       `json:"status"`
	TimeInForce         string       `json:"timeInForce"`
	Type                string       `json:"type"`
	Side                string       `json:"side"`
	Fills               []OrderFill  `json:"fills"`
}

// OrderFill holds one execution contributing to an order acknowledgement
type OrderFill struct {
	Price           types.Number `json:"price"`
	Qty             types.Number `json:"qty"`
	Commission      types.Number `json:"commission"`
	CommissionAsset string       `json:"commissionAsset"`
}

// MarginPair holds one cross margin trading pair
type MarginPair struct {
	ID            int64  `json:"id"`
	Symbol        string `json:"symbol"`
	Base          string `json:"base"`
	Quote         string `json:"quote"`
	IsMarginTrade bool   `json:"isMarginTrade"`
	IsBuyAllowed  bool   `json:"isBuyAllowed"`
	IsSellAllowed bool   `json:"isSellAllowed"`
}

// BrokerNewUser reports referral linkage for the querying account
type BrokerNewUser struct {
	APIAgentCode  string `json:"apiAgentCode"`
	RebateWorking bool   `json:"rebateWorking"`
	IfNewUser     bool   `json:"ifNewUser"`
}

// BrokerRebates is the set of recent referral rebate records
type BrokerRebates []BrokerRebate

// BrokerRebate holds one referral rebate record
type BrokerRebate struct {
	CustomerID string       `json:"customerId"`
	Email      string       `json:"email"`
	Income     types.Number `json:"income"`
	Asset      string       `json:"asset"`
	Symbol     string       `json:"symbol"`
	Time       types.Time   `json:"time"`
}

// SubAccountTransfer holds one sub account to main account transfer
type SubAccountTransfer struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Asset string       `json:"asset"`
	Qty   types.Number `json:"qty"`
	Time  types.Time   `json:"time"`
}

// Income holds one income ledger record shared across API generations
type Income struct {
	Symbol     string       `json:"symbol"`
	IncomeType string       `json:"incomeType"`
	Income     types.Number `json:"income"`
	Asset      string       `json:"asset"`
	Info       string       `json:"info"`
	Time       types.Time   `json:"time"`
	TranID     int64        `json:"tranId"`
	TradeID    string       `json:"tradeId"`
}

// DustAssets holds the small balances convertible to BNB
type DustAssets struct {
	Details            []DustDetail `json:"details"`
	TotalTransferBtc   types.Number `json:"totalTransferBtc"`
	TotalTransferBNB   types.Number `json:"totalTransferBNB"`
	DribbletPercentage types.Number `json:"dribbletPercentage"`
}

// DustDetail holds one convertible small balance
type DustDetail struct {
	Asset            string       `json:"asset"`
	AssetFullName    string       `json:"assetFullName"`
	AmountFree       types.Number `json:"amountFree"`
	ToBTC            types.Number `json:"toBTC"`
	ToBNB            types.Number `json:"toBNB"`
	ToBNBOffExchange types.Number `json:"toBNBOffExchange"`
	Exchange         types.Number `json:"exchange"`
}

// DustTransferResponse holds the result of a dust conversion
type DustTransferResponse struct {
	TotalServiceCharge types.Number         `json:"totalServiceCharge"`
	TotalTransfered    types.Number         `json:"totalTransfered"`
	TransferResult     []DustTransferResult `json:"transferResult"`
}

// DustTransferResult holds one converted asset within a dust conversion
type DustTransferResult struct {
	Amount              types.Number `json:"amount"`
	FromAsset           string       `json:"fromAsset"`
	OperateTime         types.Time   `json:"operateTime"`
	ServiceChargeAmount types.Number `json:"serviceChargeAmount"`
	TranID              int64        `json:"tranId"`
	TransferedAmount    types.Number `json:"transferedAmount"`
}

// UExchangeInfo holds futures trading rules and symbols, shared by the
// USDT margined and coin margined APIs
type UExchangeInfo struct {
	Timezone   string        `json:"timezone"`
	ServerTime types.Time    `json:"serverTime"`
	RateLimits []RateLimit   `json:"rateLimits"`
	Symbols    []USymbolInfo `json:"symbols"`
}

// USymbolInfo holds listing details for one futures symbol
type USymbolInfo struct {
	Symbol            string     `json:"symbol"`
	Pair              string     `json:"pair"`
	ContractType      string     `json:"contractType"`
	DeliveryDate      types.Time `json:"deliveryDate"`
	OnboardDate       types.Time `json:"onboardDate"`
	Status            string     `json:"status"`
	BaseAsset         string     `json:"baseAsset"`
	QuoteAsset        string     `json:"quoteAsset"`
	MarginAsset       string     `json:"marginAsset"`
	PricePrecision    int64      `json:"pricePrecision"`
	QuantityPrecision int64      `json:"quantityPrecision"`
	ContractSize      int64      `json:"contractSize,omitempty"`
	UnderlyingType    string     `json:"underlyingType"`
}

// FundingRate holds one historical funding rate record
type FundingRate struct {
	Symbol      string       `json:"symbol"`
	FundingRate types.Number `json:"fundingRate"`
	FundingTime types.Time   `json:"fundingTime"`
	MarkPrice   types.Number `json:"markPrice"`
}

// OpenInterest holds one open interest statistics record
type OpenInterest struct {
	Symbol               string       `json:"symbol"`
	SumOpenInterest      types.Number `json:"sumOpenInterest"`
	SumOpenInterestValue types.Number `json:"sumOpenInterestValue"`
	Timestamp            types.Time   `json:"timestamp"`
}

// UBalance holds one USDT margined futures asset balance
type UBalance struct {
	AccountAlias       string       `json:"accountAlias"`
	Asset              string       `json:"asset"`
	Balance            types.Number `json:"balance"`
	CrossWalletBalance types.Number `json:"crossWalletBalance"`
	CrossUnPnl         types.Number `json:"crossUnPnl"`
	AvailableBalance   types.Number `json:"availableBalance"`
	MaxWithdrawAmount  types.Number `json:"maxWithdrawAmount"`
	MarginAvailable    bool         `json:"marginAvailable"`
	UpdateTime         types.Time   `json:"updateTime"`
}

// FuturesBalance holds one coin margined futures asset balance
type FuturesBalance struct {
	AccountAlias       string       `json:"accountAlias"`
	Asset              string       `json:"asset"`
	Balance            types.Number `json:"balance"`
	WithdrawAvailable  types.Number `json:"withdrawAvailable"`
	CrossWalletBalance types.Number `json:"crossWalletBalance"`
	CrossUnPnl         types.Number `json:"crossUnPnl"`
	AvailableBalance   types.Number `json:"availableBalance"`
	UpdateTime         types.Time   `json:"updateTime"`
}

// PositionRisk holds position risk data shared across futures APIs
type PositionRisk struct {
	Symbol           string       `json:"symbol"`
	PositionAmt      types.Number `json:"positionAmt"`
	EntryPrice       types.Number `json:"entryPrice"`
	MarkPrice        types.Number `json:"markPrice"`
	UnRealizedProfit types.Number `json:"unRealizedProfit"`
	LiquidationPrice types.Number `json:"liquidationPrice"`
	Leverage         types.Number `json:"leverage"`
	MaxNotionalValue types.Number `json:"maxNotionalValue"`
	MarginType       string       `json:"marginType"`
	IsolatedMargin   types.Number `json:"isolatedMargin"`
	IsAutoAddMargin  string       `json:"isAutoAddMargin"`
	PositionSide     string       `json:"positionSide"`
	UpdateTime       types.Time   `json:"updateTime"`
}

// UAccountInfo holds futures account details shared across futures APIs
type UAccountInfo struct {
	FeeTier                 int64              `json:"feeTier"`
	CanTrade                bool               `json:"canTrade"`
	CanDeposit              bool               `json:"canDeposit"`
	CanWithdraw             bool               `json:"canWithdraw"`
	TotalWalletBalance      types.Number       `json:"totalWalletBalance"`
	TotalUnrealizedProfit   types.Number       `json:"totalUnrealizedProfit"`
	TotalMarginBalance      types.Number       `json:"totalMarginBalance"`
	TotalPositionInitMargin types.Number       `json:"totalPositionInitialMargin"`
	AvailableBalance        types.Number       `json:"availableBalance"`
	MaxWithdrawAmount       types.Number       `json:"maxWithdrawAmount"`
	UpdateTime              types.Time         `json:"updateTime"`
	Assets                  []UAccountAsset    `json:"assets"`
	Positions               []UAccountPosition `json:"positions"`
}

// UAccountAsset holds one asset inside a futures account summary
type UAccountAsset struct {
	Asset            string       `json:"asset"`
	WalletBalance    types.Number `json:"walletBalance"`
	UnrealizedProfit types.Number `json:"unrealizedProfit"`
	MarginBalance    types.Number `json:"marginBalance"`
	MaintMargin      types.Number `json:"maintMargin"`
	AvailableBalance types.Number `json:"availableBalance"`
}

// UAccountPosition holds one position inside a futures account summary
type UAccountPosition struct {
	Symbol           string       `json:"symbol"`
	InitialMargin    types.Number `json:"initialMargin"`
	MaintMargin      types.Number `json:"maintMargin"`
	UnrealizedProfit types.Number `json:"unrealizedProfit"`
	PositionAmt      types.Number `json:"positionAmt"`
	EntryPrice       types.Number `json:"entryPrice"`
	Leverage         types.Number `json:"leverage"`
	PositionSide     string       `json:"positionSide"`
	UpdateTime       types.Time   `json:"updateTime"`
}

// LeverageResponse acknowledges a leverage change
type LeverageResponse struct {
	Leverage         int64        `json:"leverage"`
	MaxNotionalValue types.Number `json:"maxNotionalValue"`
	MaxQty           types.Number `json:"maxQty"`
	Symbol           string       `json:"symbol"`
}

// PositionSideDual reports the account's hedge mode setting
type PositionSideDual struct {
	DualSidePosition bool `json:"dualSidePosition"`
}

// MultiAssetsMargin reports the account's multi assets mode setting
type MultiAssetsMargin struct {
	MultiAssetsMargin bool `json:"multiAssetsMargin"`
}

// CodeMessage is the venue's bare acknowledgement envelope
type CodeMessage struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// ForceOrder holds one liquidation order record
type ForceOrder struct {
	OrderID       int64        `json:"orderId"`
	Symbol        string       `json:"symbol"`
	Status        string       `json:"status"`
	ClientOrderID string       `json:"clientOrderId"`
	Price         types.Number `json:"price"`
	AvgPrice      types.Number `json:"avgPrice"`
	OrigQty       types.Number `json:"origQty"`
	ExecutedQty   types.Number `json:"executedQty"`
	TimeInForce   string       `json:"timeInForce"`
	Type          string       `json:"type"`
	Side          string       `json:"side"`
	Time          types.Time   `json:"time"`
	UpdateTime    types.Time   `json:"updateTime"`
}

// FuturesUserTrade holds one account trade on coin margined futures
type FuturesUserTrade struct {
	Symbol          string       `json:"symbol"`
	ID              int64        `json:"id"`
	OrderID         int64        `json:"orderId"`
	Pair            string       `json:"pair"`
	Side            string       `json:"side"`
	Price           types.Number `json:"price"`
	Qty             types.Number `json:"qty"`
	RealizedPnl     types.Number `json:"realizedPnl"`
	MarginAsset     string       `json:"marginAsset"`
	BaseQty         types.Number `json:"baseQty"`
	Commission      types.Number `json:"commission"`
	CommissionAsset string       `json:"commissionAsset"`
	Time            types.Time   `json:"time"`
	PositionSide    string       `json:"positionSide"`
	Buyer           bool         `json:"buyer"`
	Maker           bool         `json:"maker"`
}

// PMOrderRequest holds the caller supplied parameters for portfolio margin
// order placement
type PMOrderRequest struct {
	Symbol           string
	Side             string
	OrderType        string
	Quantity         float64
	Price            float64
	PositionSide     string
	ReduceOnly       bool
	TimeInForce      string
	NewClientOrderID string
}

// PMOrderResponse holds the venue acknowledgement of a portfolio margin
// order action
type PMOrderResponse struct {
	OrderID       int64        `json:"orderId"`
	Symbol        string       `json:"symbol"`
	Status        string       `json:"status"`
	ClientOrderID string       `json:"clientOrderId"`
	Price         types.Number `json:"price"`
	AvgPrice      types.Number `json:"avgPrice"`
	OrigQty       types.Number `json:"origQty"`
	ExecutedQty   types.Number `json:"executedQty"`
	CumQty        types.Number `json:"cumQty"`
	CumQuote      types.Number `json:"cumQuote"`
	TimeInForce   string       `json:"timeInForce"`
	Type          string       `json:"type"`
	Side          string       `json:"side"`
	PositionSide  string       `json:"positionSide"`
	ReduceOnly    bool         `json:"reduceOnly"`
	UpdateTime    types.Time   `json:"updateTime"`
}

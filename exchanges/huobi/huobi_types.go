package huobi

import (
	"github.com/takerfee/cclib/types"
)

// BaseResponse is the envelope shared by the derivative endpoints.
type BaseResponse struct {
	Status  string     `json:"status"`
	Ch      string     `json:"ch"`
	Ts      types.Time `json:"ts"`
	ErrCode int64      `json:"err_code"`
	ErrMsg  string     `json:"err_msg"`
}

// HeartbeatResponse wraps the availability report.
type HeartbeatResponse struct {
	BaseResponse
	Data Heartbeat `json:"data"`
}

// Heartbeat reports per product line availability, 1 meaning available.
type Heartbeat struct {
	Heartbeat                       int64      `json:"heartbeat"`
	EstimatedRecoveryTime           types.Time `json:"estimated_recovery_time"`
	SwapHeartbeat                   int64      `json:"swap_heartbeat"`
	SwapEstimatedRecoveryTime       types.Time `json:"swap_estimated_recovery_time"`
	LinearSwapHeartbeat             int64      `json:"linear_swap_heartbeat"`
	LinearSwapEstimatedRecoveryTime types.Time `json:"linear_swap_estimated_recovery_time"`
}

// ContractInfoResponse wraps contract definitions.
type ContractInfoResponse struct {
	BaseResponse
	Data []ContractInfo `json:"data"`
}

// ContractInfo holds one contract definition across the three product lines.
type ContractInfo struct {
	Symbol            string  `json:"symbol"`
	ContractCode      string  `json:"contract_code"`
	ContractType      string  `json:"contract_type"`
	ContractSize      float64 `json:"contract_size"`
	PriceTick         float64 `json:"price_tick"`
	DeliveryDate      string  `json:"delivery_date"`
	DeliveryTime      string  `json:"delivery_time"`
	CreateDate        string  `json:"create_date"`
	ContractStatus    int64   `json:"contract_status"`
	SettlementDate    string  `json:"settlement_date"`
	SupportMarginMode string  `json:"support_margin_mode"`
}

// CandlesResponse wraps klines.
type CandlesResponse struct {
	BaseResponse
	Data []Candle `json:"data"`
}

// Candle holds one kline. The id field is the bucket open time in unix
// seconds.
type Candle struct {
	ID            types.Time `json:"id"`
	Open          float64    `json:"open"`
	Close         float64    `json:"close"`
	Low           float64    `json:"low"`
	High          float64    `json:"high"`
	Amount        float64    `json:"amount"`
	Vol           float64    `json:"vol"`
	TradeTurnover float64    `json:"trade_turnover"`
	Count         int64      `json:"count"`
}

// IndexResponse wraps index prices.
type IndexResponse struct {
	BaseResponse
	Data []Index `json:"data"`
}

// Index holds one index price reading.
type Index struct {
	ContractCode string     `json:"contract_code"`
	IndexPrice   float64    `json:"index_price"`
	IndexTs      types.Time `json:"index_ts"`
}

// MarkPriceCandlesResponse wraps mark price klines.
type MarkPriceCandlesResponse struct {
	BaseResponse
	Data []MarkPriceCandle `json:"data"`
}

// MarkPriceCandle holds one mark price kline. Values arrive as strings on
// this endpoint.
type MarkPriceCandle struct {
	ID            types.Time   `json:"id"`
	Open          types.Number `json:"open"`
	Close         types.Number `json:"close"`
	Low           types.Number `json:"low"`
	High          types.Number `json:"high"`
	Amount        types.Number `json:"amount"`
	Vol           types.Number `json:"vol"`
	TradeTurnover types.Number `json:"trade_turnover"`
}

// MarginAccountsResponse wraps cross margin account equity.
type MarginAccountsResponse struct {
	BaseResponse
	Data []MarginAccount `json:"data"`
}

// MarginAccount holds cross margin account equity for one margin account.
type MarginAccount struct {
	MarginMode        string           `json:"margin_mode"`
	MarginAccount     string           `json:"margin_account"`
	MarginAsset       string           `json:"margin_asset"`
	MarginBalance     float64          `json:"margin_balance"`
	MarginStatic      float64          `json:"margin_static"`
	MarginPosition    float64          `json:"margin_position"`
	MarginFrozen      float64          `json:"margin_frozen"`
	ProfitReal        float64          `json:"profit_real"`
	ProfitUnreal      float64          `json:"profit_unreal"`
	WithdrawAvailable float64          `json:"withdraw_available"`
	RiskRate          float64          `json:"risk_rate"`
	ContractDetail    []ContractDetail `json:"contract_detail"`
}

// ContractDetail breaks cross margin usage down per contract.
type ContractDetail struct {
	Symbol           string  `json:"symbol"`
	ContractCode     string  `json:"contract_code"`
	MarginPosition   float64 `json:"margin_position"`
	MarginFrozen     float64 `json:"margin_frozen"`
	MarginAvailable  float64 `json:"margin_available"`
	ProfitUnreal     float64 `json:"profit_unreal"`
	LiquidationPrice float64 `json:"liquidation_price"`
	LeverRate        float64 `json:"lever_rate"`
	AdjustFactor     float64 `json:"adjust_factor"`
}

// IsolatedAccountsResponse wraps isolated margin account equity.
type IsolatedAccountsResponse struct {
	BaseResponse
	Data []IsolatedAccount `json:"data"`
}

// IsolatedAccount holds isolated margin account equity for one instrument.
type IsolatedAccount struct {
	Symbol            string  `json:"symbol"`
	ContractCode      string  `json:"contract_code"`
	MarginBalance     float64 `json:"margin_balance"`
	MarginPosition    float64 `json:"margin_position"`
	MarginFrozen      float64 `json:"margin_frozen"`
	MarginAvailable   float64 `json:"margin_available"`
	ProfitReal        float64 `json:"profit_real"`
	ProfitUnreal      float64 `json:"profit_unreal"`
	RiskRate          float64 `json:"risk_rate"`
	LiquidationPrice  float64 `json:"liquidation_price"`
	WithdrawAvailable float64 `json:"withdraw_available"`
	LeverRate         float64 `json:"lever_rate"`
	AdjustFactor      float64 `json:"adjust_factor"`
}

// PositionsResponse wraps open positions.
type PositionsResponse struct {
	BaseResponse
	Data []Position `json:"data"`
}

// Position holds one open position across the three product lines.
type Position struct {
	Symbol         string  `json:"symbol"`
	ContractCode   string  `json:"contract_code"`
	ContractType   string  `json:"contract_type"`
	Volume         float64 `json:"volume"`
	Available      float64 `json:"available"`
	Frozen         float64 `json:"frozen"`
	CostOpen       float64 `json:"cost_open"`
	CostHold       float64 `json:"cost_hold"`
	ProfitUnreal   float64 `json:"profit_unreal"`
	ProfitRate     float64 `json:"profit_rate"`
	Profit         float64 `json:"profit"`
	PositionMargin float64 `json:"position_margin"`
	LeverRate      float64 `json:"lever_rate"`
	Direction      string  `json:"direction"`
	LastPrice      float64 `json:"last_price"`
	MarginMode     string  `json:"margin_mode"`
	MarginAccount  string  `json:"margin_account"`
	MarginAsset    string  `json:"margin_asset"`
}

package bitmake

import (
	"encoding/json"

	"github.com/takerfee/cclib/types"
)

// BaseInfo holds venue time and timezone.
type BaseInfo struct {
	Timezone   string     `json:"timezone"`
	ServerTime types.Time `json:"serverTime"`
}

// Symbol holds one instrument definition.
type Symbol struct {
	Symbol           string       `json:"symbol"`
	SymbolName       string       `json:"symbolName"`
	BaseToken        string       `json:"baseToken"`
	QuoteToken       string       `json:"quoteToken"`
	BasePrecision    types.Number `json:"basePrecision"`
	QuotePrecision   types.Number `json:"quotePrecision"`
	MinTradeQuantity types.Number `json:"minTradeQuantity"`
	MinTradeAmount   types.Number `json:"minTradeAmount"`
}

// Index holds index and estimated delivery prices keyed by symbol.
type Index struct {
	Index map[string]types.Number `json:"index"`
	EDP   map[string]types.Number `json:"edp"`
}

// Candle holds one kline delivered as a positional array.
type Candle struct {
	OpenTime types.Time
	Open     types.Number
	High     types.Number
	Low      types.Number
	Close    types.Number
	Volume   types.Number
}

// UnmarshalJSON decodes a positional kline array.
func (c *Candle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &[6]interface{}{
		&c.OpenTime, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume})
}

package tickgen

// MarketTick is one synthesized quote/trade event. It is a plain value,
// copied between pipeline stages and never shared mutably. Field order is
// the wire order any external serialization must follow: timestamp, symbol,
// bid/ask price, bid/ask size, last price, volume, venue, spread.
type MarketTick struct {
	TimestampNs int64   `json:"timestamp_ns"`
	SymbolID    uint32  `json:"symbol_id"`
	BidPrice    float64 `json:"bid_price"`
	AskPrice    float64 `json:"ask_price"`
	BidSize     uint32  `json:"bid_size"`
	AskSize     uint32  `json:"ask_size"`
	LastPrice   float64 `json:"last_price"`
	Volume      uint32  `json:"volume"`
	VenueID     uint8   `json:"venue_id"`
	SpreadBps   float64 `json:"spread_bps"`
}

// MidPrice returns the quote midpoint.
func (t MarketTick) MidPrice() float64 { return (t.BidPrice + t.AskPrice) * 0.5 }

// Spread returns the absolute bid/ask spread in dollars.
func (t MarketTick) Spread() float64 { return t.AskPrice - t.BidPrice }

// Valid reports whether the tick is well formed: positive bid and an ask
// strictly above it.
func (t MarketTick) Valid() bool { return t.BidPrice > 0 && t.AskPrice > t.BidPrice }

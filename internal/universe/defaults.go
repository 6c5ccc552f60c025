package universe

// Default universe: high-volume US equities and ETFs with venue profiles
// loosely modeled on the real destinations. These are plain data — tests and
// callers can substitute arbitrary universes via Config.

// DefaultSymbols is the stock symbol table used when no config is supplied.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "TSLA", "NVDA", "META", "AMZN", "NFLX",
	"JPM", "BAC", "WFC", "GS", "C", "JNJ", "PFE", "UNH", "ABBV",
	"PG", "KO", "XOM", "CVX", "DIS", "SPY", "QQQ", "IWM", "GLD", "TLT",
}

// DefaultVenues carries per-venue fee and latency profiles.
var DefaultVenues = []VenueInfo{
	{Name: "NYSE", MakerFee: 0.0003, TakerFee: 0.0003, Rebate: 0.0001, BaseLatencyUs: 250, JitterRangeUs: 50},
	{Name: "NASDAQ", MakerFee: 0.0003, TakerFee: 0.0003, Rebate: 0.0001, BaseLatencyUs: 230, JitterRangeUs: 45},
	{Name: "ARCA", MakerFee: 0.0002, TakerFee: 0.0003, Rebate: 0.0002, BaseLatencyUs: 240, JitterRangeUs: 40},
	{Name: "IEX", MakerFee: 0.0000, TakerFee: 0.0009, Rebate: 0.0000, BaseLatencyUs: 400, JitterRangeUs: 100},
	{Name: "CBOE", MakerFee: 0.0002, TakerFee: 0.0003, Rebate: 0.0001, BaseLatencyUs: 280, JitterRangeUs: 60},
}

// DefaultBasePrices maps positionally onto DefaultSymbols. Symbols beyond
// the table fall back to 100.0.
var DefaultBasePrices = []float64{
	227.21, 521.75, 201.00, 339.18, 182.09, 765.52, 221.37, 1218.37,
	289.71, 46.19, 77.61, 719.33, 92.31, 174.04, 24.61, 252.41, 198.64,
	155.03, 70.79, 105.88, 153.54, 112.58, 635.82, 572.75, 220.28, 308.60, 87.41,
}

// DefaultTickMultipliers maps positionally onto DefaultSymbols; higher
// values mean a symbol is selected more often. Fallback weight is 3.
var DefaultTickMultipliers = []uint32{
	5, 5, 4, 6, 6, 5, 4, 4, 3, 3, 3, 3, 3, 2, 2, 3, 2, 2, 2, 3, 3, 2, 8, 7, 6, 2, 1,
}

// DefaultConfig assembles the default tables into an initialization config.
func DefaultConfig() Config {
	return Config{
		Symbols:         DefaultSymbols,
		Venues:          DefaultVenues,
		BasePrices:      DefaultBasePrices,
		TickMultipliers: DefaultTickMultipliers,
	}
}

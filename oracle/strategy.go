package oracle

//go:generate go tool stringer -type=Strategy -output=strategy_string.go

// Strategy identifies one conversion rule in the oracle's fixed chain. The
// declaration order is the precedence order; new strategies are appended,
// never interleaved.
type Strategy int

const (
	StrategyNone Strategy = iota // zero value, reported when no strategy applied

	StrategyConverter
	StrategyCollection
	StrategyIdentity
	StrategyEnumToEnum
	StrategyStringToEnum
	StrategyEnumToString
	StrategyConstruct
	StrategyGetter
	StrategyUnbox

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// StrategyMask selects the strategies the oracle is allowed to apply.
type StrategyMask uint

const (
	MaskAll  StrategyMask = 1<<StrategyTotal - 1 // all strategies enabled
	MaskNone StrategyMask = 0                    // no strategies enabled
)

// MaskOf builds a mask enabling exactly the given strategies.
func MaskOf(strategies ...Strategy) StrategyMask {
	var m StrategyMask

	for _, s := range strategies {
		m |= 1 << uint(s)
	}

	return m
}

// Has reports whether s is enabled in m.
func (m StrategyMask) Has(s Strategy) bool {
	return m&(1<<uint(s)) != 0
}

// Without returns m with the given strategies disabled.
func (m StrategyMask) Without(strategies ...Strategy) StrategyMask {
	return m &^ MaskOf(strategies...)
}

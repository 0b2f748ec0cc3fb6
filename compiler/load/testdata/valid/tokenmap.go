package valid

// TokenMap holds balances per token.
//
//structarith:derive
type TokenMap struct {
	// Sol balance.
	Sol uint64
	Eth uint64 // eth balance
	Btc uint64
}

// Plain is not annotated.
type Plain struct {
	A uint64
}

package util

const (
	// COIN is the number of satoshi units in one coin.
	COIN = 100000000

	// CENT is the number of satoshi units in one hundredth of a coin.
	CENT = 1000000
)

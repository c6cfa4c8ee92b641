package consensus

import (
	"github.com/DONALDSULLENDER/namecoin-core/util"
	"github.com/DONALDSULLENDER/namecoin-core/util/amount"
)

// ConsensusRules defines consensus behaviour that is too complex for a
// plain set of constants because it varies with block height. One
// implementation exists per network, chosen when the net params are
// built and never swapped afterwards.
type ConsensusRules interface {
	// NameExpirationDepth returns the expiration depth for names at the
	// given height.
	NameExpirationDepth(height int32) int32

	// MinNameCoinAmount returns the minimum locked amount in a name.
	MinNameCoinAmount(height int32) amount.Amount
}

// The set of rule implementations is closed. A new network requires a new
// type here, which every exhaustive consumer has to handle.
var (
	_ ConsensusRules = MainNetConsensus{}
	_ ConsensusRules = TestNetConsensus{}
	_ ConsensusRules = RegTestConsensus{}
)

type MainNetConsensus struct{}

func (MainNetConsensus) NameExpirationDepth(height int32) int32 {
	// Important: it is assumed (in the expiration scan) that
	// "n - NameExpirationDepth(n)" is increasing. (This is the update
	// height up to which names expire at height n.)
	if height < 24000 {
		return 12000
	}
	if height < 48000 {
		return height - 12000
	}
	return 36000
}

func (MainNetConsensus) MinNameCoinAmount(height int32) amount.Amount {
	if height < 212500 {
		return 0
	}
	return amount.Amount(util.COIN / 100)
}

type TestNetConsensus struct{}

func (TestNetConsensus) NameExpirationDepth(height int32) int32 {
	if height < 24000 {
		return 12000
	}
	if height < 48000 {
		return height - 12000
	}
	return 36000
}

func (TestNetConsensus) MinNameCoinAmount(height int32) amount.Amount {
	return amount.Amount(util.COIN / 100)
}

type RegTestConsensus struct{}

func (RegTestConsensus) NameExpirationDepth(height int32) int32 {
	return 30
}

func (RegTestConsensus) MinNameCoinAmount(height int32) amount.Amount {
	return amount.Amount(util.COIN / 100)
}

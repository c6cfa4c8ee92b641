package consensus

import (
	"math"
	"math/big"

	"github.com/DONALDSULLENDER/namecoin-core/util"
)

type DeploymentPos int

const (
	DeploymentTestDummy DeploymentPos = iota
	// MaxVersionBitsDeployments NOTE: Also add new deployments to the
	// version bits deployment info table of the tallying code
	MaxVersionBitsDeployments
)

const (
	// NoTimeout is the nTimeout value for deployments that never expire.
	NoTimeout int64 = math.MaxInt64

	// AlwaysActive is a special nStartTime marking a deployment as active
	// on every block, skipping the activation state machine entirely.
	// Only useful on test networks, real activations take at least three
	// retarget intervals.
	AlwaysActive int64 = -1
)

type BIP9Deployment struct {
	/** Bit position to select the particular bit in nVersion. */
	Bit int
	/** Start MedianTime for version bits miner confirmation. Can be a date in
	 * the past */
	StartTime int64
	/** Timeout/expiry MedianTime for the deployment attempt. */
	Timeout int64
}

// IsAlwaysActive reports whether the deployment bypasses the version bits
// state machine. Callers must not compare StartTime or Timeout against
// block times when this returns true.
func (dep BIP9Deployment) IsAlwaysActive() bool {
	return dep.StartTime == AlwaysActive
}

// NeverExpires reports whether the deployment has no timeout. Callers must
// skip the expiry comparison when this returns true.
func (dep BIP9Deployment) NeverExpires() bool {
	return dep.Timeout == NoTimeout
}

type Param struct {
	GenesisHash            *util.Hash
	SubsidyHalvingInterval int32
	// Block height at which BIP16 becomes active
	BIP16Height int32
	// Block height and hash at which BIP34 becomes active
	BIP34Height int32
	BIP34Hash   util.Hash
	// Block height at which BIP65 becomes active
	BIP65Height int32
	// Block height at which BIP66 becomes active
	BIP66Height int32

	// Minimum blocks including miner confirmation of the total of 2016 blocks
	// in a retargeting period, (nPowTargetTimespan / nPowTargetSpacing) which
	// is also used for BIP9 deployments.
	// Examples: 1916 for 95%, 1512 for testchains.
	RuleChangeActivationThreshold uint32

	MinerConfirmationWindow uint32

	Deployments [MaxVersionBitsDeployments]BIP9Deployment

	// Proof of work parameters
	PowLimit                     *big.Int
	FPowAllowMinDifficultyBlocks bool
	MinDifficultySince           int64
	FPowNoRetargeting            bool
	TargetTimePerBlock           int64
	TargetTimespan               int64

	// The best chain should have at least this much work.
	MinimumChainWork util.Hash

	// By default assume that the signatures in ancestors of this block are valid.
	DefaultAssumeValid util.Hash

	// Auxpow parameters
	AuxpowChainID      int32
	AuxpowStartHeight  int32
	FStrictChainID     bool
	LegacyBlocksBefore int32 // -1 for "always allow"

	// Consensus rule interface.
	Rules ConsensusRules
}

func (pm *Param) DifficultyAdjustmentInterval() int64 {
	return pm.TargetTimespan / pm.TargetTimePerBlock
}

// AllowMinDifficultyBlocks checks whether or not minimum difficulty blocks
// are allowed with the given time stamp.
func (pm *Param) AllowMinDifficultyBlocks(blockTime int64) bool {
	if !pm.FPowAllowMinDifficultyBlocks {
		return false
	}
	return blockTime > pm.MinDifficultySince
}

// AllowLegacyBlocks checks whether or not to allow legacy version blocks,
// without an auxpow commitment, at the given height.
func (pm *Param) AllowLegacyBlocks(height int32) bool {
	if pm.LegacyBlocksBefore < 0 {
		return true
	}
	return height < pm.LegacyBlocksBefore
}

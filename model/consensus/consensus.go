package consensus

const (
	// OneMegaByte is, in bytes, the unit the legacy limits are stated in.
	OneMegaByte = 1000000

	// MaxBlockSize is the maximum allowed serialized size of a block.
	MaxBlockSize = OneMegaByte

	// MaxBlockSigOps is the maximum allowed number of signature check
	// operations in a block.
	MaxBlockSigOps = MaxBlockSize / 50

	// LockTimeThreshold is the nLockTime value below which a lock time is
	// interpreted as a block height rather than a timestamp.
	LockTimeThreshold = 500000000
)

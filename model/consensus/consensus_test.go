package consensus

import (
	"testing"
)

func TestConsensusLimits(t *testing.T) {
	tests := []struct {
		name   string
		actual int64
		exp    int64
	}{
		{"one megabyte", OneMegaByte, 1000000},
		{"max block size", MaxBlockSize, 1000000},
		{"max block sigops", MaxBlockSigOps, 20000},
		{"locktime threshold", LockTimeThreshold, 500000000},
	}

	for _, test := range tests {
		if test.actual != test.exp {
			t.Errorf("Test ConsensusLimits %s err! Expected %d, Actual is %d", test.name, test.exp, test.actual)
		}
	}
}

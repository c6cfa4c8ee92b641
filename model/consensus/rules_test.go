package consensus

import (
	"testing"

	"github.com/DONALDSULLENDER/namecoin-core/util"
	"github.com/DONALDSULLENDER/namecoin-core/util/amount"
)

func TestNameExpirationDepthBoundaries(t *testing.T) {
	tests := []struct {
		height int32
		exp    int32
	}{
		{0, 12000},
		{1, 12000},
		{23999, 12000},
		{24000, 12000},
		{24001, 12001},
		{35000, 23000},
		{47999, 35999},
		{48000, 36000},
		{48001, 36000},
		{1000000, 36000},
	}

	for _, rules := range []ConsensusRules{MainNetConsensus{}, TestNetConsensus{}} {
		for _, test := range tests {
			actual := rules.NameExpirationDepth(test.height)
			if actual != test.exp {
				t.Errorf("Test NameExpirationDepth(%d) err! Expected %d, Actual is %d", test.height, test.exp, actual)
			}
		}
	}
}

// The expiration scan walks the chain with a cursor at
// height - NameExpirationDepth(height) and assumes that boundary never
// moves backwards. Walk every height up to one million and watch it.
func TestNameExpirationDepthMonotonic(t *testing.T) {
	rules := MainNetConsensus{}

	prev := int32(0) - rules.NameExpirationDepth(0)
	for height := int32(1); height <= 1000000; height++ {
		boundary := height - rules.NameExpirationDepth(height)
		if boundary < prev {
			t.Fatalf("expiration boundary moved backwards at height %d: %d < %d", height, boundary, prev)
		}
		prev = boundary
	}
}

func TestRegTestNameExpirationDepth(t *testing.T) {
	rules := RegTestConsensus{}

	for _, height := range []int32{0, 1, 29, 30, 31, 10000000} {
		if actual := rules.NameExpirationDepth(height); actual != 30 {
			t.Errorf("Test RegTest NameExpirationDepth(%d) err! Expected 30, Actual is %d", height, actual)
		}
	}
}

func TestMinNameCoinAmount(t *testing.T) {
	const lockedFloor = amount.Amount(util.COIN / 100)

	mainTests := []struct {
		height int32
		exp    amount.Amount
	}{
		{0, 0},
		{212499, 0},
		{212500, lockedFloor},
		{10000000, lockedFloor},
	}

	main := MainNetConsensus{}
	for _, test := range mainTests {
		actual := main.MinNameCoinAmount(test.height)
		if actual != test.exp {
			t.Errorf("Test MainNet MinNameCoinAmount(%d) err! Expected %d, Actual is %d", test.height, test.exp, actual)
		}
	}

	// test and regtest nets apply the floor from genesis on
	for _, rules := range []ConsensusRules{TestNetConsensus{}, RegTestConsensus{}} {
		for _, height := range []int32{0, 212499, 212500, 10000000} {
			actual := rules.MinNameCoinAmount(height)
			if actual != lockedFloor {
				t.Errorf("Test MinNameCoinAmount(%d) err! Expected %d, Actual is %d", height, lockedFloor, actual)
			}
		}
	}

	if !amount.MoneyRange(lockedFloor) {
		t.Errorf("locked amount floor %d is outside the money range", lockedFloor)
	}
}

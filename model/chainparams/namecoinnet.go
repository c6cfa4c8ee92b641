package chainparams

import "fmt"

// NamecoinNet represents which namecoin network a message belongs to.
type NamecoinNet uint32

// Constants used to indicate the message namecoin network. They can also be
// used to seek to the next message when a stream's state is unknown.
const (
	// MainNet represents the main namecoin network.
	MainNet NamecoinNet = 0xfeb4bef9

	// TestNet represents the test network.
	TestNet NamecoinNet = 0xfeb5bffa

	// RegTestNet represents the regression test network.
	RegTestNet NamecoinNet = 0xdab5bffa
)

// nnStrings is a map of namecoin networks back to their constant names for
// pretty printing.
var nnStrings = map[NamecoinNet]string{
	MainNet:    "MainNet",
	TestNet:    "TestNet",
	RegTestNet: "RegTestNet",
}

// String returns the NamecoinNet in human-readable form.
func (n NamecoinNet) String() string {
	if s, ok := nnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown NamecoinNet (%d)", n)
}

package errcode

import "fmt"

type ConfErr int

const (
	ErrorConflictingNetworks ConfErr = ConfErrorBase + iota
	ErrorUnknownLogLevel
)

var ConfErrString = map[ConfErr]string{
	ErrorConflictingNetworks: "Only one of testnet and regtest may be requested",
	ErrorUnknownLogLevel:     "Unknown log level",
}

func (conferr ConfErr) String() string {
	if s, ok := ConfErrString[conferr]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", conferr)
}

package errcode

import "fmt"

type ChainParamsErr int

const (
	ErrorUnknownNetwork ChainParamsErr = ChainParamsErrorBase + iota
	ErrorDuplicateNetwork
)

var ChainParamsErrString = map[ChainParamsErr]string{
	ErrorUnknownNetwork:   "Unknown chain name",
	ErrorDuplicateNetwork: "Duplicate namecoin network",
}

func (chainparamserr ChainParamsErr) String() string {
	if s, ok := ChainParamsErrString[chainparamserr]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", chainparamserr)
}

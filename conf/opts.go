package conf

import (
	"fmt"
	"github.com/DONALDSULLENDER/namecoin-core/errcode"
	"github.com/jessevdk/go-flags"
	"os"
)

type Opts struct {
	DataDir  string `long:"datadir" description:"specified program data dir"`
	LogLevel string `long:"loglevel" description:"print log of the specified level and above"`

	RegTest bool `long:"regtest" description:"initiate regtest"`
	TestNet bool `long:"testnet" description:"initiate testnet"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flasgErr, ok := err.(*flags.Error); ok && flasgErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// regtest harnesses forward framework flags the node does not
		// declare, keep parsing without them
		if regTestRequested(args) {
			lenient := new(Opts)
			parser := flags.NewParser(lenient, flags.IgnoreUnknown)
			if _, lenientErr := parser.ParseArgs(args); lenientErr == nil {
				return lenient, nil
			}
		}
		return nil, err
	}

	return opts, nil
}

func regTestRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--regtest" {
			return true
		}
	}
	return false
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s regtest:%v testnet:%v", opts.DataDir, opts.RegTest, opts.TestNet)
}

// ChainName maps the network flags onto the chain the node should follow.
// The empty name means the flags did not request one.
func (opts *Opts) ChainName() (string, error) {
	if opts.RegTest && opts.TestNet {
		return "", errcode.New(errcode.ErrorConflictingNetworks)
	}
	if opts.TestNet {
		return "test", nil
	}
	if opts.RegTest {
		return "regtest", nil
	}
	return "", nil
}

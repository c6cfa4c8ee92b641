package chainparams

import "github.com/DONALDSULLENDER/namecoin-core/util"

type Checkpoint struct {
	Height int32
	Hash   *util.Hash
}

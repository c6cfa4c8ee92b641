package chainparams

import (
	"github.com/DONALDSULLENDER/namecoin-core/util"
)

// MainNetGenesisHash is the hash of the first block in the block chain for
// the main network (genesis block).
var MainNetGenesisHash = util.Hash([util.Hash256Size]byte{
	0x9c, 0x3e, 0x9e, 0x6c, 0x7b, 0xca, 0x6d, 0x48,
	0xe6, 0x35, 0xa7, 0x0d, 0x5b, 0x15, 0x7c, 0x80,
	0x7e, 0x58, 0xc8, 0xfb, 0x45, 0xeb, 0x2c, 0x5e,
	0x2c, 0xb7, 0x62, 0x00, 0x00, 0x00, 0x00, 0x00,
})

// GenesisMerkleRoot is the hash of the single coinbase transaction in every
// genesis block. The coinbase is shared by all three networks, so the same
// merkle root appears in each of them.
var GenesisMerkleRoot = util.Hash([util.Hash256Size]byte{
	0x0d, 0xcb, 0xd3, 0xe6, 0xf0, 0x61, 0x21, 0x5b,
	0xf3, 0xb3, 0x38, 0x3c, 0x8c, 0xe2, 0xec, 0x20,
	0x1b, 0xc6, 0x5a, 0xcd, 0xe3, 0x25, 0x95, 0x44,
	0x9a, 0xc8, 0x68, 0x90, 0xbd, 0x2d, 0xc6, 0x41,
})

// TestNetGenesisHash is the hash of the first block in the block chain for
// the test network.
var TestNetGenesisHash = util.Hash([util.Hash256Size]byte{
	0x08, 0xb0, 0x67, 0xb3, 0x1d, 0xc1, 0x39, 0xee,
	0x8e, 0x7a, 0x76, 0xa4, 0xf2, 0xcf, 0xcc, 0xa4,
	0x77, 0xc4, 0xc0, 0x6e, 0x1e, 0xf8, 0x9f, 0x4a,
	0xe3, 0x08, 0x95, 0x19, 0x07, 0x00, 0x00, 0x00,
})

var TestNetGenesisMerkleRoot = GenesisMerkleRoot

// RegTestGenesisHash is the hash of the first block in the block chain for
// the regression test network. Regtest difficulty accepts any digest, the
// block only has to exist.
var RegTestGenesisHash = util.Hash([util.Hash256Size]byte{
	0x4d, 0x57, 0xef, 0x0c, 0xad, 0x51, 0xc1, 0xcb,
	0x3d, 0xb3, 0x35, 0x4b, 0x7d, 0x16, 0x7b, 0x00,
	0x37, 0xa4, 0xd8, 0x34, 0xcb, 0xbe, 0x9b, 0x5a,
	0x0f, 0xc0, 0xd2, 0xeb, 0x77, 0x7e, 0x6e, 0xd8,
})

var RegTestGenesisMerkleRoot = GenesisMerkleRoot

package chainparams

import (
	"errors"
	"math/big"
	"time"

	"gopkg.in/fatih/set.v0"

	"github.com/DONALDSULLENDER/namecoin-core/errcode"
	"github.com/DONALDSULLENDER/namecoin-core/model/consensus"
	"github.com/DONALDSULLENDER/namecoin-core/util"
	"github.com/DONALDSULLENDER/namecoin-core/util/amount"
)

var ActiveNetParams = &MainNetParams

var (
	bigOne = big.NewInt(1)
	// 2^224 -1
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)
	// 2^228 -1
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 228), bigOne)
	// 2^255 -1
	regressingPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

type ChainTxData struct {
	Time    time.Time
	TxCount int64
	TxRate  float64
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

type NamecoinParams struct {
	consensus.Param
	Name                     string
	NamecoinNet              NamecoinNet
	DefaultPort              string
	DNSSeeds                 []DNSSeed
	PowLimitBits             uint32
	CoinbaseMaturity         uint16
	SubsidyReductionInterval int32
	RetargetAdjustmentFactor int64
	ReduceMinDifficulty      bool
	MinDiffReductionTime     time.Duration
	GenerateSupported        bool
	Checkpoints              []*Checkpoint
	MineBlocksOnDemands      bool

	// Enforce current block version once network has
	// upgraded.  This is part of BIP0034.
	BlockEnforceNumRequired uint64

	// Reject previous block versions once network has
	// upgraded.  This is part of BIP0034.
	BlockRejectNumRequired uint64

	// The number of nodes to check.  This is part of BIP0034.
	BlockUpgradeNumToCheck uint64

	RequireStandard     bool
	RelayNonStdTxs      bool
	PubKeyHashAddressID byte
	ScriptHashAddressID byte
	PrivatekeyID        byte
	HDPrivateKeyID      [4]byte
	HDPublicKeyID       [4]byte
	HDCoinType          uint32

	PruneAfterHeight         int
	chainTxData              ChainTxData
	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
}

func (param *NamecoinParams) TxData() *ChainTxData {
	return &param.chainTxData
}

var MainNetParams = NamecoinParams{
	Param: consensus.Param{
		GenesisHash:            &MainNetGenesisHash,
		SubsidyHalvingInterval: 210000,
		BIP16Height:            475000,
		BIP34Height:            250000,
		//little endian
		BIP34Hash: *util.HashFromString("00000000000000000c895851c0edbf7853042bb51b3c339b8a3f6d3a595f734d"),
		BIP65Height: 335000,
		BIP66Height: 250000,

		PowLimit:                      mainPowLimit,
		TargetTimespan:                60 * 60 * 24 * 14,
		TargetTimePerBlock:            60 * 10,
		FPowAllowMinDifficultyBlocks:  false,
		FPowNoRetargeting:             false,
		RuleChangeActivationThreshold: 1916,
		MinerConfirmationWindow:       2016,
		Deployments: [consensus.MaxVersionBitsDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {Bit: 28, StartTime: 1199145601, Timeout: 1230767999},
		},

		// The best chain should have at least this much work.
		MinimumChainWork: *util.HashFromString("000000000000000000000000000000000000000000876dfe40e799398e03a49a"),

		// By default assume that the signatures in ancestors of this block are
		// valid.
		DefaultAssumeValid: *util.HashFromString("000000000000000009bc6d5a8bab8738dac567ed858af2046a0dc0b7f142803b"),

		// Merge mining with bitcoin took over at this height. Standalone
		// proof of work stays valid strictly below it.
		AuxpowChainID:      1,
		AuxpowStartHeight:  19200,
		FStrictChainID:     true,
		LegacyBlocksBefore: 19200,

		Rules: consensus.MainNetConsensus{},
	},

	Name:        "main",
	NamecoinNet: MainNet,
	DefaultPort: "8334",
	DNSSeeds: []DNSSeed{
		{Host: "nmc.seed.quisquis.de", HasFiltering: true}, // Peter Conrad
		{Host: "seed.namecoin.libreho.st", HasFiltering: false},
		{Host: "dnsseed1.nmc.dotbit.zone", HasFiltering: true},
		{Host: "dnsseed2.nmc.dotbit.zone", HasFiltering: true},
		{Host: "dnsseed.nmc.testls.space", HasFiltering: false},
	},

	PowLimitBits:             0x1c007fff,
	CoinbaseMaturity:         100,
	SubsidyReductionInterval: 210000,

	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      false,
	MinDiffReductionTime:     0,
	GenerateSupported:        false,
	Checkpoints: []*Checkpoint{
		{2016, util.HashFromString("000000000b03cc6c3f60871c678cc723e5bd5e7a8743ff93098341c8b14da686")},
		// Merge mining fork block.
		{19200, util.HashFromString("0000000000be0b2c0dcd71d94bf247d23b4cbf4b54e247f2971bee106941317b")},
		// First block with a lengthened name expiration window.
		{24000, util.HashFromString("0000000000097bd1cdb6dd872e47e71badaac035e2f157c18eb44aa86822f87c")},
		{48000, util.HashFromString("0000000000006c9460653d41511948c818a72e5b70601f54330587ce25145720")},
		{105000, util.HashFromString("00000000000006c39e38467cd28b4b29036710b13e5b5e92a7dadbc871bb0fe7")},
		{193000, util.HashFromString("0000000000000065a5c6e853f4b75adc6b043cd025c3cfa6786b2b3366e90899")},
		{250000, util.HashFromString("0000000000000000692a7e2f3db530e87d558e438af946387bf13c6387e9d601")},
		{350000, util.HashFromString("000000000000000003515a67409cb5feb14e7fb068aef352949607422c4bf192")},
	},
	MineBlocksOnDemands: false,
	// Enforce current block version once majority of the network has
	// upgraded.
	// 75% (750 / 1000)
	// Reject previous block versions once a majority of the network has
	// upgraded.
	// 95% (950 / 1000)
	BlockEnforceNumRequired: 750,
	BlockRejectNumRequired:  950,
	BlockUpgradeNumToCheck:  1000,

	RequireStandard:     true,
	RelayNonStdTxs:      false,
	PubKeyHashAddressID: 0x34, // starts with N or M
	ScriptHashAddressID: 0x0d, // starts with 6
	PrivatekeyID:        0xb4, // starts with 5 (uncompressed) or T (compressed)
	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 7,

	MiningRequiresPeers: true,
	PruneAfterHeight:    100000,
	chainTxData:         ChainTxData{time.Unix(1585808059, 0), 5745202, 0.012},
}

var TestNetParams = NamecoinParams{
	Param: consensus.Param{
		GenesisHash:            &TestNetGenesisHash,
		SubsidyHalvingInterval: 210000,
		BIP16Height:            0,
		BIP34Height:            130000,
		BIP34Hash:              *util.HashFromString("00000000fdbd29393a93587735bca11e1a3643d629185790ffcb0c6f9fd6e4c7"),
		BIP65Height:            130000,
		BIP66Height:            130000,

		PowLimit:           testNetPowLimit,
		TargetTimespan:     60 * 60 * 24 * 14,
		TargetTimePerBlock: 60 * 10,

		FPowAllowMinDifficultyBlocks: true,
		// Mar 15, 2014. Blocks timestamped after this may drop to the
		// minimum difficulty when the chain stalls.
		MinDifficultySince: 1394838000,

		FPowNoRetargeting:             false,
		RuleChangeActivationThreshold: 1512,
		MinerConfirmationWindow:       2016,
		Deployments: [consensus.MaxVersionBitsDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {
				Bit:       28,
				StartTime: 1199145601,
				Timeout:   1230767999,
			},
		},
		MinimumChainWork:   *util.HashFromString("000000000000000000000000000000000000000000000098f6a4f10678e9a598"),
		DefaultAssumeValid: *util.HashFromString("0000000038d2b0d72410bd54af795ba7c76f779e749d038bfe4f8649024d96b9"),

		// Merged mining and legacy blocks are both accepted anywhere on
		// testnet, and foreign parent chain ids are tolerated.
		AuxpowChainID:      1,
		AuxpowStartHeight:  0,
		FStrictChainID:     false,
		LegacyBlocksBefore: -1,

		Rules: consensus.TestNetConsensus{},
	},

	Name:        "test",
	NamecoinNet: TestNet,
	DefaultPort: "18334",
	DNSSeeds: []DNSSeed{
		{Host: "dnsseed.test.namecoin.webbtc.com", HasFiltering: false},
	},

	PowLimitBits:             0x1d07fff8,
	CoinbaseMaturity:         100,
	SubsidyReductionInterval: 210000,
	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	MinDiffReductionTime:     time.Minute * 20,
	GenerateSupported:        false,
	Checkpoints: []*Checkpoint{
		{2016, util.HashFromString("00000000161a7adada29062edc9777d074c3177a02568b168fb1034b8cd71945")},
	},
	MineBlocksOnDemands: false,
	// Enforce current block version once majority of the network has
	// upgraded.
	// 75% (750 / 1000)
	// Reject previous block versions once a majority of the network has
	// upgraded.
	// 95% (950 / 1000)
	BlockEnforceNumRequired: 51,
	BlockRejectNumRequired:  75,
	BlockUpgradeNumToCheck:  100,

	RelayNonStdTxs:      true,
	PubKeyHashAddressID: 0x6f, // starts with m or n
	ScriptHashAddressID: 0xc4, // starts with 2
	PrivatekeyID:        0xef, // starts with 9 (uncompressed) or c (compressed)
	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType:          1,
	MiningRequiresPeers: true,

	PruneAfterHeight: 1000,
	chainTxData:      ChainTxData{time.Unix(1559290650, 0), 330216, 0.005},
}

var RegressionNetParams = NamecoinParams{
	Param: consensus.Param{
		GenesisHash:            &RegTestGenesisHash,
		SubsidyHalvingInterval: 150,
		BIP16Height:            0,
		BIP34Height:            100000000,
		BIP34Hash:              util.Hash{},
		BIP65Height:            1351,
		BIP66Height:            1251,

		PowLimit:                      regressingPowLimit,
		TargetTimespan:                60 * 60 * 24 * 14,
		TargetTimePerBlock:            60 * 10,
		FPowAllowMinDifficultyBlocks:  true,
		MinDifficultySince:            0,
		FPowNoRetargeting:             true,
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
		Deployments: [consensus.MaxVersionBitsDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {
				Bit:       28,
				StartTime: consensus.AlwaysActive,
				Timeout:   consensus.NoTimeout,
			},
		},
		MinimumChainWork:   *util.HashFromString("00"),
		DefaultAssumeValid: *util.HashFromString("00"),

		AuxpowChainID:      1,
		AuxpowStartHeight:  0,
		FStrictChainID:     true,
		LegacyBlocksBefore: 0,

		Rules: consensus.RegTestConsensus{},
	},

	Name:        "regtest",
	NamecoinNet: RegTestNet,
	DefaultPort: "18445",
	DNSSeeds:    []DNSSeed{},

	PowLimitBits:             0x207fffff,
	CoinbaseMaturity:         100,
	SubsidyReductionInterval: 150,

	RetargetAdjustmentFactor: 4,
	ReduceMinDifficulty:      true,
	MinDiffReductionTime:     time.Minute * 20,
	GenerateSupported:        true,
	Checkpoints:              nil,
	MineBlocksOnDemands:      true,
	// Enforce current block version once majority of the network has
	// upgraded.
	// 75% (750 / 1000)
	// Reject previous block versions once a majority of the network has
	// upgraded.
	// 95% (950 / 1000)
	BlockEnforceNumRequired: 750,
	BlockRejectNumRequired:  950,
	BlockUpgradeNumToCheck:  1000,

	RelayNonStdTxs:      true,
	PubKeyHashAddressID: 0x6f, // starts with m or n
	ScriptHashAddressID: 0xc4, // starts with 2
	PrivatekeyID:        0xef, // starts with 9 (uncompressed) or c (compressed)
	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 1,

	PruneAfterHeight:         1000,
	DefaultConsistencyChecks: true,
}

var (
	RegisteredNets          = set.New(set.ThreadSafe)
	PubKeyHashAddressIDs    = make(map[byte]struct{})
	ScriptHashAddressIDs    = make(map[byte]struct{})
	HDPrivateToPublicKeyIDs = make(map[[4]byte][]byte)
)

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}

func Register(namecoinParams *NamecoinParams) error {
	if RegisteredNets.Has(namecoinParams.NamecoinNet) {
		return errcode.New(errcode.ErrorDuplicateNetwork)
	}
	RegisteredNets.Add(namecoinParams.NamecoinNet)
	PubKeyHashAddressIDs[namecoinParams.PubKeyHashAddressID] = struct{}{}
	ScriptHashAddressIDs[namecoinParams.ScriptHashAddressID] = struct{}{}
	HDPrivateToPublicKeyIDs[namecoinParams.HDPrivateKeyID] = namecoinParams.HDPublicKeyID[:]
	return nil
}
func IsPublicKeyHashAddressID(id byte) bool {
	_, ok := PubKeyHashAddressIDs[id]
	return ok
}
func IsScriptHashAddressID(id byte) bool {
	_, ok := ScriptHashAddressIDs[id]
	return ok
}
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, errors.New("unknown hd private extended key bytes")
	}
	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := HDPrivateToPublicKeyIDs[key]
	if !ok {
		return nil, errors.New("unknown hd private extended key bytes")
	}
	return pubBytes, nil
}
func mustRegister(np *NamecoinParams) {
	err := Register(np)
	if err != nil {
		panic("failed to register network :" + err.Error())
	}
}

//IsBIP16Enabled check whether pay to script hash rules apply at the given height.
func IsBIP16Enabled(height int32) bool {
	return height >= ActiveNetParams.BIP16Height
}

func IsBIP34Enabled(height int32) bool {
	return height >= ActiveNetParams.BIP34Height
}

func IsBIP65Enabled(height int32) bool {
	return height >= ActiveNetParams.BIP65Height
}

func IsBIP66Enabled(height int32) bool {
	return height >= ActiveNetParams.BIP66Height
}

// IsAuxpowActive returns whether merged mining headers may appear at the
// given height on the active network.
func IsAuxpowActive(height int32) bool {
	return height >= ActiveNetParams.AuxpowStartHeight
}

// AllowMinDifficultyBlocks reports the min difficulty exception for the
// active network.
func AllowMinDifficultyBlocks(blockTime int64) bool {
	return ActiveNetParams.AllowMinDifficultyBlocks(blockTime)
}

// AllowLegacyBlocks reports the legacy block version exception for the
// active network.
func AllowLegacyBlocks(height int32) bool {
	return ActiveNetParams.AllowLegacyBlocks(height)
}

// NameExpirationDepth returns how many blocks a name registered at the given
// height stays alive on the active network.
func NameExpirationDepth(height int32) int32 {
	return ActiveNetParams.Rules.NameExpirationDepth(height)
}

// MinNameCoinAmount returns the smallest amount a name output may carry at
// the given height on the active network.
func MinNameCoinAmount(height int32) amount.Amount {
	return ActiveNetParams.Rules.MinNameCoinAmount(height)
}

func SetTestNetParams() {
	ActiveNetParams = &TestNetParams
}

func SetRegTestParams() {
	ActiveNetParams = &RegressionNetParams
}

// SelectNetParams switches the active network by chain name.
func SelectNetParams(chainName string) error {
	switch chainName {
	case "main":
		ActiveNetParams = &MainNetParams
	case "test":
		SetTestNetParams()
	case "regtest":
		SetRegTestParams()
	default:
		return errcode.New(errcode.ErrorUnknownNetwork)
	}
	return nil
}

func GetBlockSubsidy(height int32, params *NamecoinParams) amount.Amount {
	halvings := height / params.SubsidyReductionInterval
	// Force block reward to zero when right shift is undefined.
	if halvings >= 64 {
		return 0
	}

	nSubsidy := amount.Amount(50 * util.COIN)
	// Subsidy is cut in half every 210,000 blocks which will occur
	// approximately every 4 years.
	return amount.Amount(uint(nSubsidy) >> uint(halvings))
}

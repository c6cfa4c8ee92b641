package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/DONALDSULLENDER/namecoin-core/conf"
	"github.com/DONALDSULLENDER/namecoin-core/log"
	"github.com/DONALDSULLENDER/namecoin-core/model/chainparams"
	"github.com/DONALDSULLENDER/namecoin-core/model/consensus"
)

func main() {
	cfg, err := conf.InitConfig(os.Args[1:])
	if err != nil {
		fmt.Println("please run `./netparams -h` for usage.")
		fmt.Println(err)
		os.Exit(1)
	}
	conf.Cfg = cfg

	if err := chainparams.SelectNetParams(cfg.Chain.Name); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Current data dir:\033[0;32m", conf.DataDir, "\033[0m")

	logDir := filepath.Join(conf.DataDir, log.DefaultLogDirname)
	if !conf.FileExists(logDir) {
		err := os.MkdirAll(logDir, os.ModePerm)
		if err != nil {
			panic("logdir create failed: " + err.Error())
		}
	}
	logConf := struct {
		FileName string `json:"filename"`
		Level    int    `json:"level"`
		Daily    bool   `json:"daily"`
	}{
		FileName: logDir + "/" + cfg.Log.FileName + ".log",
		Level:    log.GetLevel(cfg.Log.Level),
		Daily:    false,
	}
	configuration, err := json.Marshal(logConf)
	if err != nil {
		panic(err)
	}
	log.Init(string(configuration))

	params := chainparams.ActiveNetParams
	log.Info("netparams resolved chain %s", params.Name)
	log.Debug("%v", log.InitLogClosure(func() string {
		return spew.Sdump(params)
	}))

	fmt.Printf("chain: %s\n", params.Name)
	fmt.Printf("net magic: %s (0x%08x)\n", params.NamecoinNet, uint32(params.NamecoinNet))
	fmt.Printf("default port: %s\n", params.DefaultPort)
	fmt.Printf("genesis: %s\n", params.GenesisHash)
	fmt.Printf("subsidy halving interval: %d blocks\n", params.SubsidyReductionInterval)
	fmt.Printf("difficulty adjustment interval: %d blocks\n", params.DifficultyAdjustmentInterval())
	fmt.Printf("max block size: %d bytes, max block sigops: %d\n", consensus.MaxBlockSize, consensus.MaxBlockSigOps)
	fmt.Printf("locktime threshold: %d\n", consensus.LockTimeThreshold)
	fmt.Printf("auxpow chain id: %d, merge mining from height %d\n", params.AuxpowChainID, params.AuxpowStartHeight)
	if params.LegacyBlocksBefore < 0 {
		fmt.Println("legacy blocks: always accepted")
	} else {
		fmt.Printf("legacy blocks: accepted below height %d\n", params.LegacyBlocksBefore)
	}

	fmt.Println(" height | expiration depth | min name amount | block subsidy")
	for _, height := range []int32{0, 2016, 24000, 36000, 48000, 212500, 420000} {
		fmt.Printf("%7d | %16d | %15s | %s\n",
			height,
			params.Rules.NameExpirationDepth(height),
			params.Rules.MinNameCoinAmount(height),
			chainparams.GetBlockSubsidy(height, params))
	}
}

package conf

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/DONALDSULLENDER/namecoin-core/errcode"
	"github.com/DONALDSULLENDER/namecoin-core/util"
)

const (
	tagName = "default"

	// ConfEnv overrides the location of the configuration file.
	ConfEnv = "NMC_CONF"

	defaultConfigFilename = "nmc.yml"
	defaultDataDirname    = ".namecoin"
)

var (
	// Cfg is the active runtime configuration, assigned by the caller of
	// InitConfig.
	Cfg *Configuration

	// DataDir is the resolved data directory for the current run.
	DataDir string
)

type Configuration struct {
	GoVersion string `validate:"require"` //description:"Display golang version"
	Version   string `validate:"require"` //description:"Display version"
	BuildDate string `validate:"require"` //description:"Display build date"
	DataDir   string

	Chain struct {
		Name string `default:"main"` //description:"network the node follows: main test regtest"
	}
	Log struct {
		FileName string   `default:"debug"` //description:"base name of the log file"
		Level    string   `default:"info"`  //description:"level of the file writer"
		Module   []string                   //description:"modules allowed to log"
	}
}

// logLevels enumerates the accepted Log.Level spellings. The log package
// resolves them to beego levels, conf only rejects the unknown ones early.
var logLevels = map[string]struct{}{
	"emergency":     {},
	"alert":         {},
	"critical":      {},
	"error":         {},
	"warning":       {},
	"warn":          {},
	"notice":        {},
	"informational": {},
	"info":          {},
	"debug":         {},
	"trace":         {},
}

// InitConfig composes the runtime configuration from struct tag defaults,
// the yaml config file and the command line, in rising priority.
func InitConfig(args []string) (*Configuration, error) {
	opts, err := InitArgs(args)
	if err != nil {
		return nil, err
	}

	viper.Reset()
	viper.SetEnvPrefix("nmc")
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")

	c := Configuration{}
	t := reflect.TypeOf(c)
	v := reflect.ValueOf(c)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if v.Field(i).Kind() != reflect.Struct {
			if value := field.Tag.Get(tagName); value != "" {
				viper.SetDefault(field.Name, value)
			}
			continue
		}
		inner := field.Type
		for j := 0; j < inner.NumField(); j++ {
			if value := inner.Field(j).Tag.Get(tagName); value != "" {
				viper.SetDefault(field.Name+"."+inner.Field(j).Name, value)
			}
		}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = util.AppDataDir(defaultDataDirname)
	}
	if err := util.MakePath(dataDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create data dir %s", dataDir)
	}

	viper.SetDefault("conf", filepath.Join(dataDir, defaultConfigFilename))
	confFile := viper.GetString("conf")
	if !FileExists(confFile) {
		if err := writeDefaultConfigFile(confFile); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(confFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file %s", confFile)
	}
	defer file.Close()

	if err := viper.ReadConfig(file); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", confFile)
	}
	config := &Configuration{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	config.DataDir = dataDir

	chainName, err := opts.ChainName()
	if err != nil {
		return nil, err
	}
	if chainName != "" {
		config.Chain.Name = chainName
	}
	if opts.LogLevel != "" {
		config.Log.Level = opts.LogLevel
	}

	if _, ok := logLevels[strings.ToLower(config.Log.Level)]; !ok {
		return nil, errcode.New(errcode.ErrorUnknownLogLevel)
	}

	DataDir = dataDir
	return config, nil
}

// writeDefaultConfigFile materializes the tag defaults as a yaml file so a
// fresh data dir carries an editable config.
func writeDefaultConfigFile(path string) error {
	defaults := &Configuration{}
	if err := viper.Unmarshal(defaults); err != nil {
		return errors.Wrap(err, "failed to collect config defaults")
	}
	out, err := yaml.Marshal(defaults)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config defaults")
	}
	if err := ioutil.WriteFile(path, out, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// FileExists reports whether the named file or directory exists.
func FileExists(path string) bool {
	return util.PathExists(path)
}

package log

import (
	"strings"

	"github.com/astaxie/beego/logs"

	"github.com/DONALDSULLENDER/namecoin-core/conf"
)

const (
	// DefaultLogDirname is the directory under the data directory that
	// holds the log files.
	DefaultLogDirname = "logs"

	errModuleNotFound = "Can not find module"
)

var mapModule map[string]struct{}

// Init configures the beego file logger from a marshaled adapter
// configuration and loads the module filter from the global config.
func Init(configuration string) {
	logs.EnableFuncCallDepth(true)
	logs.SetLogger(logs.AdapterFile, configuration)
	logs.SetLogFuncCallDepth(4)

	mapModule = make(map[string]struct{})
	for _, module := range conf.Cfg.Log.Module {
		mapModule[strings.ToLower(module)] = struct{}{}
	}
}

// Print logs at the given level when the module is listed in the
// configuration. Calls for unlisted modules leave a marker in the log so a
// broken filter does not fail silently.
func Print(module string, level string, format string, v ...interface{}) {
	if _, ok := mapModule[strings.ToLower(module)]; !ok {
		logs.Error("%s: %s", errModuleNotFound, module)
		return
	}

	switch strings.ToLower(level) {
	case "emergency":
		logs.Emergency(format, v...)
	case "alert":
		logs.Alert(format, v...)
	case "critical":
		logs.Critical(format, v...)
	case "error":
		logs.Error(format, v...)
	case "warn", "warning":
		logs.Warn(format, v...)
	case "notice":
		logs.Notice(format, v...)
	case "info", "informational":
		logs.Info(format, v...)
	case "debug", "trace":
		logs.Debug(format, v...)
	default:
		logs.Debug(format, v...)
	}
}

func Emergency(f interface{}, v ...interface{}) {
	logs.Emergency(f, v...)
}

func Alert(f interface{}, v ...interface{}) {
	logs.Alert(f, v...)
}

func Critical(f interface{}, v ...interface{}) {
	logs.Critical(f, v...)
}

func Error(f interface{}, v ...interface{}) {
	logs.Error(f, v...)
}

func Warning(f interface{}, v ...interface{}) {
	logs.Warning(f, v...)
}

func Warn(f interface{}, v ...interface{}) {
	logs.Warn(f, v...)
}

func Notice(f interface{}, v ...interface{}) {
	logs.Notice(f, v...)
}

func Informational(f interface{}, v ...interface{}) {
	logs.Informational(f, v...)
}

func Info(f interface{}, v ...interface{}) {
	logs.Info(f, v...)
}

func Debug(f interface{}, v ...interface{}) {
	logs.Debug(f, v...)
}

func Trace(f interface{}, v ...interface{}) {
	logs.Trace(f, v...)
}

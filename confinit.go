// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package main

import (
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/declinator/config"
)

func findAndLoadConfig(explicitPath string, cmdOpts *CmdOptions) *config.Configuration {
	var conf *config.Configuration
	if explicitPath != "" {
		conf = config.LoadConfig(explicitPath)

	} else {
		srchPaths := []string{
			"./conf.json",
			"/usr/local/etc/declinator/conf.json",
			"/usr/local/etc/declinator.json",
		}
		for _, path := range srchPaths {
			isFile, err := fs.IsFile(path)
			if err == nil && isFile {
				conf = config.LoadConfig(path)
				explicitPath = path
				break
			}
		}
		if conf == nil {
			log.Fatal().Msgf(
				"cannot find any suitable configuration file (searched in: %s)",
				strings.Join(srchPaths, ", "))
		}
	}
	if cmdOpts.LogLevel != "" {
		conf.LogLevel = cmdOpts.LogLevel

	} else if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}
	setupLog(conf.LogPath, conf.LogLevel)
	log.Info().Msgf("loaded configuration from %s", explicitPath)
	log.Info().Msgf("using logging level '%s'", conf.LogLevel)
	overrideConfWithCmd(conf, cmdOpts)
	if validErr := conf.Validate(); validErr != nil {
		log.Fatal().Err(validErr).Msg("")
	}
	return conf
}

func overrideConfWithCmd(origConf *config.Configuration, cmdConf *CmdOptions) {
	if cmdConf.Host != "" {
		origConf.ServerHost = cmdConf.Host

	} else if origConf.ServerHost == "" {
		log.Warn().Msgf(
			"serverHost not specified, using default value %s",
			config.DfltServerHost,
		)
		origConf.ServerHost = config.DfltServerHost
	}
	if cmdConf.Port != 0 {
		origConf.ServerPort = cmdConf.Port

	} else if origConf.ServerPort == 0 {
		log.Warn().Msgf(
			"serverPort not specified, using default value %d",
			config.DfltServerPort,
		)
		origConf.ServerPort = config.DfltServerPort
	}
	if cmdConf.ReadTimeoutSecs != 0 {
		origConf.ServerReadTimeoutSecs = cmdConf.ReadTimeoutSecs

	} else if origConf.ServerReadTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default value %d",
			config.DfltServerReadTimeoutSecs,
		)
		origConf.ServerReadTimeoutSecs = config.DfltServerReadTimeoutSecs
	}
	if cmdConf.WriteTimeoutSecs != 0 {
		origConf.ServerWriteTimeoutSecs = cmdConf.WriteTimeoutSecs

	} else if origConf.ServerWriteTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default value %d",
			config.DfltServerWriteTimeoutSecs,
		)
		origConf.ServerWriteTimeoutSecs = config.DfltServerWriteTimeoutSecs
	}
	if cmdConf.LogPath != "" {
		origConf.LogPath = cmdConf.LogPath

	} else if origConf.LogPath == "" {
		log.Warn().Msg("logPath not specified, using stderr")
	}
	if origConf.Limiting.ReqPerSec == 0 && origConf.Limiting.Burst == 0 {
		log.Warn().Msgf(
			"limiting not specified, using default values %d req/s, burst %d",
			config.DfltReqPerSec, config.DfltReqBurst,
		)
		origConf.Limiting.ReqPerSec = config.DfltReqPerSec
		origConf.Limiting.Burst = config.DfltReqBurst
	}
}

// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/declinator/reqcache"
)

const (
	DfltServerReadTimeoutSecs  = 10
	DfltServerWriteTimeoutSecs = 30
	DfltServerPort             = 8080
	DfltServerHost             = "localhost"
	DfltReqPerSec              = 20
	DfltReqBurst               = 40
)

// LimitingConf configures the per-client request rate limiting.
// Zero values disable limiting entirely.
type LimitingConf struct {
	ReqPerSec float64 `json:"reqPerSec"`
	Burst     int     `json:"burst"`
}

func (lc *LimitingConf) Validate(context string) error {
	if lc.ReqPerSec < 0 {
		return fmt.Errorf("%s.reqPerSec must not be negative", context)
	}
	if lc.ReqPerSec > 0 && lc.Burst <= 0 {
		return fmt.Errorf("%s.burst must be a positive number", context)
	}
	return nil
}

func (lc *LimitingConf) Enabled() bool {
	return lc.ReqPerSec > 0
}

type Configuration struct {
	ServerHost             string        `json:"serverHost"`
	ServerPort             int           `json:"serverPort"`
	ServerReadTimeoutSecs  int           `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int           `json:"serverWriteTimeoutSecs"`
	LogPath                string        `json:"logPath"`
	LogLevel               string        `json:"logLevel"`
	Cache                  reqcache.Conf `json:"cache"`
	Limiting               LimitingConf  `json:"limiting"`

	// UserDictPath is an optional path to a JSON file with user
	// defined declension exceptions (watched for changes)
	UserDictPath string `json:"userDictPath"`
}

func (c *Configuration) Validate() error {
	var err error
	if err = c.Cache.Validate("cache"); err != nil {
		return err
	}
	if err = c.Limiting.Validate("limiting"); err != nil {
		return err
	}
	if c.ServerPort < 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid serverPort value: %d", c.ServerPort)
	}
	return nil
}

func LoadConfig(path string) *Configuration {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Configuration
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

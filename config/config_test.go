// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/czcorpus/declinator/reqcache"
)

func TestValidateOK(t *testing.T) {
	conf := Configuration{
		ServerHost: "localhost",
		ServerPort: 8080,
		Limiting:   LimitingConf{ReqPerSec: 10, Burst: 20},
	}
	assert.NoError(t, conf.Validate())
}

func TestValidateInvalidPort(t *testing.T) {
	conf := Configuration{ServerPort: 123456}
	assert.Error(t, conf.Validate())
}

func TestValidateInvalidLimiting(t *testing.T) {
	conf := Configuration{Limiting: LimitingConf{ReqPerSec: 5}}
	assert.Error(t, conf.Validate())
}

func TestValidatePropagatesCacheError(t *testing.T) {
	conf := Configuration{
		Cache: reqcache.Conf{RedisAddr: "localhost:6379"},
	}
	assert.Error(t, conf.Validate())
}

func TestLimitingEnabled(t *testing.T) {
	lc := LimitingConf{}
	assert.False(t, lc.Enabled())
	lc = LimitingConf{ReqPerSec: 1, Burst: 1}
	assert.True(t, lc.Enabled())
}

// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reqcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/declinator/declension"
)

func TestNullCacheAlwaysMisses(t *testing.T) {
	nc := NewNullCache()
	_, err := nc.Get("Jan Novák", false)
	assert.ErrorIs(t, err, ErrCacheMiss)
	err = nc.Set("Jan Novák", false, declension.Inflect("Jan Novák", false))
	assert.NoError(t, err)
	_, err = nc.Get("Jan Novák", false)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestItemIDDependsOnAnimacy(t *testing.T) {
	assert.NotEqual(t, createItemID("Novák", false), createItemID("Novák", true))
	assert.Equal(t, createItemID("Novák", false), createItemID("Novák", false))
}

func TestFileCacheRoundTrip(t *testing.T) {
	fc := NewFileCache(&Conf{FileRootPath: t.TempDir(), TTLSecs: 3600})
	forms := declension.Inflect("Jan Novák", false)
	require.NoError(t, fc.Set("Jan Novák", false, forms))
	ans, err := fc.Get("Jan Novák", false)
	require.NoError(t, err)
	assert.Equal(t, forms, ans)
}

func TestFileCacheMiss(t *testing.T) {
	fc := NewFileCache(&Conf{FileRootPath: t.TempDir(), TTLSecs: 3600})
	_, err := fc.Get("unknown", false)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestConfValidate(t *testing.T) {
	conf := Conf{FileRootPath: "/tmp/x", RedisAddr: "localhost:6379", TTLSecs: 10}
	assert.Error(t, conf.Validate("cache"))
	conf = Conf{RedisAddr: "localhost:6379"}
	assert.Error(t, conf.Validate("cache"))
	conf = Conf{RedisAddr: "localhost:6379", TTLSecs: 60}
	assert.NoError(t, conf.Validate("cache"))
	conf = Conf{}
	assert.NoError(t, conf.Validate("cache"))
}

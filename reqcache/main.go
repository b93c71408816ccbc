// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

// Package reqcache caches computed declensions of whole phrases.
// The engine itself is fast but the service typically sees the same
// few thousand names over and over, so even a small cache removes
// most of the work. Redis and a plain filesystem backend are
// available; without any configuration a null cache is used.
package reqcache

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/czcorpus/declinator/declension"
)

var ErrCacheMiss = errors.New("cache miss")

type Conf struct {
	FileRootPath string `json:"fileRootPath"`
	RedisAddr    string `json:"redisAddr"`
	RedisDB      int    `json:"redisDb"`
	TTLSecs      int    `json:"ttlSecs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.FileRootPath != "" && conf.RedisAddr != "" {
		return fmt.Errorf(
			"%s.fileRootPath and %s.redisAddr cannot be used at the same time",
			context, context)
	}
	if (conf.FileRootPath != "" || conf.RedisAddr != "") && conf.TTLSecs <= 0 {
		return fmt.Errorf("%s.ttlSecs must be a positive number", context)
	}
	return nil
}

// Cache stores complete 14-slot declensions keyed by the phrase and
// the animacy flag. Implementations must be safe for concurrent use.
type Cache interface {
	Get(phrase string, animate bool) (declension.Forms, error)
	Set(phrase string, animate bool, forms declension.Forms) error
}

func createItemID(phrase string, animate bool) string {
	h := sha1.New()
	h.Write([]byte(phrase))
	if animate {
		h.Write([]byte{1})

	} else {
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reqcache

import "github.com/czcorpus/declinator/declension"

// NullCache misses on every Get and drops every Set.
type NullCache struct{}

func (nc *NullCache) Get(phrase string, animate bool) (declension.Forms, error) {
	var ans declension.Forms
	return ans, ErrCacheMiss
}

func (nc *NullCache) Set(phrase string, animate bool, forms declension.Forms) error {
	return nil
}

func NewNullCache() *NullCache {
	return &NullCache{}
}

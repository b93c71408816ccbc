// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reqcache

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"

	"github.com/czcorpus/declinator/declension"
)

// FileCache keeps serialized declensions in a two-level directory
// structure under a configured root. Expiration is driven by file
// mtime which is refreshed on each hit.
type FileCache struct {
	conf *Conf
}

func (fc *FileCache) createItemPath(phrase string, animate bool) string {
	itemID := createItemID(phrase, animate) + ".json"
	return path.Join(fc.conf.FileRootPath, itemID[0:1], itemID)
}

func (fc *FileCache) Get(phrase string, animate bool) (declension.Forms, error) {
	var ans declension.Forms
	filePath := fc.createItemPath(phrase, animate)
	isFile, err := fs.IsFile(filePath)
	if err != nil {
		return ans, err
	}
	if !isFile {
		return ans, ErrCacheMiss
	}
	mtime, err := fs.GetFileMtime(filePath)
	if err != nil {
		return ans, fmt.Errorf("failed to obtain file mtime: %w", err)
	}
	if time.Since(mtime) > time.Duration(fc.conf.TTLSecs)*time.Second {
		return ans, ErrCacheMiss
	}
	newTime := time.Now()
	if err := os.Chtimes(filePath, newTime, newTime); err != nil {
		return ans, err
	}
	rawData, err := os.ReadFile(filePath)
	if err != nil {
		return ans, err
	}
	err = sonic.Unmarshal(rawData, &ans)
	return ans, err
}

func (fc *FileCache) Set(phrase string, animate bool, forms declension.Forms) error {
	rawData, err := sonic.Marshal(forms)
	if err != nil {
		return err
	}
	targetPath := fc.createItemPath(phrase, animate)
	if err := os.MkdirAll(path.Dir(targetPath), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(targetPath, rawData, 0644)
}

func NewFileCache(conf *Conf) *FileCache {
	return &FileCache{conf: conf}
}

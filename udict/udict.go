// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

// Package udict maintains a user-defined dictionary of irregular words
// layered on top of the built-in declension tables. The dictionary is
// a JSON file with a list of exception records; when the file changes
// on disk, a fresh Inflector is compiled and atomically swapped in.
package udict

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/declinator/declension"
)

// Provider hands out the current Inflector. An empty path is valid -
// in such case the provider serves the built-in tables only and
// watching is a no-op.
type Provider struct {
	path string
	curr atomic.Pointer[declension.Inflector]
}

// NewProvider loads the dictionary (if path is non-empty) and prepares
// the initial Inflector. A missing or broken file is an error - we
// prefer failing at startup over silently serving incomplete tables.
func NewProvider(path string) (*Provider, error) {
	ans := &Provider{path: path}
	inf, err := load(path)
	if err != nil {
		return nil, err
	}
	ans.curr.Store(inf)
	return ans, nil
}

// Inflector returns the currently active engine instance. The value
// must not be stored for a long time - fetch it once per request so
// dictionary reloads take effect.
func (p *Provider) Inflector() *declension.Inflector {
	return p.curr.Load()
}

// Watch blocks until ctx is done, reloading the dictionary whenever
// the watched file is written to. Reload failures keep the previous
// tables and are only logged.
func (p *Provider) Watch(ctx context.Context) error {
	if p.path == "" {
		<-ctx.Done()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to watch user dictionary: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(p.path); err != nil {
		return fmt.Errorf("failed to watch user dictionary: %w", err)
	}
	log.Info().Str("path", p.path).Msg("watching user dictionary for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				inf, err := load(p.path)
				if err != nil {
					log.Error().Err(err).Msg("failed to reload user dictionary")
					continue
				}
				p.curr.Store(inf)
				log.Info().Str("path", p.path).Msg("user dictionary reloaded")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("user dictionary watcher error")
		}
	}
}

func load(path string) (*declension.Inflector, error) {
	if path == "" {
		return declension.NewInflector(), nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load user dictionary: %w", err)
	}
	var entries []declension.Exception
	if err := sonic.Unmarshal(rawData, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse user dictionary: %w", err)
	}
	for _, entry := range entries {
		if entry.Word == "" || entry.Stem == "" {
			return nil, fmt.Errorf(
				"failed to parse user dictionary: entry with empty word or stem")
		}
	}
	log.Info().
		Str("path", path).
		Int("numEntries", len(entries)).
		Msg("loaded user dictionary")
	return declension.NewInflector(declension.WithExceptions(entries)), nil
}

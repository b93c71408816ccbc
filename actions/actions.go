// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

// Package actions implements the HTTP handlers of the declension
// service.
package actions

import (
	"fmt"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/czcorpus/declinator/declension"
	"github.com/czcorpus/declinator/reqcache"
	"github.com/czcorpus/declinator/udict"
)

const (
	// maxBatchSize limits a single batch request; larger inputs
	// should be split by the client
	maxBatchSize = 1000

	batchConcurrency = 4
)

type inflectionResponse struct {
	Phrase  string            `json:"phrase"`
	Animate bool              `json:"animate"`
	Forms   map[string]string `json:"forms"`
	Slots   []string          `json:"slots"`
	Cached  bool              `json:"cached"`
}

type batchRequest struct {
	Phrases []string `json:"phrases"`
	Animate bool     `json:"animate"`
}

type batchResponse struct {
	Declensions []inflectionResponse `json:"declensions"`
}

type formInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Slot  int    `json:"slot"`
}

// Actions groups the declension HTTP handlers. The dictionary
// provider is consulted on each request so user dictionary reloads
// apply without a restart.
type Actions struct {
	dict  *udict.Provider
	cache reqcache.Cache
}

func (a *Actions) inflect(phrase string, animate bool) (declension.Forms, bool) {
	forms, err := a.cache.Get(phrase, animate)
	if err == nil {
		return forms, true
	}
	if err != reqcache.ErrCacheMiss {
		log.Error().Err(err).Msg("cache read failed, falling back to direct computation")
	}
	forms = a.dict.Inflector().Inflect(phrase, animate)
	if err := a.cache.Set(phrase, animate, forms); err != nil {
		log.Error().Err(err).Msg("failed to store item to cache")
	}
	return forms, false
}

func exportForms(phrase string, animate bool, forms declension.Forms, cached bool) inflectionResponse {
	return inflectionResponse{
		Phrase:  phrase,
		Animate: animate,
		Forms:   forms.AsMap(),
		Slots:   forms[:],
		Cached:  cached,
	}
}

// Inflect handles GET /inflect?phrase=...&animate=0|1
func (a *Actions) Inflect(ctx *gin.Context) {
	phrase := ctx.Request.URL.Query().Get("phrase")
	if phrase == "" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("missing phrase"), http.StatusBadRequest)
		return
	}
	animate := ctx.Request.URL.Query().Get("animate") == "1"
	forms, cached := a.inflect(phrase, animate)
	uniresp.WriteJSONResponse(ctx.Writer, exportForms(phrase, animate, forms, cached))
}

// InflectBatch handles POST /inflect/batch. Phrases are processed
// concurrently; the response preserves the input order.
func (a *Actions) InflectBatch(ctx *gin.Context) {
	var req batchRequest
	if err := ctx.BindJSON(&req); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError(err.Error()), http.StatusBadRequest)
		return
	}
	if len(req.Phrases) == 0 {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("missing phrases"), http.StatusBadRequest)
		return
	}
	if len(req.Phrases) > maxBatchSize {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError(fmt.Sprintf("too many phrases (limit %d)", maxBatchSize)),
			http.StatusBadRequest)
		return
	}
	ans := batchResponse{Declensions: make([]inflectionResponse, len(req.Phrases))}
	var eg errgroup.Group
	eg.SetLimit(batchConcurrency)
	for i, phrase := range req.Phrases {
		i, phrase := i, phrase
		eg.Go(func() error {
			forms, cached := a.inflect(phrase, req.Animate)
			ans.Declensions[i] = exportForms(phrase, req.Animate, forms, cached)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError(err.Error()), http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Forms handles GET /forms and describes the output slots.
func (a *Actions) Forms(ctx *gin.Context) {
	ans := make([]formInfo, 0, declension.NumForms)
	for _, f := range declension.AllForms() {
		ans = append(ans, formInfo{Key: f.Key(), Label: f.String(), Slot: int(f) + 1})
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"forms": ans})
}

func NewActions(dict *udict.Provider, cache reqcache.Cache) *Actions {
	return &Actions{dict: dict, cache: cache}
}

// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/declinator/actions"
	"github.com/czcorpus/declinator/config"
	"github.com/czcorpus/declinator/reqcache"
	"github.com/czcorpus/declinator/udict"
)

func createCache(ctx context.Context, conf *config.Configuration) reqcache.Cache {
	if conf.Cache.FileRootPath != "" {
		log.Info().Msgf("using file declension cache (path: %s)", conf.Cache.FileRootPath)
		return reqcache.NewFileCache(&conf.Cache)

	} else if conf.Cache.RedisAddr != "" {
		log.Info().Msgf(
			"using redis declension cache (addr: %s, db: %d)",
			conf.Cache.RedisAddr, conf.Cache.RedisDB)
		return reqcache.NewRedisCache(ctx, &conf.Cache)
	}
	log.Info().Msg("using NULL declension cache (no cache backend specified)")
	return reqcache.NewNullCache()
}

func initEngine(conf *config.Configuration, actionHandler *actions.Actions) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(requestID)
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	apiRoutes := engine.Group("/")
	apiRoutes.Use(uniresp.AlwaysJSONContentType())
	if conf.Limiting.Enabled() {
		limiter := newClientLimiter(conf.Limiting)
		apiRoutes.Use(limiter.Middleware)
		log.Info().
			Float64("reqPerSec", conf.Limiting.ReqPerSec).
			Int("burst", conf.Limiting.Burst).
			Msg("request rate limiting enabled")
	}

	apiRoutes.GET("/inflect", actionHandler.Inflect)
	apiRoutes.POST("/inflect/batch", actionHandler.InflectBatch)
	apiRoutes.GET("/forms", actionHandler.Forms)

	apiRoutes.GET("/service/ping", func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
	})

	return engine
}

// RunService starts the HTTP server and blocks until a termination
// signal arrives; then it gives the subsystems a few seconds to
// finish.
func RunService(ctx context.Context, conf *config.Configuration) {
	dict, err := udict.NewProvider(conf.UserDictPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := dict.Watch(ctx); err != nil {
			log.Error().Err(err).Msg("user dictionary watching disabled")
		}
	}()

	actionHandler := actions.NewActions(dict, createCache(ctx, conf))
	engine := initEngine(conf, actionHandler)

	log.Info().Msgf("starting to listen at %s:%d", conf.ServerHost, conf.ServerPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ServerHost, conf.ServerPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

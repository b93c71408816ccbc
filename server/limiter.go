// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"net/http"
	"sync"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/czcorpus/declinator/config"
)

// clientLimiter keeps a token bucket per client IP. The map is never
// cleaned - the expected number of distinct clients is small and the
// buckets are tiny.
type clientLimiter struct {
	conf    config.LimitingConf
	lock    sync.Mutex
	clients map[string]*rate.Limiter
}

func (cl *clientLimiter) limiterFor(clientIP string) *rate.Limiter {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	lim, ok := cl.clients[clientIP]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(cl.conf.ReqPerSec), cl.conf.Burst)
		cl.clients[clientIP] = lim
	}
	return lim
}

// Middleware rejects requests exceeding the configured per-client
// rate with HTTP 429.
func (cl *clientLimiter) Middleware(ctx *gin.Context) {
	if !cl.limiterFor(ctx.ClientIP()).Allow() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("too many requests"),
			http.StatusTooManyRequests,
		)
		ctx.Abort()
		return
	}
	ctx.Next()
}

func newClientLimiter(conf config.LimitingConf) *clientLimiter {
	return &clientLimiter{
		conf:    conf,
		clients: make(map[string]*rate.Limiter),
	}
}

// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// requestID attaches a correlation ID to each request/response pair.
// A client supplied value is kept so upstream proxies can trace calls
// through the service.
func requestID(ctx *gin.Context) {
	rid := ctx.GetHeader(requestIDHeader)
	if rid == "" {
		rid = uuid.New().String()
	}
	ctx.Set("requestID", rid)
	ctx.Writer.Header().Set(requestIDHeader, rid)
	ctx.Next()
}

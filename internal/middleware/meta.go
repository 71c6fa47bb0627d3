package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/loan-reschedule-api/pkg/middleware/requestid"
)

const requestStartKey = "request_start"

// WithResponseMeta records the request start so handlers can report processing time.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Next()
	}
}

// ResponseMeta builds the meta block of a response envelope.
func ResponseMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	meta := make(map[string]interface{}, 2)
	if start, ok := c.Get(requestStartKey); ok {
		if t, ok := start.(time.Time); ok {
			meta["processing_time_ms"] = time.Since(t).Milliseconds()
		}
	}
	if id := requestid.Value(c); id != "" {
		meta["request_id"] = id
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

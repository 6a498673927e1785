package middleware

import "github.com/gin-gonic/gin"

// EventStreamHeaders prepares a response for Server-Sent Events and disables proxy buffering.
func EventStreamHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
	}
}

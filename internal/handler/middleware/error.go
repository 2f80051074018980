package middleware

import (
	"fmt"
	"net/http"

	"refreshing-booking/internal/handler/httperr"
	"refreshing-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericServerError = "Serverfel"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: genericServerError})
	}
}

func CustomRecovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				// captured here so the stack includes the panicking frames
				panicErr := errs.New(fmt.Sprint(rec))
				logger.Error("recovered from panic",
					zap.Any("panic", rec),
					zap.Strings("stack", errs.ExtractStackLines(panicErr, 20)),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  genericServerError,
				})
			}
		}()
		c.Next()
	}
}

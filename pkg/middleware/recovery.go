package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"appcost/pkg/utils"
)

// Recovery turns a panic into a 500 and writes the stack through zap.
// Register it after RequestLogger so the completion line still gets logged.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	stdLog, err := zap.NewStdLogAt(log.Named("recovery"), zap.ErrorLevel)
	if err != nil {
		stdLog = zap.NewStdLog(log.Named("recovery"))
	}

	return gin.CustomRecoveryWithWriter(stdLog.Writer(), func(c *gin.Context, _ any) {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}

package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware gives every huma operation a fresh LogData, reachable from the
// handler through GetLogData, and writes one line when the operation ends.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		op := ctx.Operation()
		logData.AddData("operation", op.OperationID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", op.Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		switch {
		case status >= http.StatusInternalServerError:
			logData.Log().Errorf("Handler.%v.Error", op.OperationID)
		case status >= http.StatusBadRequest:
			logData.Log().Warnf("Handler.%v.Rejected", op.OperationID)
		default:
			logData.Log().Infof("Handler.%v.Complete", op.OperationID)
		}
	}
}

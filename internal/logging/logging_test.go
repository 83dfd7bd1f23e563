package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*bytes.Buffer, *LogData) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf
	return buf, NewLogData(logger)
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLogData_FieldsAndLevelKey(t *testing.T) {
	buf, logData := bufferedLogger()
	logData.AddData("templateId", "abc")
	logData.AddTiming("fetch")()

	logData.Log().Info("Scheduler.ProcessDue.Complete")

	entry := lastLine(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "abc", entry["templateId"])
	assert.Contains(t, entry, "fetch")
}

func TestSetLevel(t *testing.T) {
	logger := SetupLogging()
	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, "debug", logger.GetLevel().String())
	assert.Error(t, SetLevel(logger, "loud"))
}

func TestGetLogData_Fallback(t *testing.T) {
	assert.NotNil(t, GetLogData(context.Background()))

	_, logData := bufferedLogger()
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf

	calls := 0
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, r *http.Request, logData *LogData) error {
		calls++
		if calls == 1 {
			logData.AddData("first", true)
		}
		assert.Same(t, logData, GetLogData(r.Context()))
		if r.Method != http.MethodGet {
			return errors.New("bad method")
		}
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/status", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "error", entry["loglevel"])
	assert.NotContains(t, entry, "first")
}

func TestMiddleware_LogsOperation(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		GetLogData(ctx).AddData("owner", "o-1")
		return nil, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.ping.Complete", entry["msg"])
	assert.Equal(t, "o-1", entry["owner"])
	assert.Equal(t, "/ping", entry["path"])
}

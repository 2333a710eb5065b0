package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/helper"
	"github.com/gin-gonic/gin"
)

const (
	loggerDEBUG = "debug"
	loggerINFO  = "info"
	loggerWarn  = "warn"
	loggerError = "error"
)

const RequestIdKey = "X-Request-Id"

// LogDir is empty unless --log-dir or LOG_DIR is given; output then stays on the console.
var LogDir string

type LogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	RequestId string `json:"request_id,omitempty"`
	Msg       string `json:"msg"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

var setupLogLock sync.Mutex
var generalLogFile *os.File
var errorLogFile *os.File

func SetupLogger() {
	if LogDir == "" {
		return
	}
	setupLogLock.Lock()
	defer setupLogLock.Unlock()

	dateStr := time.Now().Format("20060102")

	fd, err := os.OpenFile(filepath.Join(LogDir, fmt.Sprintf("akiba-%s.log", dateStr)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open general log file")
	}
	errFd, err := os.OpenFile(filepath.Join(LogDir, fmt.Sprintf("akiba-error-%s.log", dateStr)), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal("failed to open error log file")
	}

	if generalLogFile != nil {
		generalLogFile.Close()
	}
	if errorLogFile != nil {
		errorLogFile.Close()
	}
	generalLogFile = fd
	errorLogFile = errFd

	gin.DefaultWriter = io.MultiWriter(os.Stdout, generalLogFile)
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, errorLogFile)
}

func writeJSONLog(writer io.Writer, level, requestId, msg string) {
	entry := LogEntry{
		Ts:        time.Now().Format(time.RFC3339Nano),
		Level:     level,
		RequestId: requestId,
		Msg:       msg,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		_, _ = fmt.Fprintf(writer, `{"ts":"%s","level":"%s","msg":"json marshal error","service":"%s","instance":"%s"}`+"\n",
			entry.Ts, level, config.ServiceName, config.InstanceId)
		return
	}
	_, _ = writer.Write(append(jsonBytes, '\n'))
}

func SysLog(s string) {
	writeJSONLog(gin.DefaultWriter, loggerINFO, "", s)
}

func SysError(s string) {
	writeJSONLog(gin.DefaultErrorWriter, loggerError, "", s)
}

func Debug(ctx context.Context, msg string) {
	if config.DebugEnabled {
		logHelper(ctx, loggerDEBUG, msg)
	}
}

func Info(ctx context.Context, msg string) {
	logHelper(ctx, loggerINFO, msg)
}

func Warn(ctx context.Context, msg string) {
	logHelper(ctx, loggerWarn, msg)
}

func Error(ctx context.Context, msg string) {
	logHelper(ctx, loggerError, msg)
}

func Debugf(ctx context.Context, format string, a ...any) {
	Debug(ctx, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	Info(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	Warn(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	Error(ctx, fmt.Sprintf(format, a...))
}

func logHelper(ctx context.Context, level string, msg string) {
	writer := gin.DefaultWriter
	if level == loggerError {
		writer = gin.DefaultErrorWriter
	}

	id := ""
	if ctx != nil {
		if v := ctx.Value(RequestIdKey); v != nil {
			id = fmt.Sprintf("%v", v)
		}
	}
	if id == "" {
		id = helper.GenRequestID()
	}

	writeJSONLog(writer, level, id, msg)
}

var (
	exitHooksLock sync.Mutex
	exitHooks     []func()
)

// AddExitHook registers fn to run before FatalLog exits, since deferred
// calls in main are skipped by os.Exit.
func AddExitHook(fn func()) {
	exitHooksLock.Lock()
	exitHooks = append(exitHooks, fn)
	exitHooksLock.Unlock()
}

func runExitHooks() {
	exitHooksLock.Lock()
	hooks := exitHooks
	exitHooks = nil
	exitHooksLock.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

func FatalLog(v ...any) {
	msg := fmt.Sprintf("%v", v)
	writeJSONLog(gin.DefaultErrorWriter, "fatal", "", msg)
	runExitHooks()
	os.Exit(1)
}

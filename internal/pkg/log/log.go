package log

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const contextKeyRequestID = "request_id"

var (
	infoBadge  = color.New(color.FgWhite, color.BgGreen).Sprint("[INFO] ")
	warnBadge  = color.New(color.FgWhite, color.BgYellow).Sprint("[WARN] ")
	errorBadge = color.New(color.FgRed).Sprint("[Error]")
)

// WithRequestID tags ctx with a request id picked up by the *WithContext loggers.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func formatLog(level string, requestID string, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if requestID == "" {
		return fmt.Sprintf("[%s] %s", level, msg)
	}
	return fmt.Sprintf("[%s] [req_id=%s] %s", level, requestID, msg)
}

func emit(badge string, msg string) {
	fmt.Printf("%s %s\n", badge, msg)
}

// Info logs an informational message.
func Info(format string, a ...interface{}) {
	emit(infoBadge, fmt.Sprintf(format, a...))
}

// InfoWithContext logs an informational message with the request id from ctx.
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(infoBadge, formatLog("INFO", getRequestID(ctx), format, a...))
}

// Warn logs a warning.
func Warn(format string, a ...interface{}) {
	emit(warnBadge, fmt.Sprintf(format, a...))
}

// WarnWithContext logs a warning with the request id from ctx.
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(warnBadge, formatLog("WARN", getRequestID(ctx), format, a...))
}

// Error logs an error.
func Error(format string, a ...interface{}) {
	emit(errorBadge, fmt.Sprintf(format, a...))
}

// ErrorWithContext logs an error with the request id from ctx.
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(errorBadge, formatLog("ERROR", getRequestID(ctx), format, a...))
}

// Debug dumps values with spew for local debugging.
func Debug(a ...interface{}) {
	fmt.Print(spew.Sdump(a...))
}

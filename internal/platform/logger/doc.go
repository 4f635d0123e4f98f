// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package.
//
// Setup builds the process-wide JSON logger from configuration. Request-scoped
// loggers (for example one carrying a trace ID) travel through context.Context
// with WithLogger and are retrieved with FromContext or FromContextOrDefault.
package logger

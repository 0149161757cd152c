// Package logger provides structured logging functionality for the
// application, built on log/slog. Loggers travel with the request context so
// every layer logs with the same correlation attributes.
package logger

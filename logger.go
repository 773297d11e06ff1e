package algokit

// Logger defines the interface for library logging.
// The registry logs topic registration and collision diagnostics through
// this interface using structured key-value pairs, so embedding
// applications control how those logs appear.
//
// The variadic arguments are key-value pairs, compatible with slog and
// other structured logging libraries:
//
//	logger.Info("Registered topic", "topic", "collections", "symbols", 8)
type Logger interface {
	// Info logs an informational message with optional key-value pairs.
	Info(msg string, args ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, args ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, args ...any)

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, args ...any)
}

// nopLogger discards everything. Used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

// Package logger builds *slog.Logger instances from functional options and
// provides helpers that keep attribute names consistent.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and, when ContextExtractor callbacks are registered,
// wraps it so attributes such as a request id are pulled from the context of
// every record.
//
// Defaults suit a command-line tool: text output, warn level, written to
// stderr so that stdout only carries program output.
//
// # Verbosity
//
// LevelForVerbosity maps a counted -v flag onto levels:
//
//	(none) -> WARN
//	-v     -> DEBUG
//	-vv    -> TRACE (LevelTrace, slog.LevelDebug-4)
//
// # Usage
//
//	log := logger.New(
//	    logger.WithVerbosity(verbose),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "generated identifiers", logger.Count(n), logger.Duration(time.Since(start)))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger

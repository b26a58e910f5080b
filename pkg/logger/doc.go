// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, applies static attributes, and wraps the result in
// LogHandlerDecorator, which runs every registered ContextExtractor on each
// record. Records go to stderr unless WithOutput says otherwise, so command
// output on stdout stays machine-readable.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "nifbench"),
//	    logger.WithContextExtractors(nifbench.RunIDExtractor),
//	)
//	log.InfoContext(ctx, "variant finished",
//	    logger.Variant(v.Name),
//	    logger.Duration(elapsed),
//	)
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("run finished", logger.Error(err))
package logger

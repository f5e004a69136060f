// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes and wraps the handler with LogHandlerDecorator, which runs any
// registered ContextExtractor on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "gtin"),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "validated",
//	    logger.Code(code),
//	    logger.GTINFormat(g.Format()),
//	    logger.Valid(true),
//	)
//
// Records go to stderr by default so that stdout stays free for command
// output. Error returns an empty Attr for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger

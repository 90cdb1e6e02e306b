// Package logger builds *slog.Logger instances with functional options and
// transparent injection of values stored in context.Context.
//
// New selects a text or JSON handler, applies the level and static attributes
// and wraps the handler with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "studentcheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "students validated", logger.Count(3), logger.Locale("pt-BR"))
//
// Attribute helpers in attr.go keep key names consistent. Helpers taking an
// error return an empty slog.Attr for nil errors, which slog drops, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger

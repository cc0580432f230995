// Package logger builds *slog.Logger instances with functional options and
// keeps attribute names consistent across the service.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which appends attributes pulled from the
// record's context by registered ContextExtractor functions (for example the
// request id set by the requestid middleware).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "credportal"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "provider rejected message",
//	    logger.Recipient(to),
//	    logger.Error(err),
//	)
//
// Error, RequestID and MessageID return an empty attribute for nil or empty
// input, so they can be passed unconditionally.
package logger

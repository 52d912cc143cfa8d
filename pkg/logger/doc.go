// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers with consistent keys.
//
// New picks a text or JSON handler, applies the level and static attributes,
// and wraps the handler with LogHandlerDecorator, which adds attributes pulled
// from the context of each call:
//
//	log := logger.New(
//	    logger.WithDebug("formcheck"),
//	    logger.WithContextValue("submission_id", submissionKey{}),
//	)
//	log.DebugContext(ctx, "field validation failed",
//	    logger.Form("signup"),
//	    logger.Field("username"),
//	    logger.Lang("de"),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into options input.
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger

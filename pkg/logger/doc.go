// Package logger builds *slog.Logger instances through functional options and
// provides attribute helpers shared by the dispatcher packages.
//
// New selects a text or JSON handler, applies the level and static attributes,
// and wraps the result in LogHandlerDecorator which runs registered
// ContextExtractor callbacks on every record. This lets request or dispatch
// scoped values stored in a context.Context show up in logs without passing
// them explicitly:
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithContextValue("dispatch_id", dispatcher.DispatchIDKey()),
//	)
//
//	d := dispatcher.New(dispatcher.WithLogger(log))
//
// Helpers such as Error, Dispatcher, DispatchID and Subscribers keep attribute
// keys consistent. Error and Errors return an empty Attr for nil errors, so
//
//	log.Debug("delivery finished", logger.Error(err))
//
// needs no nil check.
package logger

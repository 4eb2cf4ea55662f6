// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run binds the listener synchronously, so a bad address is reported as
// ErrStart before any request is served. It then blocks until the context is
// cancelled, shuts the server down within the shutdown timeout and returns.
// Callers that want to react to SIGINT/SIGTERM pass a context from
// signal.NotifyContext.
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(func(log *slog.Logger, addr net.Addr) {
//	        log.Info("listening", "addr", addr.String())
//	    }),
//	)
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Config carries `env` tags for pkg/config; zero fields keep the defaults.
package httpserver

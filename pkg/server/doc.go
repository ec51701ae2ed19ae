// Package server is a preview server for a values directory.
//
// Every value loaded by pkg/loader is served as a page at its dotted path
// with dots turned into slashes, so values/blog/post.yml is served at
// /blog/post. The root lists all pages.
//
// With Config.Reload set, pages carry a small script that connects to
// ReloadPath over a WebSocket, and Watch polls the directory and tells
// connected browsers to refresh when a file changes:
//
//	srv, err := server.New(server.Config{FS: os.DirFS("."), Dir: "values", Reload: true})
//	if err != nil {
//	    return err
//	}
//	return srv.ListenAndServe(ctx, ":8080")
//
// Requests are traced with the global OpenTelemetry tracer provider and,
// when Config.Metrics is set, counted in Prometheus and exposed at /metrics.
package server

// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/tinylog"
	"github.com/lixenwraith/tinylog/compat"
)

func main() {
	logger := tinylog.NewLogger()
	err := logger.ApplyOverride(
		"level=info",
		"buffer_size=256",
		"sanitization=json",
	)
	if err != nil {
		panic(err)
	}
	if err := logger.Init(tinylog.LevelInfo); err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(tinylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			requestHandler(logger, ctx)
		},
		Logger: fasthttpAdapter,

		Name:              "tinylog-demo",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(logger *tinylog.Logger, ctx *fasthttp.RequestCtx) {
	logger.Infof("%s %s", ctx.Method(), ctx.Path())
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) (tinylog.Level, bool) {
	if strings.Contains(msg, "connection cannot be served") {
		return tinylog.LevelWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return tinylog.LevelError, true
	}

	return compat.DetectLogLevel(msg)
}

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cms-console/internal/infra/httpserver"
	"cms-console/internal/mockcms"

	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.String("addr", ":5000", "address the content service listens on")
	origins := pflag.StringSlice("allowed-origins", nil, "origins allowed to call the content service")
	pflag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("starting in-memory content service", slog.String("addr", *addr))

	server := httpserver.NewServer(
		httpserver.Options{Addr: *addr, AllowedOrigins: *origins},
		mockcms.NewController(mockcms.NewStore()),
	)
	go server.Run()

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	server.Shutdown()
	slog.Info("good bye!!!")
}

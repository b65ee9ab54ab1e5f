package system

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/server"
)

type ServeCmd struct {
	Port int    `short:"p" default:"8990" help:"Port to listen on."`
	Host string `default:"127.0.0.1" help:"Host interface to bind."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	port := c.Port
	if port == 0 {
		port = constants.DefaultServePort
	}
	addr := fmt.Sprintf("%s:%d", c.Host, port)

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !ctx.Gateway.Available() {
		fmt.Println("⚠ Remote gateway not configured; API endpoints will respond 503")
	}
	fmt.Printf("Serving API on http://%s\n", addr)

	return server.ListenAndServe(sigCtx, addr, server.NewHandler(ctx.Gateway))
}

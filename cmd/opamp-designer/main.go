// Command opamp-designer computes resistor values for an op-amp gain and
// offset stage from five calibration voltages.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-opamp/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("opamp-designer: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second signal terminates the process with the default handler.
		<-ctx.Done()
		stop()
	}()

	if err := cli.Execute(ctx, cli.StdStreams(), os.Args[1:]); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}

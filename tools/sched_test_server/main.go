package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwarfield-amplify/rcubic/tools/schedserv"
)

func main() {
	srv, err := schedserv.Start("127.0.0.1:28002")
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start test scheduler:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintf(os.Stderr, "test scheduler listening on %s\n", srv.Addr)
	_, _ = fmt.Fprintf(os.Stderr, "try: rcubic-ctl cancel --addr 127.0.0.1 --port 28002 --cacert %s\n", srv.CACert)
	defer srv.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

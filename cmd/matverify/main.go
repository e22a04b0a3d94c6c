// Command matverify checks externally produced matrix products and plots how
// the recorded multiplication times scale with matrix size and parallelism.
//
// Usage:
//
//	matverify                 # verify + timings, concurrently
//	matverify verify [root]   # correctness only
//	matverify timings         # aggregate timing files, print the table, write the plot
//	matverify watch [root]    # re-verify whenever files under root change
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of bamboo-weaver requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/weaver` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless renders are available via ./cmd/weave-snapshot.")
	os.Exit(2)
}

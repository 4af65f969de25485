//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of sonolife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sonolife` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless run try `go run ./cmd/lifescore`.")
	os.Exit(2)
}

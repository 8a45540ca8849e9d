package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/divinelang/divinepl/internal/cli"
	"github.com/divinelang/divinepl/internal/sabbath"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The sabbath gate prints its own admonition
		if !errors.Is(err, sabbath.ErrSabbath) {
			fmt.Fprintf(os.Stderr, "Divine Error: %v\n", err)
		}
		os.Exit(1)
	}
}

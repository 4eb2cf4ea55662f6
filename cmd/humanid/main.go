package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/humanids/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "humanid: %v\n", err)
		os.Exit(1)
	}
}

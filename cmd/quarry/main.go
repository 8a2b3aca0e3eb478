package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var status *exitStatus
		if errors.As(err, &status) {
			if status.msg != "" {
				fmt.Fprintln(os.Stderr, status.msg)
			}
			os.Exit(status.code)
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

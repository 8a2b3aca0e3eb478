package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// confirmProceed asks for an explicit yes before anything mutates.
// Declining, closing stdin, or running without a terminal all count as
// a decline; only `--yes` bypasses the prompt.
func confirmProceed(in io.Reader, out io.Writer, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	if file, ok := in.(*os.File); ok {
		fd := file.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			fmt.Fprintln(out, "Not an interactive terminal; pass --yes to proceed without a prompt.")
			return false
		}
	}

	fmt.Fprint(out, "Proceed with these moves? (y/n): ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes"
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput returns the text of the file named by args[idx], or stdin when
// that argument is missing or "-".
func readInput(cmd *cobra.Command, args []string, idx int) (string, error) {
	if idx >= len(args) || args[idx] == "-" {
		data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	// Open the file, check for errors, and defer closing file
	file, err := os.Open(args[idx])
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[idx], err)
	}
	return string(data), nil
}

// Package cli contains adapters between the terminal and the service
// ports.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinConfirmer implements secondary.Confirmer with a y/N prompt.
type StdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewStdinConfirmer creates a confirmer reading stdin and writing stdout.
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{in: os.Stdin, out: os.Stdout}
}

// NewConfirmerWithStreams creates a confirmer on the given streams.
// This variant allows testing.
func NewConfirmerWithStreams(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: in, out: out}
}

// Confirm asks a yes/no question. Anything but "y"/"yes" is a no.
func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

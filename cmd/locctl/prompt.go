package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads operator answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. io.EOF is returned once
// input runs out and no partial line is left.
func (p *prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Anything other than y or yes is a no.
func (p *prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

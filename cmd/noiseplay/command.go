package main

import (
	"strconv"
	"strings"
)

type command struct {
	delta   int
	press   bool
	restart bool
}

func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return command{}, usageError("empty command")
	case "+":
		return command{delta: 1}, nil
	case "-":
		return command{delta: -1}, nil
	case "b":
		return command{press: true}, nil
	case "s":
		return command{restart: true}, nil
	}

	if line[0] != '+' && line[0] != '-' {
		return command{}, usageError("unknown command %q", line)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return command{}, usageError("invalid encoder move %q", line)
	}
	return command{delta: n}, nil
}

func (c command) apply(r *tickReader) {
	switch {
	case c.restart:
		r.Restart()
	case c.press:
		r.Press()
	default:
		r.Move(c.delta)
	}
}

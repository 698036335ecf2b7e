package main

import (
	"io"
	"strings"
)

// uiMode выбирает, рисовать ли прогресс пакетного parse через Bubble Tea.
// Значение приходит из --ui или из [run] ui в cppfqn.toml.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// readUIMode accepts the same auto|on|off values as --color; empty is auto.
func readUIMode(value string) (uiMode, error) {
	if strings.TrimSpace(value) == "" {
		return uiModeAuto, nil
	}
	v, err := readToggle("--ui", value)
	if err != nil {
		return "", err
	}
	return uiMode(v), nil
}

// shouldUseTUI: --quiet всегда выключает прогресс, auto включает его
// только когда stdout терминал.
func shouldUseTUI(mode uiMode, quiet bool, out io.Writer) bool {
	switch {
	case quiet || mode == uiModeOff:
		return false
	case mode == uiModeOn:
		return true
	}
	return writerIsTerminal(out)
}

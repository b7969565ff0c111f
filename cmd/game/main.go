package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/aimtrainer/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("failed to enable raw mode", "err", err)
	}

	_, err = loop.Run(os.Stdin, os.Stdout, loop.Options{})
	_ = term.Restore(fd, oldState)
	if err != nil {
		log.Fatal("game error", "err", err)
	}
}

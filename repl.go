package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

const historyFile = ".cellforth_history"

var (
	okColor  = color.New(color.FgGreen).SprintFunc()
	errColor = color.New(color.FgRed).SprintFunc()
)

// runREPL reads lines from the terminal until end of input or bye, running
// each one; errors are reported without stopping.
func runREPL(ctx context.Context, vm *VM) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	saveHistory := func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	defer saveHistory()

	// bye exits the process, skipping our deferred cleanup
	defer func(exit func(code int)) { vm.exit = exit }(vm.exit)
	exit := vm.exit
	vm.exit = func(code int) {
		saveHistory()
		ln.Close()
		exit(code)
	}

	for ctx.Err() == nil {
		line, err := ln.Prompt("")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		switch err := vm.Exec(line); {
		case errors.Is(err, errHalt):
			return nil
		case err != nil:
			fmt.Fprintln(os.Stderr, errColor(err.Error()))
		default:
			fmt.Println(okColor(" ok"))
		}
	}
	return ctx.Err()
}

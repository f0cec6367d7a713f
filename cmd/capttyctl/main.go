// Package main is the entry point for capttyctl, a CLI that spawns a
// command under a pseudo-terminal and streams a churn-suppressed
// transcript of its output to stdout as newline-delimited JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/tidwall/pretty"

	"github.com/dshills/captty/internal/capture"
	"github.com/dshills/captty/internal/capture/churn"
	"github.com/dshills/captty/internal/config"
	"github.com/dshills/captty/internal/ptyio"
	"github.com/dshills/captty/internal/term"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type cliOptions struct {
	cols        int
	rows        int
	prettyPrint bool
	showVersion bool
	command     []string
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("capttyctl %s (%s)\n", version, commit)
		return 0
	}
	if len(opts.command) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no command given")
		flag.Usage()
		return 1
	}

	logger := log.New(os.Stderr, "capttyctl: ", log.LstdFlags)
	cfg := config.FromEnv("CAPTTY")

	model := term.NewModel(term.Options{Cols: opts.cols, Rows: opts.rows, Scrollback: cfg.MaxHistory, Logger: logger})

	engine, err := capture.NewEngine(cfg.ToCaptureConfig(), churn.Default{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid capture config: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	model.Subscribe(func(v term.View, d term.Damage) {
		for _, e := range engine.OnDamage(v, d) {
			if opts.prettyPrint {
				b, err := json.Marshal(e)
				if err != nil {
					continue
				}
				os.Stdout.Write(pretty.Pretty(b))
			} else {
				_ = enc.Encode(e)
			}
		}
	})

	cmd := exec.Command(opts.command[0], opts.command[1:]...)
	session, err := ptyio.Spawn(cmd, uint16(opts.cols), uint16(opts.rows), model, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to spawn command: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		session.Close()
	}()

	<-session.Done()
	if err := session.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	defCols, defRows := ptyio.ControllingSize()

	flag.IntVar(&opts.cols, "cols", int(defCols), "terminal columns")
	flag.IntVar(&opts.rows, "rows", int(defRows), "terminal rows")
	flag.BoolVar(&opts.prettyPrint, "pretty", false, "pretty-print each transcript event")
	flag.BoolVar(&opts.showVersion, "version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "capttyctl - PTY-attached terminal capture\n\n")
		fmt.Fprintf(os.Stderr, "Usage: capttyctl [options] -- command [args...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	opts.command = flag.Args()
	return opts
}

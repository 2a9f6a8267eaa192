// Package main provides the CLI entry point for Partiso.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"partiso/internal/config"
	"partiso/internal/orchestrator"
	"partiso/internal/output"
	"partiso/internal/watcher"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	valuesFile := flag.String("file", "", "read values from a file, one per line")
	locale := flag.String("locale", "", "locale tag for display rendering (overrides configuration)")
	watch := flag.Bool("watch", false, "keep running and re-validate the values file on change")
	verbose := flag.Bool("verbose", false, "print each value's bounds as it is parsed")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: partiso [flags] [values...]")
		fmt.Fprintln(os.Stderr, "Parses partial-precision ISO 8601 values into range bounds.")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	outConfig := output.DefaultConfig()
	outConfig.Verbose = *verbose
	out := output.New(outConfig)

	runner := orchestrator.New(cfg, nil, out)

	values := flag.Args()
	if len(values) == 0 && *valuesFile == "" {
		flag.Usage()
		os.Exit(1)
	}
	if len(values) > 0 && *watch {
		fmt.Fprintln(os.Stderr, "Error: -watch requires -file")
		os.Exit(1)
	}

	runOnce := func() *orchestrator.Summary {
		if *valuesFile != "" {
			summary, err := runner.RunFile(*valuesFile, *locale)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return summary
		}
		return runner.Run(values, *locale)
	}

	summary := runOnce()
	out.Info("%s", summary.PrintResults())
	out.Info("%s", summary.PrintSummary())

	if *watch {
		w := watcher.New(&watcher.Config{DebounceSeconds: cfg.Watch.DebounceSeconds}, func(string) error {
			s := runOnce()
			out.Info("%s", s.PrintResults())
			out.Info("%s", s.PrintSummary())
			if s.HasErrors() {
				return fmt.Errorf("%d value(s) failed", s.ErrorCount)
			}
			return nil
		})
		if err := w.Start(*valuesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out.Info("Watching %s for changes (Ctrl-C to stop)", *valuesFile)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		w.Stop()
		return
	}

	if summary.HasErrors() {
		os.Exit(1)
	}
}

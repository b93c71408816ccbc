// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/declinator/declension"
	"github.com/czcorpus/declinator/server"
)

var (
	version      string
	buildDate    string
	gitCommit    string
	levelMapping = map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
)

type CmdOptions struct {
	Host             string
	Port             int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	LogPath          string
	LogLevel         string
	Animate          bool
}

func setupLog(path, level string) {
	lev, ok := levelMapping[level]
	if !ok {
		log.Fatal().Msgf("invalid logging level: %s", level)
	}
	zerolog.SetGlobalLevel(lev)
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal().Msgf("Failed to initialize log. File: %s", path)
		}
		log.Logger = log.Output(logf)

	} else {
		log.Logger = log.Output(
			zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		)
	}
}

func runInflect(phrase string, animate bool) {
	if phrase == "" {
		fmt.Fprintln(os.Stderr, "nothing to decline")
		os.Exit(1)
	}
	ans := declension.Inflect(phrase, animate)
	for _, f := range declension.AllForms() {
		fmt.Printf("%s\t%s\n", f, ans.Get(f))
	}
}

func main() {
	cmdOpts := new(CmdOptions)
	flag.StringVar(&cmdOpts.Host, "host", "", "Host to listen on")
	flag.IntVar(&cmdOpts.Port, "port", 0, "Port to listen on")
	flag.IntVar(&cmdOpts.ReadTimeoutSecs, "read-timeout", 0, "Server read timeout in seconds")
	flag.IntVar(&cmdOpts.WriteTimeoutSecs, "write-timeout", 0, "Server write timeout in seconds")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")
	flag.BoolVar(&cmdOpts.Animate, "animate", false, "Use masculine animate plural forms (inflect action only)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"declinator - a Czech name declension service"+
				"\n\nUsage:"+
				"\n\t%s [options] start [conf.json]"+
				"\n\t%s [options] inflect [phrase]"+
				"\n\t%s version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	action := flag.Arg(0)

	switch action {
	case "version":
		fmt.Printf("CNC Declinator %s\nbuild date: %s\nlast commit: %s\n",
			version, buildDate, gitCommit)
		return
	case "start":
		conf := findAndLoadConfig(flag.Arg(1), cmdOpts)
		log.Info().
			Str("version", version).
			Str("buildDate", buildDate).
			Str("lastCommit", gitCommit).
			Msg("Starting CNC Declinator")
		ctx, stop := signal.NotifyContext(
			context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		server.RunService(ctx, conf)
	case "inflect":
		runInflect(flag.Arg(1), cmdOpts.Animate)
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}
}

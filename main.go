package main

import (
	"flag"
	"fmt"
	"os"

	"fruit-salad/config"
	"fruit-salad/datastruct/list"
	"fruit-salad/logger"
	"fruit-salad/pkg/util"
	"fruit-salad/salad"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	configFile = flag.String("c", "salad.conf", "config file")
	mode       = flag.String("mode", "", "container backing the salad: linked or deque")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.SetUpConfig(*configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	props := config.Properties
	if *mode != "" {
		props.Mode = *mode
		if err := props.Validate(); err != nil {
			return err
		}
	}

	level, err := logrus.ParseLevel(props.LogLevel)
	if err != nil {
		return fmt.Errorf("loglevel: %w", err)
	}
	err = logger.Configure(&logger.Configuration{
		Level:         level,
		TimeFormat:    "2006-01-02 15:04:05.000",
		LogPath:       props.LogDir,
		EnableFileLog: props.EnableFileLog,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	log := logger.WithFields(logrus.Fields{"run_id": props.RunID})
	log.Infof("fruit salad starting, mode %s, config %q", props.Mode, props.CfPath)

	session := salad.NewSession(
		newSequence(props.Mode, props.Fruits),
		util.NewRand(int64(props.Seed)),
		os.Stdin,
		os.Stdout,
		salad.WithMode(props.Mode),
		salad.WithColor(props.Color && term.IsTerminal(int(os.Stdout.Fd()))),
		salad.WithEcho(!term.IsTerminal(int(os.Stdin.Fd()))),
		salad.WithLogger(log),
	)
	if err := session.Run(); err != nil {
		log.Errorf("session failed: %v", err)
		return err
	}
	log.Info("fruit salad finished")
	return nil
}

func newSequence(mode string, fruits []string) list.Sequence {
	if mode == config.ModeDeque {
		return list.NewArrayDeque(fruits...)
	}
	return list.NewLinked(fruits...)
}

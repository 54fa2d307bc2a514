// Command probability explores the textbook's models from a terminal: set expressions over the standard sample
// space, probability distributions, Monte Carlo simulations and the chapter route table.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type handler func(input string) (exitCode int)
type command func(*kingpin.Application, *env) (*kingpin.CmdClause, handler)

// env is what every command writes to.
type env struct {
	out io.Writer
	log *logrus.Logger
}

var commands = []command{
	evalCommand,
	regionsCommand,
	distCommand,
	simulateCommand,
	chaptersCommand,
	tourCommand,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("probability", "Explore sets, distributions and simulations from the probability textbook.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	logLevel := app.Flag("log-level", "log level").
		Default("warn").
		Envar("PROBABILITY_LOG_LEVEL").
		Enum("debug", "info", "warn", "error")

	log := logrus.New()
	log.SetOutput(stderr)
	e := &env{out: stdout, log: log}

	handlers := map[string]handler{}
	for _, cmdFunction := range commands {
		cmd, h := cmdFunction(app, e)
		handlers[cmd.FullCommand()] = h
	}

	input, err := app.Parse(args)
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}
	log.SetLevel(level)

	h := handlers[strings.Split(input, " ")[0]]
	if h == nil {
		app.Errorf("no command given")
		return 2
	}
	return h(input)
}

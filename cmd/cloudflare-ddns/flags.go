package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errHelpRequested = errors.New("help requested")

type flags struct {
	configPath  string
	logLevel    string
	version     bool
	verifyToken bool
}

// parseFlags parses the program arguments, where args[0]
// is the program name. Each flag has a short and a long name.
func parseFlags(args []string, output io.Writer) (f flags, err error) {
	flagSet := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(output)

	const (
		defaultConfigPath = "config.json"
		defaultLogLevel   = "info"
	)
	flagSet.StringVar(&f.configPath, "c", defaultConfigPath, "path to the JSON configuration file")
	flagSet.StringVar(&f.configPath, "config", defaultConfigPath, "path to the JSON configuration file")
	flagSet.StringVar(&f.logLevel, "l", defaultLogLevel, "log level: verbose, debug, info, warning or error")
	flagSet.StringVar(&f.logLevel, "log-level", defaultLogLevel, "log level: verbose, debug, info, warning or error")
	flagSet.BoolVar(&f.version, "v", false, "print the version and exit")
	flagSet.BoolVar(&f.version, "version", false, "print the version and exit")
	flagSet.BoolVar(&f.verifyToken, "t", false, "verify the Cloudflare API token and exit")
	flagSet.BoolVar(&f.verifyToken, "verify-token", false, "verify the Cloudflare API token and exit")

	err = flagSet.Parse(args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		return f, errHelpRequested
	case err != nil:
		return f, fmt.Errorf("parsing flags: %w", err)
	case flagSet.NArg() > 0:
		return f, fmt.Errorf("%w: %v", errUnexpectedArguments, flagSet.Args())
	}
	return f, nil
}

var errUnexpectedArguments = errors.New("unexpected arguments")

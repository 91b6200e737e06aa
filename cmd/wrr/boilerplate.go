// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Version is overridden at link time with -ldflags "-X main.Version=...".
var Version = "development"

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"warn" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
}

// InitLog applies |cfg| to the standard logger.
func InitLog(cfg LogConfig) error {
	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "color":
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{})
	default:
		return errors.Errorf("unknown log format %q", cfg.Format)
	}
	log.SetLevel(lvl)

	return nil
}

// Must logs |msg| at Fatal level and exits if |err| is non-nil. |extra| is
// read as alternating field names and values.
func Must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[fmt.Sprintf("%v", extra[i])] = extra[i+1]
	}
	log.WithFields(f).Fatal(msg)
}

// configPaths lists where |configName| is looked up, in order: the working
// directory, then fairdiv/ under the user configuration directory.
func configPaths(configName string) []string {
	var paths = []string{configName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fairdiv", configName))
	}
	return paths
}

// loadConfigFile applies the first existing file of |paths| to |parser|.
// Keys unknown to |parser| are ignored. It returns the applied path, or ""
// if none of |paths| exist.
func loadConfigFile(parser *flags.Parser, paths []string) (string, error) {
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown
	defer func() { parser.Options = origOptions }()

	var ini = flags.NewIniParser(parser)
	for _, path := range paths {
		if err := ini.ParseFile(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, "parsing %s", path)
		}
	}
	return "", nil
}

// MustParseConfig parses |parser| from the optional INI file |configName|,
// then environment bindings and command-line flags, which take precedence.
func MustParseConfig(parser *flags.Parser, configName string) {
	var path, err = loadConfigFile(parser, configPaths(configName))
	Must(err, "failed to load configuration file")

	if path != "" {
		log.WithField("path", path).Debug("loaded configuration file")
	}
	MustParseArgs(parser)
}

// MustParseArgs parses os.Args and executes the selected command, exiting
// non-zero on any parse or command error.
func MustParseArgs(parser *flags.Parser) {
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var flagErr, ok = err.(*flags.Error)
		if !ok {
			// Commands return plain errors, which go-flags already printed.
			os.Exit(1)
		}

		switch flagErr.Type {
		case flags.ErrCommandRequired:
			parser.WriteHelp(os.Stderr)
		case flags.ErrHelp:
			if parser.Options&flags.PrintErrors == 0 {
				parser.WriteHelp(os.Stderr)
			}
		default:
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "\nwrr version %s.\n", Version)
		os.Exit(1)
	}
}

// AddPrintConfigCmd to the Parser. The "print-config" command writes the
// combined configuration to |out| in INI format.
func AddPrintConfigCmd(parser *flags.Parser, configName string, out io.Writer) {
	_, err := parser.AddCommand("print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+configName+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
The output is itself a valid `+configName+`.
`, &printConfig{parser: parser, out: out})
	Must(err, "failed to add print-config command")
}

type printConfig struct {
	parser *flags.Parser
	out    io.Writer
}

func (p *printConfig) Execute([]string) error {
	flags.NewIniParser(p.parser).Write(p.out, flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}

package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/bassclef/bcpost"
	"github.com/bassclef/bcpost/internal/config"
)

// defaultConfigPath is where the shared site configuration lives when no
// --config flag is given.
const defaultConfigPath = "config.yaml"

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	configPath string
	webroot    string
	webrootSet bool
}

// parseFlags parses args, including the program name at args[0].
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags := &cliFlags{}
	fs.StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "site configuration file")
	fs.StringVarP(&flags.webroot, "webroot", "w", "", "web root override (skips the config file)")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	flags.webrootSet = fs.Changed("webroot")
	return flags, nil
}

// resolveWebroot returns the web root from the --webroot override or the
// site configuration file. There is no built-in default: a site's web root
// must be stated, even if stated as empty.
func resolveWebroot(flags *cliFlags) (string, error) {
	if flags.webrootSet {
		return flags.webroot, nil
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return "", err
	}
	return cfg.Lookup("webroot")
}

// run wires flags, configuration, and streams into the service. pandoc HTML
// comes in on stdin, corrected HTML goes out on stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	webroot, err := resolveWebroot(flags)
	if err != nil {
		return err
	}

	svc := bcpost.NewService(bcpost.WithWebroot(webroot))
	return svc.Process(stdin, stdout)
}

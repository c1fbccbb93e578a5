package config

import "flag"

var CliArgs *CliConfig

type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
	Invoke     bool
	Prompt     string
}

func ParseArgs() {
	if CliArgs != nil {
		panic("already defined")
	}
	CliArgs = &CliConfig{}
	flag.StringVar(&CliArgs.ConfigFile, "config", "", "Path to the config file")
	flag.BoolVar(&CliArgs.Debug, "d", false, "Enable debug mode")
	flag.BoolVar(&CliArgs.Debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&CliArgs.Version, "v", false, "Print version and exit")
	flag.BoolVar(&CliArgs.Invoke, "invoke", false, "Run a single invocation and print the response instead of serving")
	flag.StringVar(&CliArgs.Prompt, "prompt", "", "Prompt for -invoke; reads a JSON payload from stdin when empty")
	flag.Parse()
}

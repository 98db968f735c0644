package models

type Flags struct {
	Mode       string `short:"m" long:"mode" env:"MODE" required:"true" description:"The mode Local Pokedex is running in: cli/docker" default:"cli"`
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to the configuration file" default:"config.json"`
}

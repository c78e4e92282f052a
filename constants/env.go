package constants

const (
	// NetplanEnvConfigDirs is an env var holding a colon-separated list of
	// directories to read netplan config from, overriding the built-in
	// defaults.
	NetplanEnvConfigDirs = "NETPLAN_PARSER_DIRS"
)

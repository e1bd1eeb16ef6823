package types

// Strategy selects how a binary's linkage is inspected.
type Strategy string

const (
	StrategyLdd     Strategy = "ldd"
	StrategyReadelf Strategy = "readelf"
)

type Backend string

const (
	BackendPacman Backend = "pacman"
	BackendDpkg   Backend = "dpkg"
)

type OutputFormat string

const (
	OutputFormatConsole OutputFormat = "console"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatYAML    OutputFormat = "yaml"
)

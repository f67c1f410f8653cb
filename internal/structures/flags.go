package structures

// CliFlags carries command line values; non-empty ones win over the config file.
type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	Sudo       string
	Input      string
	Output     string
	Format     string
}

package structures

type InputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type OutputConfig struct {
	Path     string `yaml:"path" validate:"required"`
	Format   string `yaml:"format" validate:"required|in:json,pebble"`
	Compress bool   `yaml:"compress"`
}

type ForumConfig struct {
	Sudo string `yaml:"sudo" validate:"required|accountID"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Forum   ForumConfig   `yaml:"forum"`
	Logger  LoggerConfig  `yaml:"logger"`
	Metrics MetricsConfig `yaml:"metrics"`
}

package entities

type CarbonjConfig struct {
	LogLevel      string `mapstructure:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	LogFormat     string `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
	Journal       bool   `mapstructure:"journal"`
	WorkspaceRoot string `mapstructure:"workspace_root" validate:"omitempty,dir"`
}

func DefaultConfig() *CarbonjConfig {
	return &CarbonjConfig{
		LogLevel:  "warning",
		LogFormat: "text",
	}
}

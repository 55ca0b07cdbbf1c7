package tableau

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultShrinkThreshold is the spare capacity a dense array may carry after a
// removal before its backing allocation is shrunk to fit.
const DefaultShrinkThreshold = 20

// Config holds global configuration shared by every scene
var Config config = config{
	logger:          zap.NewNop(),
	shrinkThreshold: DefaultShrinkThreshold,
}

type config struct {
	logger          *zap.Logger
	shrinkThreshold int
}

// SetLogger configures the logger new scenes are created with
func (c *config) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

func (c *config) Logger() *zap.Logger {
	return c.logger
}

// SetShrinkThreshold configures the dense array shrink hysteresis. Negative
// values are clamped to zero, which shrinks on every removal.
func (c *config) SetShrinkThreshold(n int) {
	c.shrinkThreshold = max(n, 0)
}

func (c *config) ShrinkThreshold() int {
	return c.shrinkThreshold
}

// FileConfig is the on-disk form of Config.
type FileConfig struct {
	LogLevel        string `yaml:"log_level"`
	Development     bool   `yaml:"development"`
	ShrinkThreshold *int   `yaml:"shrink_threshold"`
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return fc, nil
}

// Apply builds the configured logger and installs the settings into Config.
func (fc FileConfig) Apply() error {
	logger, err := fc.buildLogger()
	if err != nil {
		return err
	}
	Config.SetLogger(logger)
	if fc.ShrinkThreshold != nil {
		Config.SetShrinkThreshold(*fc.ShrinkThreshold)
	}
	return nil
}

func (fc FileConfig) buildLogger() (*zap.Logger, error) {
	if fc.LogLevel == "" || fc.LogLevel == "none" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(fc.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", fc.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if fc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableCaller = true

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

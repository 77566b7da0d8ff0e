package uploadkit

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Stem for filenames synthesized from anonymous data URIs
	FilenameStem string `env:"UPLOADKIT_FILENAME_STEM,default:data_uri_file"`

	// Image extensions reported as needing format conversion, comma-separated
	ConversionExtensions string `env:"UPLOADKIT_CONVERSION_EXTENSIONS"`

	// Maximum sanitized filename length
	MaxNameLength int `env:"UPLOADKIT_MAX_NAME_LENGTH,default:255"`

	// Sniff payload MIME types for data URIs without a declared type
	SniffMIMETypes bool `env:"UPLOADKIT_SNIFF_MIME_TYPES,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewIntakeFromConfig builds an Intake from a loaded Config. A nil config
// yields the default intake.
func NewIntakeFromConfig(cfg *Config) *Intake {
	if cfg == nil {
		return NewIntake()
	}
	opts := []IntakeOption{
		WithFilenameStem(cfg.FilenameStem),
		WithSanitizer(LimitedSanitizer(cfg.MaxNameLength)),
		WithSniffing(cfg.SniffMIMETypes),
	}
	if cfg.ConversionExtensions != "" {
		opts = append(opts, WithConversionExtensions(strings.Split(cfg.ConversionExtensions, ",")...))
	}
	return NewIntake(opts...)
}

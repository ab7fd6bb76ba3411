// Package config loads application settings from an optional YAML file,
// SCREENFORGE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrsinham/screenforge/internal/document"
	"github.com/mrsinham/screenforge/internal/screening"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. SCREENFORGE_OUTPUT_DIR.
const EnvPrefix = "SCREENFORGE"

// Config holds every setting the commands need.
type Config struct {
	OutputDir string   `mapstructure:"output_dir"`
	Naming    Naming   `mapstructure:"naming"`
	Template  Template `mapstructure:"template"`
	Table     Table    `mapstructure:"table"`
	Log       Log      `mapstructure:"log"`
}

// Naming controls output filenames.
type Naming struct {
	Prefix string `mapstructure:"prefix"`
	Text   string `mapstructure:"text"`
	Table  string `mapstructure:"table"`
}

// Template selects the narrative and its header values.
type Template struct {
	Variant  string                        `mapstructure:"variant"`
	File     string                        `mapstructure:"file"`
	Metadata map[string]screening.Metadata `mapstructure:"metadata"`
}

// Table configures table-mode documents.
type Table struct {
	Title string `mapstructure:"title"`
}

// Log configures the logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"output-dir": "output_dir",
	"log-level":  "log.level",
	"log-format": "log.format",
	"template":   "template.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", ".")
	v.SetDefault("naming.prefix", document.DefaultPrefix)
	v.SetDefault("naming.text", document.FullID.String())
	v.SetDefault("naming.table", document.LastFour.String())
	v.SetDefault("template.variant", screening.VariantScreening)
	v.SetDefault("template.file", "")
	v.SetDefault("table.title", document.DefaultTableTitle)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads the configuration. When path is empty an optional
// screenforge.yaml in the working directory is used. Flags that were set
// explicitly on flags override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("screenforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the naming strategies and the template variant.
func (c *Config) Validate() error {
	if _, err := document.ParseFilenameStrategy(c.Naming.Text); err != nil {
		return fmt.Errorf("naming.text: %w", err)
	}
	if _, err := document.ParseFilenameStrategy(c.Naming.Table); err != nil {
		return fmt.Errorf("naming.table: %w", err)
	}
	if _, ok := screening.DefaultMetadata(c.Template.Variant); !ok {
		return fmt.Errorf("template.variant: %w %q", screening.ErrUnknownVariant, c.Template.Variant)
	}
	return nil
}

// NewWriter builds a document writer for the configured output directory and naming.
func (c *Config) NewWriter(log logrus.FieldLogger) (*document.Writer, error) {
	text, err := document.ParseFilenameStrategy(c.Naming.Text)
	if err != nil {
		return nil, err
	}
	tbl, err := document.ParseFilenameStrategy(c.Naming.Table)
	if err != nil {
		return nil, err
	}
	return document.NewWriter(c.OutputDir,
		document.WithPrefix(c.Naming.Prefix),
		document.WithTextNaming(text),
		document.WithTableNaming(tbl),
		document.WithTableTitle(c.Table.Title),
		document.WithLogger(log),
	)
}

// NewRenderer builds a renderer for variant, or for the configured variant
// when variant is empty.
func (c *Config) NewRenderer(variant string) (*screening.Renderer, error) {
	if variant == "" {
		variant = c.Template.Variant
	}
	opts := []screening.Option{screening.WithMetadata(c.Template.Metadata[variant])}
	if c.Template.File != "" {
		opts = append(opts, screening.WithTemplateFile(c.Template.File))
	}
	return screening.NewRenderer(variant, opts...)
}

package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmldoom.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultValuesDir is the default values directory.
	DefaultValuesDir = "values"

	// DefaultPollInterval is the default reload polling interval.
	DefaultPollInterval = "500ms"

	// DefaultRegion is the default publish region.
	DefaultRegion = "us-east-1"

	// DefaultContentType is the default content type of published pages.
	DefaultContentType = "text/html; charset=utf-8"
)

// Config represents the complete htmldoom.json configuration.
type Config struct {
	// Cache configures the render cache.
	Cache CacheConfig `json:"cache"`

	// Values configures the values directory.
	Values ValuesConfig `json:"values"`

	// Serve configures the preview server.
	Serve ServeConfig `json:"serve"`

	// Publish configures the S3 publisher.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// CacheConfig contains render cache settings.
type CacheConfig struct {
	// MaxEntries is the number of cached renders kept.
	MaxEntries int `json:"maxEntries,omitempty"`

	// Disabled turns the cache off.
	Disabled bool `json:"disabled"`
}

// ValuesConfig contains values directory settings.
type ValuesConfig struct {
	// Dir is the values directory, relative to the config file.
	Dir string `json:"dir,omitempty"`

	// Static doubles braces in text and raw values.
	Static bool `json:"static"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Reload enables live reload.
	Reload bool `json:"reload"`

	// PollInterval is how often the values directory is checked, e.g. "1s".
	PollInterval string `json:"pollInterval,omitempty"`

	// Metrics serves Prometheus metrics at /metrics.
	Metrics bool `json:"metrics"`

	// Tracing traces requests with the global OpenTelemetry provider.
	Tracing bool `json:"tracing"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint selects an S3-compatible service.
	Endpoint string `json:"endpoint,omitempty"`

	// ContentType is set on every object.
	ContentType string `json:"contentType,omitempty"`

	// CacheControl is set on every object when non-empty.
	CacheControl string `json:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Cache: CacheConfig{
			MaxEntries: render.DefaultCacheSize,
		},
		Values: ValuesConfig{
			Dir: DefaultValuesDir,
		},
		Serve: ServeConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			Reload:       true,
			PollInterval: DefaultPollInterval,
			Metrics:      true,
			Tracing:      true,
		},
		Publish: PublishConfig{
			Region:      DefaultRegion,
			ContentType: DefaultContentType,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmldoom.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E031").
				WithDetail("No htmldoom.json found in " + filepath.Dir(path)).
				WithSuggestion("Create htmldoom.json or run without --config to use defaults")
		}
		return nil, errors.New("E030").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E030").
			WithDetail("Failed to parse htmldoom.json: " + err.Error()).
			WithSuggestion("Check that htmldoom.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E030").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E030").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Cache.MaxEntries == 0 {
		c.Cache.MaxEntries = render.DefaultCacheSize
	}
	if c.Values.Dir == "" {
		c.Values.Dir = DefaultValuesDir
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.PollInterval == "" {
		c.Serve.PollInterval = DefaultPollInterval
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
	if c.Publish.ContentType == "" {
		c.Publish.ContentType = DefaultContentType
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E032").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if c.Cache.MaxEntries < 0 {
		return errors.New("E032").
			WithDetail("cache.maxEntries must not be negative")
	}
	if d, err := time.ParseDuration(c.Serve.PollInterval); err != nil || d <= 0 {
		return errors.New("E032").
			WithDetailf("serve.pollInterval %q is not a positive duration", c.Serve.PollInterval).
			WithSuggestion(`Use a Go duration such as "500ms" or "2s"`)
	}
	return nil
}

// ServeAddress returns the address string for the preview server.
func (c *Config) ServeAddress() string {
	return net.JoinHostPort(c.Serve.Host, strconv.Itoa(c.Serve.Port))
}

// ServeURL returns the full URL for the preview server.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress()
}

// PollDuration returns the parsed poll interval. Validate rejects values
// that do not parse.
func (c *Config) PollDuration() time.Duration {
	d, err := time.ParseDuration(c.Serve.PollInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultPollInterval)
	}
	return d
}

// ValuesPath returns the path to the values directory.
func (c *Config) ValuesPath() string {
	if filepath.IsAbs(c.Values.Dir) {
		return c.Values.Dir
	}
	return filepath.Join(c.Dir(), c.Values.Dir)
}

// RenderConfig returns the renderer configuration.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		CacheSize:    c.Cache.MaxEntries,
		DisableCache: c.Cache.Disabled,
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmldoom.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E031").
				WithDetail("No htmldoom.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest htmldoom.json
// at or above the working directory. Without one it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		cfg := New()
		cfg.configPath = filepath.Join(wd, ConfigFileName)
		return cfg, nil
	}

	return Load(root)
}

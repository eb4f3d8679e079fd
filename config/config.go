package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath            = "."
	defaultUpstreamBaseURL = "https://ecommerce.routemisr.com/api/v1"
	defaultUpstreamTimeout = 30 * time.Second
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultTokenKey        = "token"
	defaultReturnURL       = "http://localhost:3000"
	defaultQRSize          = 256
	defaultQRLevel         = "M"
)

// Token store providers.
const (
	TokenStoreBlob  = "blob"
	TokenStoreRedis = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream is the remote storefront REST API
	Upstream *UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Session configures where the session token is persisted
	Session *SessionConfig `json:"session" yaml:"session"`

	// Checkout configures hosted payment redirects
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UpstreamConfig defines the remote API endpoint
type UpstreamConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Transport-level timeout; zero means wait on the transport indefinitely
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines session token persistence
type SessionConfig struct {
	// Provider type: "blob" for a gocloud bucket or "redis"
	Store string `json:"store" yaml:"store"`

	// Bucket URL for the blob provider, e.g. file:///var/lib/storefront or mem://
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// Redis URL for the redis provider
	RedisURL string `json:"redisUrl" yaml:"redisUrl"`

	// Key under which the token is stored
	Key string `json:"key" yaml:"key"`

	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// CheckoutConfig defines hosted checkout configuration
type CheckoutConfig struct {
	// ReturnURL is where the payment page sends the shopper back to
	ReturnURL string `json:"returnUrl" yaml:"returnUrl"`

	QRSize  int    `json:"qrSize" yaml:"qrSize"`
	QRLevel string `json:"qrLevel" yaml:"qrLevel"`
}

// TelemetryConfig toggles tracing of upstream calls
type TelemetryConfig struct {
	Tracing bool `json:"tracing" yaml:"tracing"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// UPSTREAM_BASEURL -> upstream.baseUrl
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never see nil.
func (c *Config) ApplyDefaults() {
	if c.Upstream == nil {
		c.Upstream = &UpstreamConfig{}
	}
	if strings.TrimSpace(c.Upstream.BaseURL) == "" {
		c.Upstream.BaseURL = defaultUpstreamBaseURL
	}
	c.Upstream.BaseURL = strings.TrimRight(c.Upstream.BaseURL, "/")
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = defaultUpstreamTimeout
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Store == "" {
		c.Session.Store = TokenStoreBlob
	}
	if c.Session.BlobURL == "" {
		c.Session.BlobURL = "mem://"
	}
	if c.Session.Key == "" {
		c.Session.Key = defaultTokenKey
	}
	if c.Session.TokenTTL <= 0 {
		c.Session.TokenTTL = defaultTokenTTL
	}

	if c.Checkout == nil {
		c.Checkout = &CheckoutConfig{}
	}
	if c.Checkout.ReturnURL == "" {
		c.Checkout.ReturnURL = defaultReturnURL
	}
	if c.Checkout.QRSize <= 0 {
		c.Checkout.QRSize = defaultQRSize
	}
	if c.Checkout.QRLevel == "" {
		c.Checkout.QRLevel = defaultQRLevel
	}

	if c.Telemetry == nil {
		c.Telemetry = &TelemetryConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

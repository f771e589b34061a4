package opensilex

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/opensilex/go-client/sshconfig"
	"github.com/opensilex/go-client/util"
)

const DefaultBaseURL = "http://opensilex.org/sandbox/rest"

type Options struct {
	// BaseURL of the remote REST API. When empty and UseSSHConfig is set,
	// the SSH config is probed; otherwise DefaultBaseURL is used.
	BaseURL string `json:"baseURL,omitempty"`
	// Identifier and Password form the credential pair posted to the
	// authentication endpoint.
	Identifier string `json:"identifier,omitempty"`
	Password   string `json:"-"`

	RequestTimeout time.Duration `json:"requestTimeout,omitempty"`

	// UseSSHConfig enables resolving BaseURL from the SSH config file when
	// no BaseURL is given. SSHHost selects the alias; when empty, common
	// deployment aliases are probed.
	UseSSHConfig  bool   `json:"useSSHConfig,omitempty"`
	SSHHost       string `json:"sshHost,omitempty"`
	SSHConfigPath string `json:"sshConfigPath,omitempty"`

	// FetchConcurrency bounds the worker pool used by DataForExperiments.
	FetchConcurrency int `json:"fetchConcurrency,omitempty"`

	Logger util.Logger `json:"-"`
}

func (o *Options) CheckDefaults() {
	if o.BaseURL == "" && o.UseSSHConfig {
		hosts := sshconfig.ParseFile(o.SSHConfigPath)
		o.BaseURL = hosts.Resolve(o.SSHHost)
	}
	if o.BaseURL == "" {
		util.Infof("Using default base URL: %s", DefaultBaseURL)
		o.BaseURL = DefaultBaseURL
	}
	if o.Identifier == "" {
		o.Identifier = "admin@opensilex.org"
	}
	if o.Password == "" {
		o.Password = "admin"
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = time.Second * 30
	}
	if o.FetchConcurrency <= 0 {
		o.FetchConcurrency = 4
	}
}

// envOptions is the envconfig binding for OptionsFromEnv.
type envOptions struct {
	BaseURL        string        `envconfig:"BASE_URL"`
	Identifier     string        `envconfig:"IDENTIFIER"`
	Password       string        `envconfig:"PASSWORD"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	SSHHost        string        `envconfig:"SSH_HOST"`
}

// OptionsFromEnv builds Options from OPENSILEX_* environment variables,
// loading a .env file first when one is present.
func OptionsFromEnv() (*Options, error) {
	if err := godotenv.Load(); err != nil {
		util.Debugf("No .env file loaded: %v", err)
	}

	var env envOptions
	if err := envconfig.Process("opensilex", &env); err != nil {
		return nil, err
	}

	return &Options{
		BaseURL:        env.BaseURL,
		Identifier:     env.Identifier,
		Password:       env.Password,
		RequestTimeout: env.RequestTimeout,
		SSHHost:        env.SSHHost,
		UseSSHConfig:   env.BaseURL == "" && env.SSHHost != "",
	}, nil
}

type HTTPConfiguration struct {
	BasePath      string            `json:"basePath,omitempty"`
	DefaultHeader map[string]string `json:"defaultHeader,omitempty"`
	UserAgent     string            `json:"userAgent,omitempty"`
	HTTPClient    *http.Client
}

func NewConfiguration(options *Options) *HTTPConfiguration {
	return &HTTPConfiguration{
		BasePath: options.BaseURL,
		DefaultHeader: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		UserAgent: "OpenSILEX-Go-Client/" + VERSION + "/go",
		HTTPClient: &http.Client{
			// Set an explicit timeout so that we don't wait forever on a request
			Timeout: options.RequestTimeout,
		},
	}
}

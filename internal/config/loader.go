package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	appData         = "AppData"
	envmgrConfigDir = "AZDO_ENVMGR_CONFIG_DIR"
	xdgConfigHome   = "XDG_CONFIG_HOME"
	configFileName  = "config.yml"
	dotEnvFileName  = ".env"
)

type fileData struct {
	AzureDevOps struct {
		OrganizationURL     string `yaml:"organizationUrl"`
		PersonalAccessToken string `yaml:"personalAccessToken"`
		ProjectName         string `yaml:"projectName"`
	} `yaml:"azureDevOps"`
	Web struct {
		Listen    string   `yaml:"listen"`
		Highlight []string `yaml:"highlight"`
	} `yaml:"web"`
}

// Loader resolves a Config from the environment, a .env file, the YAML config file
// and, for the token only, the system keyring. Zero values select the defaults.
type Loader struct {
	// ConfigFile overrides the YAML file location.
	ConfigFile string
	// DotEnvFile overrides the .env file location.
	DotEnvFile string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// DisableKeyring skips the keyring lookup for the token.
	DisableKeyring bool
}

// Load resolves the configuration with the default Loader.
func Load() (Config, error) {
	return (&Loader{}).Load()
}

func (l *Loader) Load() (Config, error) {
	lookupEnv := l.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	dotEnvPath := l.DotEnvFile
	if dotEnvPath == "" {
		dotEnvPath = filepath.Join(".", dotEnvFileName)
	}
	dotEnv, err := godotenv.Read(dotEnvPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, &InvalidConfigFileError{Path: dotEnvPath, Err: err}
		}
		dotEnv = map[string]string{}
	}

	configPath := l.ConfigFile
	if configPath == "" {
		configPath = filepath.Join(ConfigDir(lookupEnv), configFileName)
	}
	file, err := readFile(configPath)
	if err != nil {
		return Config{}, err
	}

	// environment first, then .env, then the config file
	resolve := func(key, fromFile string) string {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return v
		}
		if v, ok := dotEnv[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		return fromFile
	}

	orgURL := resolve(envOrganizationURL, file.AzureDevOps.OrganizationURL)
	token := resolve(envToken, file.AzureDevOps.PersonalAccessToken)
	project := resolve(envProject, file.AzureDevOps.ProjectName)
	listen := resolve(envListen, file.Web.Listen)

	if strings.TrimSpace(token) == "" && strings.TrimSpace(orgURL) != "" && !l.DisableKeyring {
		token = tokenFromKeyring(OrganizationFromURL(orgURL))
	}

	return New(orgURL, token, project, WithListen(listen), WithHighlight(file.Web.Highlight))
}

func tokenFromKeyring(organization string) string {
	if organization == "" {
		return ""
	}
	token, err := keyring.Get(KeyringServiceName(organization), "")
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			zap.L().Debug("keyring lookup failed", zap.String("organization", organization), zap.Error(err))
		}
		return ""
	}
	return token
}

// KeyringServiceName is the keyring service the token of an organization is stored under.
func KeyringServiceName(organization string) string {
	return "azdo-envmgr:" + strings.ToLower(organization)
}

// StoreToken saves a token in the system keyring so the config file does not need to carry it.
func StoreToken(organization, token string) error {
	if strings.TrimSpace(organization) == "" {
		return fmt.Errorf("organization is required to store a token")
	}
	return keyring.Set(KeyringServiceName(organization), "", token)
}

func readFile(path string) (*fileData, error) {
	data := &fileData{}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, &InvalidConfigFileError{Path: path, Err: err}
	}
	zap.L().Debug("loaded configuration file", zap.String("path", path))
	return data, nil
}

// ConfigDir path precedence: AZDO_ENVMGR_CONFIG_DIR, XDG_CONFIG_HOME, AppData (windows only), HOME.
func ConfigDir(lookupEnv func(string) (string, bool)) string {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if a, _ := lookupEnv(envmgrConfigDir); a != "" {
		return a
	}
	if b, _ := lookupEnv(xdgConfigHome); b != "" {
		return filepath.Join(b, "azdo-envmgr")
	}
	if c, _ := lookupEnv(appData); runtime.GOOS == "windows" && c != "" {
		return filepath.Join(c, "AzDO EnvMgr")
	}
	d, _ := os.UserHomeDir()
	return filepath.Join(d, ".config", "azdo-envmgr")
}

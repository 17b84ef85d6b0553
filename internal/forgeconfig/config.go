package forgeconfig

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/layerforge/layerforge/internal/build"
	"github.com/layerforge/layerforge/internal/lambda"
	"github.com/layerforge/layerforge/internal/layout"
	"github.com/layerforge/layerforge/internal/storage"
)

// configFile is the on-disk shape of layerforge.yaml, the per-project
// manifest driving builds and publications.
type configFile struct {
	LayerName      string        `yaml:"layerName"`
	Tool           string        `yaml:"tool"`
	Runtime        string        `yaml:"runtime"`
	Arch           string        `yaml:"arch"`
	Pyproject      string        `yaml:"pyproject,omitempty"`
	Container      bool          `yaml:"container,omitempty"`
	Bin            string        `yaml:"bin,omitempty"`
	IgnorePackages []string      `yaml:"ignorePackages,omitempty"`
	Index          *configIndex  `yaml:"index,omitempty"`
	Storage        configStorage `yaml:"storage"`
}

// configIndex points builds at a private package index. Credentials are
// never written into the config file, only the names of the environment
// variables holding them.
type configIndex struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	UsernameEnv string `yaml:"usernameEnv,omitempty"`
	PasswordEnv string `yaml:"passwordEnv,omitempty"`
}

type configStorage struct {
	Type   string `yaml:"type"`
	Dir    string `yaml:"dir,omitempty"`
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Region string `yaml:"region,omitempty"`
}

const defaultFileName = "layerforge.yaml"

type Config struct {
	*configFile
	path string
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "fail to read config file")
	}

	var cfg configFile

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "fail to decode config content")
	}

	c := &Config{configFile: &cfg, path: path}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Layout derives the local build paths from the configured pyproject.toml,
// defaulting to the one next to the config file.
func (c *Config) Layout() *layout.PathLayout {
	pyproject := c.Pyproject
	if pyproject == "" {
		pyproject = "pyproject.toml"
	}

	if !filepath.IsAbs(pyproject) {
		pyproject = filepath.Join(filepath.Dir(c.path), pyproject)
	}

	return layout.New(pyproject)
}

func (c *Config) GetStorage() (storage.Object, error) {
	switch c.Storage.Type {
	case "local":
		dir := c.Storage.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(c.path), dir)
		}

		return storage.NewFileStore(dir), nil
	case "s3":
		store, err := storage.NewS3Store(c.Storage.Bucket, c.Storage.Prefix, c.Storage.Region)
		return store, errors.Wrap(err, "fail to initialize s3 storage")
	default:
		return nil, errors.Errorf("unknown storage type %q", c.Storage.Type)
	}
}

// GetCredentials resolves the configured private index into build
// credentials, reading the secret values from the environment. Nil when no
// index is configured.
func (c *Config) GetCredentials() *build.Credentials {
	if c.Index == nil {
		return nil
	}

	creds := &build.Credentials{
		IndexName: c.Index.Name,
		IndexURL:  c.Index.URL,
	}

	if c.Index.UsernameEnv != "" {
		creds.Username = os.Getenv(c.Index.UsernameEnv)
	}

	if c.Index.PasswordEnv != "" {
		creds.Password = os.Getenv(c.Index.PasswordEnv)
	}

	return creds
}

func (c *Config) GetLambdaClient() (lambda.Client, error) {
	client, err := lambda.NewAWSClient(c.Storage.Region)
	return client, errors.Wrap(err, "fail to initialize lambda client")
}

package rstgen

import (
	"os"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nieomylnieja/rstgen/internal/symbols"
)

const (
	defaultOutputRoot = "source"
	defaultIndexFile  = "index.rst"
)

// Config controls which part of a namespace is documented and where the
// generated tree is written.
type Config struct {
	// OutputRoot is the directory the generated tree is written under.
	OutputRoot string `yaml:"outputRoot"`
	// IndexFile is the file name used for every module document.
	IndexFile string `yaml:"indexFile"`
	// Namespace is the token a fully qualified module name must contain
	// for the module to be documentable, typically the library root's
	// dotted name.
	Namespace string `yaml:"namespace"`
	// ImportPath is the Go import path of the documented library's root
	// package. It is rewritten to Namespace when resolving the defining
	// module of functions and classes.
	ImportPath string `yaml:"importPath"`
	// Exclude lists fully qualified module names that must never be
	// documented, e.g. internal dispatch-registration modules.
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a Config documenting the given namespace under the
// default output root.
func DefaultConfig(namespace, importPath string) Config {
	return Config{
		OutputRoot: defaultOutputRoot,
		IndexFile:  defaultIndexFile,
		Namespace:  namespace,
		ImportPath: importPath,
	}
}

// LoadConfig reads a YAML configuration file. Missing OutputRoot and
// IndexFile fall back to their defaults; everything else is left for
// [Config.Validate] to reject.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read configuration file")
	}
	var conf Config
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode configuration file %s", path)
	}
	if conf.OutputRoot == "" {
		conf.OutputRoot = defaultOutputRoot
	}
	if conf.IndexFile == "" {
		conf.IndexFile = defaultIndexFile
	}
	return conf, nil
}

var configValidator = govy.New(
	govy.For(func(c Config) string { return c.OutputRoot }).
		WithName("outputRoot").
		Rules(rules.StringNotEmpty()),
	govy.For(func(c Config) string { return c.IndexFile }).
		WithName("indexFile").
		Rules(rules.StringNotEmpty()),
	govy.For(func(c Config) string { return c.Namespace }).
		WithName("namespace").
		Rules(rules.StringNotEmpty()),
).WithName("Config")

// Validate checks the configuration, returning a rule-level error
// description on failure.
func (c Config) Validate() error {
	return configValidator.Validate(c)
}

func (c Config) mapping() symbols.Mapping {
	return symbols.Mapping{ImportPath: c.ImportPath, Namespace: c.Namespace}
}

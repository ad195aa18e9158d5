// rstgen writes the reStructuredText documentation tree for a runtime
// namespace. The command drives the generator against the sample library
// shipped with this repository; library authors embed the generator by
// calling rstgen.Generate with their own root module instead.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/nieomylnieja/rstgen/internal/testlib"
	"github.com/nieomylnieja/rstgen/pkg/object"
	"github.com/nieomylnieja/rstgen/pkg/rstgen"
)

// cliOptions describes the rstgen CLI flags.
type cliOptions struct {
	Output      string `short:"o" long:"output" description:"Output root directory (overrides configuration)"`
	ConfigPath  string `short:"c" long:"config" description:"Path to YAML configuration file"`
	DocComments bool   `short:"d" long:"doc-comments" description:"Resolve Go doc comments into the generated documents"`
	Verbose     bool   `short:"v" long:"verbose" description:"Log every written document"`
}

func main() {
	var opts cliOptions
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	if err := run(opts, testlib.Namespace(), logger); err != nil {
		logger.Error("documentation generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(opts cliOptions, root *object.Module, logger *zap.Logger) error {
	conf := rstgen.DefaultConfig(testlib.Name, testlib.ImportPath)
	if opts.ConfigPath != "" {
		loaded, err := rstgen.LoadConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
		conf = loaded
	}
	if opts.Output != "" {
		conf.OutputRoot = opts.Output
	}

	var genOpts []rstgen.GenerateOption
	if opts.DocComments {
		genOpts = append(genOpts, rstgen.WithDocComments())
	}

	summary, err := rstgen.Generate(root, conf, genOpts...)
	if err != nil {
		return err
	}
	for _, file := range summary.Files {
		logger.Debug("wrote module document", zap.String("path", file))
	}
	logger.Info("documentation generated",
		zap.Int("files", len(summary.Files)),
		zap.Int("components", summary.Components),
		zap.String("outputRoot", conf.OutputRoot),
	)
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}

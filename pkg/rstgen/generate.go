package rstgen

import (
	"time"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/rstgen/internal/godoc"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

// dateFormat renders the generation date embedded in every written file.
const dateFormat = "02/01/06"

// generateOptions contains options for configuring the behavior of the
// [Generate] function.
type generateOptions struct {
	timestamp   time.Time
	docComments bool
}

type GenerateOption func(options generateOptions) generateOptions

// WithTimestamp pins the generation date embedded in every written file,
// making repeated runs byte-identical. Without it the current time is used.
func WithTimestamp(t time.Time) GenerateOption {
	return func(options generateOptions) generateOptions {
		options.timestamp = t
		return options
	}
}

// WithDocComments resolves the Go doc comment of every documented function
// and class and appends it after the corresponding autodoc directive. The
// documented library's source must be available under the enclosing module
// root.
func WithDocComments() GenerateOption {
	return func(options generateOptions) generateOptions {
		options.docComments = true
		return options
	}
}

// Summary describes one generation run.
type Summary struct {
	// Files lists the written document paths in creation order.
	Files []string
	// Components counts the rendered component entries across all files.
	Components int
}

// Generate walks the namespace rooted at root breadth-first and writes one
// reStructuredText document per documentable module under conf.OutputRoot.
// Every reachable object is documented at most once, under the shallowest
// path from the root by which it was first reached. Modules producing no
// content are not written.
func Generate(root *object.Module, conf Config, opts ...GenerateOption) (Summary, error) {
	options := generateOptions{timestamp: time.Now()}
	for _, opt := range opts {
		options = opt(options)
	}
	if err := conf.Validate(); err != nil {
		return Summary{}, errors.Wrap(err, "invalid configuration")
	}

	render, err := newRenderer(conf)
	if err != nil {
		return Summary{}, err
	}
	var docs *godoc.Parser
	if options.docComments {
		if docs, err = godoc.NewParser(); err != nil {
			return Summary{}, err
		}
	}

	t := &traversal{
		conf:     conf,
		classify: newClassifier(conf),
		render:   render,
		docs:     docs,
		visited:  make(map[any]struct{}),
		date:     options.timestamp.Format(dateFormat),
		summary:  &Summary{},
	}
	if err = t.run(root); err != nil {
		return Summary{}, err
	}
	return *t.summary, nil
}

package plot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var templateValidator = validator.New()

// Discoverer scans a flat directory for YAML template definitions and
// registers each under the name the definition declares. Discovery is an
// init-time step: run it before handing the registry to concurrent
// readers.
type Discoverer struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDiscoverer creates a discoverer that registers into registry.
func NewDiscoverer(registry *Registry, logger *slog.Logger) *Discoverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discoverer{
		registry: registry,
		logger:   logger.With("component", "plot_discovery"),
	}
}

// Discover loads every template definition in dir. A file that fails to
// load, validate, or instantiate is logged and skipped; one bad file
// never aborts discovery of the rest. Returns the number of templates
// registered. The error is non-nil only when the directory itself cannot
// be read.
func (d *Discoverer) Discover(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading template directory: %w", err)
	}

	registered := 0
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tmpl, err := loadTemplateFile(path)
		if err != nil {
			d.logger.Warn("skipping template definition",
				"path", path,
				"error", err)
			continue
		}

		d.registry.Register(tmpl.Name(), func() Template { return tmpl })
		d.logger.Debug("discovered template",
			"name", tmpl.Name(),
			"arc", tmpl.NarrativeArc(),
			"path", path)
		registered++
	}

	d.logger.Info("template discovery complete", "dir", dir, "registered", registered)
	return registered, nil
}

func isTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// loadTemplateFile parses and validates one definition file.
func loadTemplateFile(path string) (*FileTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	var def templateFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := templateValidator.Struct(def.structureDoc); err != nil {
		return nil, fmt.Errorf("invalid template definition: %w", err)
	}

	return newFileTemplate(def)
}

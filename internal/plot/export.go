package plot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vampirenirmal/plotkit/internal/storage"
)

var exportRoles = []string{
	RoleResearcher,
	RoleWorldbuilder,
	RoleCharacterCreator,
	RolePlotter,
	RoleWriter,
	RoleEditor,
}

// Exporter writes registered templates out as YAML definition files that
// round-trip through discovery, so built-ins can be copied, hand-edited,
// and re-registered as custom variants.
type Exporter struct {
	registry *Registry
	store    storage.Storage
	logger   *slog.Logger
}

// NewExporter creates an exporter over registry backed by store.
func NewExporter(registry *Registry, store storage.Storage, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		registry: registry,
		store:    store,
		logger:   logger.With("component", "plot_exporter"),
	}
}

// Export writes one template's definition, returning the path written.
func (e *Exporter) Export(ctx context.Context, name string) (string, error) {
	tmpl, err := e.registry.Get(name)
	if err != nil {
		return "", err
	}

	def := templateFile{
		structureDoc: docFromStructure(tmpl.Structure()),
		Guidance:     make(map[string]string),
	}
	// Discovery registers a definition under its declared name, so the
	// file must carry the registry key, not the structure's display name.
	def.structureDoc.Name = tmpl.Name()
	for _, role := range exportRoles {
		if text := tmpl.PromptEnhancement(role); text != "" {
			def.Guidance[role] = text
		}
	}
	if len(def.Guidance) == 0 {
		def.Guidance = nil
	}

	data, err := yaml.Marshal(def)
	if err != nil {
		return "", fmt.Errorf("marshaling template %q: %w", name, err)
	}

	path := slugify(name) + ".yaml"
	if err := e.store.Save(ctx, path, data); err != nil {
		return "", fmt.Errorf("saving template %q: %w", name, err)
	}

	e.logger.Debug("exported template", "name", name, "path", path)
	return path, nil
}

// ExportAll writes every registered template and returns the paths
// written, in registry name order.
func (e *Exporter) ExportAll(ctx context.Context) ([]string, error) {
	var paths []string
	for _, name := range e.registry.Names() {
		path, err := e.Export(ctx, name)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// slugify turns a template name into a safe filename stem.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

package plot

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// DefaultGenreThreshold is the minimum genre affinity ForGenre requires
// when the caller has no stronger opinion.
const DefaultGenreThreshold = 0.5

// UnknownTemplateError is returned when a template name was never
// registered. It is the only registry failure surfaced to callers.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown plot template: %s", e.Name)
}

// TemplateInfo is a summary row for List.
type TemplateInfo struct {
	Name         string
	Description  string
	NarrativeArc NarrativeArc
}

// Registry owns the set of known templates. Factories are registered
// explicitly or via discovery; instances are created lazily on first
// lookup and cached for the life of the registry. The cache has no
// eviction: template counts are small and templates are stateless.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]TemplateFactory
	instances map[string]Template
	logger    *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		factories: make(map[string]TemplateFactory),
		instances: make(map[string]Template),
		logger:    logger.With("component", "plot_registry"),
	}
}

// Register adds a template factory under name. A later registration for
// the same name wins and drops any cached instance, which lets discovery
// override built-in defaults.
func (r *Registry) Register(name string, factory TemplateFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		r.logger.Debug("overwriting registered template", "name", name)
	}
	r.factories[name] = factory
	delete(r.instances, name)
}

// Get returns the cached instance for name, constructing it on first
// access. It fails with *UnknownTemplateError for unregistered names.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	if inst, ok := r.instances[name]; ok {
		r.mu.RUnlock()
		return inst, nil
	}
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownTemplateError{Name: name}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have instantiated while we upgraded the lock.
	if inst, ok := r.instances[name]; ok {
		return inst, nil
	}
	inst := factory()
	r.instances[name] = inst
	return inst, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered template names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// List summarizes every registered template. Listing instantiates each
// template as a side effect; that is acceptable because construction is
// cheap and idempotent.
func (r *Registry) List() []TemplateInfo {
	names := r.Names()
	infos := make([]TemplateInfo, 0, len(names))
	for _, name := range names {
		tmpl, err := r.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, TemplateInfo{
			Name:         tmpl.Name(),
			Description:  tmpl.Description(),
			NarrativeArc: tmpl.NarrativeArc(),
		})
	}
	return infos
}

// ForGenre returns every template whose affinity for genre meets the
// threshold. Templates silent on the genre are excluded, not scored zero.
func (r *Registry) ForGenre(genre string, threshold float64) []Template {
	var result []Template
	for _, name := range r.Names() {
		tmpl, err := r.Get(name)
		if err != nil {
			continue
		}
		score, ok := tmpl.SuitableGenres()[genre]
		if ok && score >= threshold {
			result = append(result, tmpl)
		}
	}
	return result
}

// Structures instantiates every registered template and returns its
// structure, in sorted name order. This is the analyzer's usual candidate
// set.
func (r *Registry) Structures() []*PlotStructure {
	var structures []*PlotStructure
	for _, name := range r.Names() {
		tmpl, err := r.Get(name)
		if err != nil {
			continue
		}
		structures = append(structures, tmpl.Structure())
	}
	return structures
}

package navigator

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/suggest"
)

// Built-in filter kinds exposed by the registry.
const (
	KindStatic   = "static"
	KindProject  = "project"
	KindAssignee = "assignee"
	KindReporter = "reporter"
)

// UnassignedID is the synthetic assignee choice matching issues without an
// assignee.
const UnassignedID = "<unassigned>"

// ErrUnknownKind is returned when a definition names a kind nobody registered.
var ErrUnknownKind = errors.New("navigator: unknown filter kind")

// Deps carries what remote kinds need to reach their endpoints.
type Deps struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// ClientOptions are applied after the kind's own endpoint options.
	ClientOptions []suggest.OptionFn
}

// Factory builds a filter for a definition.
type Factory func(def Definition, deps Deps) (*Filter, error)

// Registry maps filter kinds to factories. The zero value has no kinds; use
// NewRegistry for the built-ins.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind string, factory Factory) {
	if r == nil || factory == nil {
		return
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[trimmed] = factory
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.TrimSpace(kind)]
	return ok
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

// Build resolves def.Kind and runs its factory.
func (r *Registry) Build(def Definition, deps Deps) (*Filter, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}
	kind := strings.TrimSpace(def.Kind)
	if kind == "" {
		kind = KindStatic
	}
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}
	f, err := factory(def, deps)
	if err != nil {
		return nil, fmt.Errorf("navigator: build %s: %w", def.Name, err)
	}
	return f, nil
}

func (r *Registry) registerBuiltins() {
	r.Register(KindStatic, buildStatic)
	r.Register(KindProject, remoteFactory(suggest.ResourcesEndpoint(), nil))
	r.Register(KindAssignee, remoteFactory(suggest.UsersEndpoint(), func() []filter.Item {
		return []filter.Item{{ID: UnassignedID, Text: "Unassigned"}}
	}))
	r.Register(KindReporter, remoteFactory(suggest.UsersEndpoint(), nil))
}

func buildStatic(def Definition, _ Deps) (*Filter, error) {
	return &Filter{
		Definition: def,
		Controller: filter.NewStatic(def.Choices),
	}, nil
}

// RemoteFactory returns a factory for a remote kind searching endpoint, with
// seed shown while no query is typed.
func RemoteFactory(endpoint suggest.Endpoint, seed func() []filter.Item) Factory {
	return remoteFactory(endpoint, seed)
}

func remoteFactory(endpoint suggest.Endpoint, seed func() []filter.Item) Factory {
	return func(def Definition, deps Deps) (*Filter, error) {
		if strings.TrimSpace(deps.BaseURL) == "" {
			return nil, errors.New("missing base url")
		}
		fns := []suggest.OptionFn{
			suggest.WithBaseURL(deps.BaseURL),
			suggest.WithEndpoint(endpoint),
		}
		if deps.HTTPClient != nil {
			fns = append(fns, suggest.WithHTTPClient(deps.HTTPClient))
		}
		if deps.Logger != nil {
			fns = append(fns, suggest.WithLogger(deps.Logger))
		}
		fns = append(fns, deps.ClientOptions...)
		return &Filter{
			Definition: def,
			Controller: filter.NewRemote(),
			Source:     suggest.NewSource(suggest.NewClient(fns...)),
			Seed:       seed,
		}, nil
	}
}

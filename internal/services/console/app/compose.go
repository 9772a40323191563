// Package app composes console modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/sessioncookie"
)

// Gate admits requests into a role-gated area.
type Gate interface {
	Require(area string, allowed ...string) httpx.Middleware
}

// Area is a role-gated route group such as /staff or /admin.
type Area struct {
	Name string
	// Prefix is the area root without a trailing slash.
	Prefix  string
	Roles   []string
	Modules []module.Module
}

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Policy        requestmeta.SchemePolicy
	Gate          Gate
	PublicModules []module.Module
	Areas         []Area
}

// Composer wires root mux mounts and area access behavior.
type Composer struct{}

// Compose builds a root HTTP handler from module groups.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	if len(input.Areas) > 0 && input.Gate == nil {
		return nil, fmt.Errorf("area gate is required")
	}
	root := http.NewServeMux()
	seen := make(map[string]string)
	sameOrigin := requireCookieSessionSameOrigin(input.Policy)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if area, ok := owningArea(input.Areas, prefix); ok {
			return nil, fmt.Errorf("module %q has %s prefix %q in public group", feature.ID(), area.Name, prefix)
		}
		if err := mountModule(root, feature, mount, prefix, seen, sameOrigin); err != nil {
			return nil, err
		}
	}

	for _, area := range input.Areas {
		if err := validateArea(area); err != nil {
			return nil, err
		}
		guard := input.Gate.Require(area.Name, area.Roles...)
		wrap := func(next http.Handler) http.Handler {
			return guard(sameOrigin(next))
		}
		for _, feature := range area.Modules {
			if feature == nil {
				return nil, fmt.Errorf("%s module is nil", area.Name)
			}
			mount, prefix, err := resolveMount(feature)
			if err != nil {
				return nil, err
			}
			if !withinArea(area, prefix) {
				return nil, fmt.Errorf("module %q must mount under %s/, got %q", feature.ID(), area.Prefix, prefix)
			}
			if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

// Modules flattens every module in input, public ones first.
func (input ComposeInput) Modules() []module.Module {
	out := append([]module.Module(nil), input.PublicModules...)
	for _, area := range input.Areas {
		out = append(out, area.Modules...)
	}
	return out
}

func validateArea(area Area) error {
	name := strings.TrimSpace(area.Name)
	if name == "" {
		return fmt.Errorf("area name is required")
	}
	if !strings.HasPrefix(area.Prefix, "/") || strings.HasSuffix(area.Prefix, "/") {
		return fmt.Errorf("area %q prefix must start with / and have no trailing slash, got %q", name, area.Prefix)
	}
	if len(area.Roles) == 0 {
		return fmt.Errorf("area %q needs at least one role", name)
	}
	return nil
}

func owningArea(areas []Area, prefix string) (Area, bool) {
	for _, area := range areas {
		if withinArea(area, prefix) {
			return area, true
		}
	}
	return Area{}, false
}

func withinArea(area Area, prefix string) bool {
	return prefix == area.Prefix || strings.HasPrefix(prefix, area.Prefix+"/")
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	patterns := []string{prefix}
	// A subtree mount also owns its bare path so /staff does not bounce
	// through the mux's trailing-slash redirect.
	if bare := strings.TrimSuffix(prefix, "/"); bare != prefix && bare != "" {
		patterns = append(patterns, bare)
	}
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	for i, pattern := range patterns {
		if previous, ok := seen[pattern]; ok {
			if i > 0 {
				continue
			}
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()
		root.Handle(pattern, handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if !strings.HasPrefix(prefix, "/") {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix must start with /, got %q", feature.ID(), mount.Prefix)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// requireCookieSessionSameOrigin rejects cookie-authenticated mutations
// that carry no same-origin Origin or Referer.
func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !httpx.IsMutation(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/sessioncookie"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Policy classifies module prefixes. It must be the policy Gate applies.
	Policy *gate.Policy
	// Gate guards every request before it reaches a module.
	Gate             *gate.Middleware
	PublicModules    []module.Module
	ProtectedModules []module.Module
	RequestMeta      requestmeta.Policy
}

// Compose builds a root HTTP handler from module groups. Public modules may
// not mount under a protected prefix and protected modules must mount under
// one, so the gate's route table and the module tree cannot drift apart.
func Compose(input ComposeInput) (http.Handler, error) {
	if input.Policy == nil {
		return nil, errors.New("route policy is required")
	}
	if input.Gate == nil {
		return nil, errors.New("gate middleware is required")
	}
	root := http.NewServeMux()
	seen := make(map[string]string)
	guard := requireCookieSessionSameOrigin(input.RequestMeta)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountPublicModule(root, input.Policy, feature, seen, guard); err != nil {
			return nil, err
		}
	}

	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := mountProtectedModule(root, input.Policy, feature, seen, guard); err != nil {
			return nil, err
		}
	}

	return input.Gate.Wrap(root), nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	mount module.Mount,
	prefix string,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	if root == nil || feature == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	root.Handle(prefix, handler)
	return nil
}

func mountPublicModule(root *http.ServeMux, policy *gate.Policy, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if policy.Classify(prefix) == gate.SectionProtected {
		return fmt.Errorf("module %q has protected prefix %q in public group", feature.ID(), prefix)
	}
	return mountModule(root, feature, mount, prefix, seen, wrap)
}

func mountProtectedModule(root *http.ServeMux, policy *gate.Policy, feature module.Module, seen map[string]string, wrap func(http.Handler) http.Handler) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if policy.Classify(prefix) != gate.SectionProtected {
		return fmt.Errorf("module %q must mount under a protected prefix, got %q", feature.ID(), prefix)
	}
	if err := mountModule(root, feature, mount, prefix, seen, wrap); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, mount, alias, seen, wrap); err != nil {
			return err
		}
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias lets "/dashboard" reach the module mounted at
// "/dashboard/" without a mux redirect.
func slashlessPrefixAlias(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}

// requireCookieSessionSameOrigin rejects cross-origin mutations that carry a
// session cookie.
func requireCookieSessionSameOrigin(policy requestmeta.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.SameOrigin(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

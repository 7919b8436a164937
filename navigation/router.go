package navigation

import (
	"sync"

	"github.com/darasa/darasa-go/core"
)

// Titler receives the resolved page title; the CLI maps it to the terminal
// title, a desktop shell would map it to the window title.
type Titler interface {
	SetTitle(title string)
}

// maxRedirects bounds guard-driven redirect chains; the static tree should
// settle in two hops, anything more is a policy bug worth logging.
const maxRedirects = 10

type Router struct {
	root         *Route
	guard        *Guard
	progress     core.Progress
	titler       Titler
	productTitle string
	log          core.Logger

	mu      sync.Mutex
	current string
}

type RouterOption func(*Router)

func WithProgress(p core.Progress) RouterOption { return func(r *Router) { r.progress = p } }
func WithTitler(t Titler) RouterOption          { return func(r *Router) { r.titler = t } }
func WithRouterLogger(l core.Logger) RouterOption {
	return func(r *Router) { r.log = l }
}

func NewRouter(root *Route, guard *Guard, productTitle string, opts ...RouterOption) *Router {
	r := &Router{
		root:         root,
		guard:        guard,
		productTitle: productTitle,
		progress:     core.NopProgress(),
		log:          core.NopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push runs one transition through the guard, following declared redirects
// and guard redirects until a target is allowed to mount. It also satisfies
// transport.Navigator, so the pipeline's 401/403 handling lands here.
func (r *Router) Push(path string) {
	r.progress.Start()
	defer r.progress.Done()

	for i := 0; i < maxRedirects; i++ {
		m := r.root.Resolve(path)
		if m == nil {
			path = notFoundRoute
			continue
		}
		if redirect := m.Leaf().Redirect; redirect != "" {
			path = redirect
			continue
		}
		decision := r.guard.Before(m)
		if !decision.Allow {
			path = decision.RedirectTo
			continue
		}
		r.setTitle(m.Title())
		r.mu.Lock()
		r.current = m.Path
		r.mu.Unlock()
		return
	}
	r.log.Warn("navigation: redirect limit reached", path)
}

// Current is the path of the last mounted route.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Router) setTitle(title string) {
	if r.titler == nil {
		return
	}
	full := r.productTitle
	if title != "" {
		full = title + " - " + r.productTitle
	}
	r.titler.SetTitle(full)
}

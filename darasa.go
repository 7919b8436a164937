// Package darasa wires the client together: config, persisted session,
// request pipeline, endpoint services and the navigation router, bound in
// the right order so the pipeline can invalidate the session on 401 and the
// router can gate routes on session state.
package darasa

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/darasa/darasa-go/api"
	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/navigation"
	"github.com/darasa/darasa-go/storage"
	"github.com/darasa/darasa-go/storage/filestore"
	"github.com/darasa/darasa-go/transport"
)

type App struct {
	Conf    *core.Config
	Log     core.Logger
	Client  *transport.Client
	API     *api.API
	Session *session.Store
	Router  *navigation.Router
}

type options struct {
	log      core.Logger
	notify   core.Notifier
	progress core.Progress
	titler   navigation.Titler
	http     *http.Client
	kv       storage.Storage
}

type Option func(*options)

func WithLogger(l core.Logger) Option           { return func(o *options) { o.log = l } }
func WithNotifier(n core.Notifier) Option       { return func(o *options) { o.notify = n } }
func WithProgress(p core.Progress) Option       { return func(o *options) { o.progress = p } }
func WithTitler(t navigation.Titler) Option     { return func(o *options) { o.titler = t } }
func WithHTTPClient(hc *http.Client) Option     { return func(o *options) { o.http = hc } }
func WithStorage(kv storage.Storage) Option     { return func(o *options) { o.kv = kv } }

// New builds a ready-to-use app and restores any persisted session.
func New(conf *core.Config, opts ...Option) (*App, error) {
	o := &options{
		log:      core.NopLogger(),
		notify:   core.NopNotifier(),
		progress: core.NopProgress(),
	}
	for _, opt := range opts {
		opt(o)
	}

	kv := o.kv
	if kv == nil {
		fs, err := filestore.Open(conf.StoragePath)
		if err != nil {
			return nil, errors.Wrap(err, "darasa: opening session storage")
		}
		kv = fs
	}

	clientOpts := []transport.Option{
		transport.WithNotifier(o.notify),
		transport.WithProgress(o.progress),
		transport.WithLogger(o.log),
	}
	if o.http != nil {
		clientOpts = append(clientOpts, transport.WithHTTPClient(o.http))
	}
	client, err := transport.New(conf.BaseURL, clientOpts...)
	if err != nil {
		return nil, err
	}

	services := api.New(client)
	sess := session.NewStore(kv, services.Auth, o.log)

	routerOpts := []navigation.RouterOption{
		navigation.WithProgress(o.progress),
		navigation.WithRouterLogger(o.log),
	}
	if o.titler != nil {
		routerOpts = append(routerOpts, navigation.WithTitler(o.titler))
	}
	router := navigation.NewRouter(
		navigation.Routes(),
		navigation.NewGuard(sess, o.notify),
		conf.ProductTitle,
		routerOpts...,
	)

	// tie the loop: requests carry the session token, a 401 drops the
	// session locally (no backend call, the token is already dead) and the
	// pipeline's forced navigations land on the router.
	client.BindSession(sess)
	client.SetNavigator(router)
	client.OnUnauthorized(func(ctx context.Context) { sess.Invalidate() })

	sess.Restore()

	return &App{
		Conf:    conf,
		Log:     o.log,
		Client:  client,
		API:     services,
		Session: sess,
		Router:  router,
	}, nil
}

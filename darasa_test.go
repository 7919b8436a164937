package darasa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darasa/darasa-go"
	"github.com/darasa/darasa-go/apitest"
	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/core/session"
	"github.com/darasa/darasa-go/services/notifysvc"
	"github.com/darasa/darasa-go/storage/memstore"
)

func setup(t *testing.T) (*apitest.Server, *memstore.Store, *notifysvc.Memory, *darasa.App) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)

	kv := memstore.New()
	notify := notifysvc.NewMemory()
	conf := &core.Config{
		AppName:      "Darasa",
		ProductTitle: "Darasa Smart Course Platform",
		Env:          "TEST",
		BaseURL:      srv.URL(),
	}
	app, err := darasa.New(conf, darasa.WithStorage(kv), darasa.WithNotifier(notify))
	if err != nil {
		t.Fatalf("darasa.New() failed: %v", err)
	}
	return srv, kv, notify, app
}

func TestApp_LoginFlow(t *testing.T) {
	srv, kv, _, app := setup(t)
	ctx := context.Background()

	usr, err := app.Session.Login(ctx, session.Credentials{Username: srv.User.Username, Password: srv.Password})
	assert.NoError(t, err)
	assert.Equal(t, session.RoleTeacher, usr.Role)
	assert.True(t, app.Session.IsLoggedIn())
	assert.Equal(t, 2, kv.Len(), "token and user persisted as a pair")

	app.Router.Push(app.Session.DefaultRoute())
	assert.Equal(t, "/teacher/dashboard", app.Router.Current())

	// authenticated calls work end to end
	courses, err := app.API.Courses.List(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "Bearer "+srv.Token, srv.LastAuthHeader)
}

func TestApp_ExpiredTokenDropsSession(t *testing.T) {
	srv, kv, notify, app := setup(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, session.Credentials{Username: srv.User.Username, Password: srv.Password})
	assert.NoError(t, err)
	app.Router.Push("/teacher/dashboard")
	notify.Reset()

	// the server rotates the token out from under us; the next call 401s
	srv.Token = "rotated"
	_, err = app.API.Courses.List(ctx, nil)
	assert.True(t, core.IsKind(err, core.KindAuthentication))

	assert.False(t, app.Session.IsLoggedIn(), "401 invalidates the session")
	assert.Empty(t, app.Session.Token())
	assert.Equal(t, 0, kv.Len(), "persisted pair is cleared")
	assert.Equal(t, "/login", app.Router.Current(), "pipeline forces the login page")

	msgs := notify.Messages()
	if assert.Len(t, msgs, 1) {
		assert.Equal(t, "session expired, please log in again", msgs[0].Text)
	}
}

func TestApp_RestoresPersistedSession(t *testing.T) {
	srv := apitest.New()
	t.Cleanup(srv.Close)

	kv := memstore.New()
	assert.NoError(t, kv.Set("token", srv.Token))
	assert.NoError(t, kv.Set("user", `{"id":1,"username":"jelani","role":"TEACHER"}`))

	conf := &core.Config{ProductTitle: "Darasa", BaseURL: srv.URL()}
	app, err := darasa.New(conf, darasa.WithStorage(kv))
	assert.NoError(t, err)

	assert.True(t, app.Session.IsLoggedIn())
	assert.Equal(t, session.RoleTeacher, app.Session.Role())

	// the restored token is live
	usr, err := app.API.Auth.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "jelani", usr.Username)
}

func TestApp_BusinessRejection(t *testing.T) {
	srv, _, notify, app := setup(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, session.Credentials{Username: srv.User.Username, Password: srv.Password})
	assert.NoError(t, err)
	notify.Reset()

	srv.BusinessCode = 5001
	srv.BusinessMessage = "ai quota exhausted"

	_, err = app.API.AI.Chat(ctx, "explain eigenvalues", nil)
	assert.True(t, core.IsKind(err, core.KindBusiness))
	assert.EqualError(t, err, "ai quota exhausted")
	assert.True(t, app.Session.IsLoggedIn(), "business rejections never touch the session")

	msgs := notify.Messages()
	if assert.Len(t, msgs, 1) {
		assert.Equal(t, "ai quota exhausted", msgs[0].Text)
	}
}

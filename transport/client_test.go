package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darasa/darasa-go/core"
	"github.com/darasa/darasa-go/services/notifysvc"
	"github.com/darasa/darasa-go/transport"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

type recordNav struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordNav) Push(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordNav) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

type countProgress struct {
	mu     sync.Mutex
	starts int
	dones  int
}

func (p *countProgress) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts++
}

func (p *countProgress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dones++
}

func (p *countProgress) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starts, p.dones
}

func newClient(t *testing.T, handler http.Handler, opts ...transport.Option) *transport.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := transport.New(srv.URL+"/api/v1", opts...)
	if err != nil {
		t.Fatalf("transport.New() failed: %v", err)
	}
	return client
}

func TestClient_OutgoingHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	})

	t.Run("bearer token attached when a session exists", func(t *testing.T) {
		client := newClient(t, handler, transport.WithTokenSource(staticToken("tok-1")))
		assert.NoError(t, client.Get(context.Background(), "/courses", nil, nil))
		assert.Equal(t, "Bearer tok-1", gotAuth)
		assert.NotEmpty(t, gotReqID, "every request carries a request id")
	})

	t.Run("no authorization header without a token", func(t *testing.T) {
		client := newClient(t, handler)
		assert.NoError(t, client.Get(context.Background(), "/courses", nil, nil))
		assert.Empty(t, gotAuth)
	})

	t.Run("caller-provided request id wins", func(t *testing.T) {
		client := newClient(t, handler)
		req := &transport.Request{
			Method: http.MethodGet,
			Path:   "/courses",
			Header: http.Header{"X-Request-Id": []string{"req-42"}},
		}
		_, err := client.Do(context.Background(), req, nil)
		assert.NoError(t, err)
		assert.Equal(t, "req-42", gotReqID)
	})
}

func TestClient_Unauthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid or expired token"}`))
	})
	notify := notifysvc.NewMemory()
	nav := new(recordNav)
	var invalidated bool

	client := newClient(t, handler,
		transport.WithNotifier(notify),
		transport.WithTokenSource(staticToken("stale")),
	)
	client.SetNavigator(nav)
	client.OnUnauthorized(func(ctx context.Context) { invalidated = true })

	err := client.Get(context.Background(), "/auth/me", nil, nil)
	assert.True(t, core.IsKind(err, core.KindAuthentication))
	assert.EqualError(t, err, "session expired, please log in again")
	assert.True(t, invalidated, "401 must invalidate the session")
	assert.Equal(t, []string{"/login"}, nav.Paths())

	msgs := notify.Messages()
	assert.Len(t, msgs, 1, "the user is told exactly once")
	assert.Equal(t, "error", msgs[0].Level)
}

func TestClient_Forbidden(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	notify := notifysvc.NewMemory()
	nav := new(recordNav)
	client := newClient(t, handler, transport.WithNotifier(notify))
	client.SetNavigator(nav)

	err := client.Get(context.Background(), "/admin/users", nil, nil)
	assert.True(t, core.IsKind(err, core.KindAuthorization))
	assert.Equal(t, []string{"/403"}, nav.Paths())
	assert.Len(t, notify.Messages(), 1)
}

func TestClient_StatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind core.ErrorKind
		wantMsg  string
	}{
		{name: "404", status: http.StatusNotFound, wantKind: core.KindNotFound, wantMsg: "the requested resource does not exist"},
		{name: "500", status: http.StatusInternalServerError, wantKind: core.KindServerFault, wantMsg: "internal server error"},
		{name: "other status uses the server message", status: http.StatusConflict, body: `{"message":"already enrolled"}`, wantKind: core.KindServerFault, wantMsg: "already enrolled"},
		{name: "other status without a message", status: http.StatusTeapot, wantKind: core.KindServerFault, wantMsg: "request failed (418)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			notify := notifysvc.NewMemory()
			client := newClient(t, handler, transport.WithNotifier(notify))

			err := client.Get(context.Background(), "/x", nil, nil)
			assert.True(t, core.IsKind(err, tt.wantKind))
			assert.EqualError(t, err, tt.wantMsg)
			assert.Len(t, notify.Messages(), 1)
		})
	}
}

func TestClient_BusinessEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantMsg string
	}{
		{name: "non-success code rejects", body: `{"code":500,"message":"quota exceeded"}`, wantErr: true, wantMsg: "quota exceeded"},
		{name: "non-success code without message", body: `{"code":4001}`, wantErr: true, wantMsg: "request failed"},
		{name: "code 0 is success", body: `{"code":0,"data":[]}`},
		{name: "code 200 is success", body: `{"code":200,"data":[]}`},
		{name: "non-numeric code is ignored", body: `{"code":"A-01"}`},
		{name: "no envelope at all", body: `[{"id":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			notify := notifysvc.NewMemory()
			client := newClient(t, handler, transport.WithNotifier(notify))

			err := client.Get(context.Background(), "/x", nil, nil)
			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Empty(t, notify.Messages())
				return
			}
			assert.True(t, core.IsKind(err, core.KindBusiness))
			assert.EqualError(t, err, tt.wantMsg)
			assert.Len(t, notify.Messages(), 1)
		})
	}
}

func TestClient_Download(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// a payload that would trip the envelope check if it were applied
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="grades.xlsx"`)
		_, _ = w.Write([]byte(`{"code":500,"message":"not an envelope"}`))
	})
	client := newClient(t, handler)

	blob, err := client.Download(context.Background(), "/grades/export", nil)
	assert.NoError(t, err, "binary responses skip the envelope check")
	assert.Equal(t, "grades.xlsx", blob.Filename)
	assert.Equal(t, "application/octet-stream", blob.ContentType)
	assert.NotEmpty(t, blob.Data)
}

func TestClient_Upload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"` + header.Filename + `","size":` + strconv.Itoa(len(content)) + `,"courseId":"` + r.FormValue("courseId") + `"}`))
	})
	client := newClient(t, handler)

	var out struct {
		Name     string `json:"name"`
		Size     int    `json:"size"`
		CourseID string `json:"courseId"`
	}
	files := []transport.File{{Field: "file", Name: "notes.pdf", Content: strings.NewReader("hello")}}
	err := client.Upload(context.Background(), "/resources/upload", map[string]string{"courseId": "10"}, files, &out)
	assert.NoError(t, err)
	assert.Equal(t, "notes.pdf", out.Name)
	assert.Equal(t, 5, out.Size)
	assert.Equal(t, "10", out.CourseID)
}

func TestClient_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	notify := notifysvc.NewMemory()
	client := newClient(t, handler, transport.WithNotifier(notify))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := client.Get(ctx, "/ai/chat", nil, nil)
	assert.True(t, core.IsKind(err, core.KindTimeout))
	assert.EqualError(t, err, "request timed out, check your connection")
}

func TestClient_NetworkDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listens anymore

	notify := notifysvc.NewMemory()
	client, err := transport.New(srv.URL+"/api/v1", transport.WithNotifier(notify))
	assert.NoError(t, err)

	err = client.Get(context.Background(), "/courses", nil, nil)
	assert.True(t, core.IsKind(err, core.KindNetwork))
	assert.EqualError(t, err, "network connection failed, check your settings")
}

func TestClient_ProgressPairing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		progress := new(countProgress)
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}), transport.WithProgress(progress))

		assert.NoError(t, client.Get(context.Background(), "/x", nil, nil))
		starts, dones := progress.counts()
		assert.Equal(t, 1, starts)
		assert.Equal(t, 1, dones)
	})

	t.Run("http error", func(t *testing.T) {
		progress := new(countProgress)
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}), transport.WithProgress(progress))

		assert.Error(t, client.Get(context.Background(), "/x", nil, nil))
		starts, dones := progress.counts()
		assert.Equal(t, 1, starts)
		assert.Equal(t, 1, dones)
	})

	t.Run("connection failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		progress := new(countProgress)
		client, err := transport.New(srv.URL, transport.WithProgress(progress))
		assert.NoError(t, err)

		assert.Error(t, client.Get(context.Background(), "/x", nil, nil))
		starts, dones := progress.counts()
		assert.Equal(t, 1, starts)
		assert.Equal(t, 1, dones)
	})
}

func TestClient_Decode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":10,"title":"Linear Algebra"}]`))
	})
	client := newClient(t, handler)

	var courses []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	assert.NoError(t, client.Get(context.Background(), "/courses", nil, &courses))
	assert.Len(t, courses, 1)
	assert.Equal(t, "Linear Algebra", courses[0].Title)
}

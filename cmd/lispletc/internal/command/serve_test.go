package command

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/lisplet/cmd/lispletc/internal/project"
	"github.com/vcrobe/lisplet/cmd/lispletc/internal/view"
)

const servedPage = `<html><head><title>demo</title></head><body>(ns my-app.core)<div id="a">hi</div></body></html>`

func newTestMux(t *testing.T) (*http.ServeMux, string) {
	t.Helper()

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "page.html"), []byte(servedPage), 0o644))

	cli := NewCLI(view.ViewHuman, new(bytes.Buffer), view.LogLevelSilent)
	cfg := project.Default().Override(project.Config{Src: src})
	return newServeMux(cli, cfg), src
}

func TestServeIndexListsPages(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "lisplet pages")
	assert.Contains(t, body, `href="/pages/page.html"`)
	assert.Contains(t, body, `href="/modules/page.html"`)
}

func TestServeCompiledPage(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/page.html", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="a">hi</div>`)
	assert.Contains(t, body, "my_app.core.init();")
}

func TestServeGeneratedModule(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/modules/page.html", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	body := rec.Body.String()
	assert.Contains(t, body, "(ns my-app.core (use (lisplet.dom ")
	assert.Contains(t, body, "(defn-export init []")
}

func TestServeMissingPage(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/gone.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeNonPageFile(t *testing.T) {
	mux, src := newTestMux(t)
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("not a page"), 0o644))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/notes.txt", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeBrokenPage(t *testing.T) {
	mux, src := newTestMux(t)
	broken := `<html><head></head><body><p>no namespace</p></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(src, "broken.html"), []byte(broken), 0o644))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/broken.html", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "namespace")
}

func TestRunServeStopsWhenContextEnds(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "page.html"), []byte(servedPage), 0o644))

	cli := NewCLI(view.ViewHuman, new(bytes.Buffer), view.LogLevelSilent)
	opts := ServeOptions{Config: filepath.Join(src, "lisplet.yaml"), Addr: "127.0.0.1:0", Src: src}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- RunServe(ctx, cli, opts)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServe kept running after its context ended")
	}
}

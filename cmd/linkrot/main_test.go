package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	err = NewMain().Run(context.Background(), args, &out, &errBuf)
	return out.String(), errBuf.String(), err
}

func TestRun_help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMain(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "linkrot")
	assert.Contains(t, stdout, "broken links")
}

func TestRun_no_arguments(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMain(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no arguments")
	assert.Contains(t, stdout, "Usage")
}

func TestRun_unknown_flag(t *testing.T) {
	t.Parallel()

	_, _, err := runMain(t, "--bogus", "https://example.com")
	assert.Error(t, err)
}

func TestRun_invalid_format(t *testing.T) {
	t.Parallel()

	_, _, err := runMain(t, "--format", "xml", "https://example.com")
	assert.Error(t, err)
}

func TestRun_version(t *testing.T) {
	t.Parallel()

	stdout, _, _ := runMain(t, "--version")
	assert.Contains(t, stdout, "linkrot")
}

func TestRun_passing_site(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<a href="/ok">fine</a>`)
	})
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	stdout, _, err := runMain(t, srv.URL+"/", "-r")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[200] "+srv.URL+"/")
	assert.Contains(t, stdout, "2 links checked")
	assert.Contains(t, stdout, "0 broken")
}

func TestRun_broken_site(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<a href="/gone">dead</a>`)
	}))
	defer srv.Close()

	stdout, _, err := runMain(t, srv.URL+"/", "-r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 1 broken links")
	assert.Contains(t, stdout, "[404] "+srv.URL+"/gone")
	assert.Contains(t, stdout, "(found on "+srv.URL+"/)")
}

func TestRun_json_format(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body>no links</body></html>`)
	}))
	defer srv.Close()

	stdout, _, err := runMain(t, srv.URL+"/", "--format", "json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 1, report.Summary.Total)
	assert.True(t, report.Summary.Passed)
	require.Len(t, report.Results, 1)
	assert.Equal(t, srv.URL+"/", report.Results[0].URL)
}

func TestRun_config_file(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<a href="/internal">x</a>`)
	}))
	defer srv.Close()

	cfg := filepath.Join(t.TempDir(), "linkrot.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("recurse: true\nskip:\n  - /internal\n"), 0o644))

	stdout, _, err := runMain(t, srv.URL+"/", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[SKP] "+srv.URL+"/internal")
	assert.Contains(t, stdout, "1 skipped")
}

func TestRun_local_directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte(`<a href="other.html">o</a>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"),
		[]byte(`<html>ok</html>`), 0o644))

	stdout, _, err := runMain(t, dir, "-r")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 links checked")
	assert.Contains(t, stdout, "0 broken")
}

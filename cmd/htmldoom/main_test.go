package main

import (
	"bytes"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/htmldoom/internal/config"
	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/internal/logging"
)

// project writes a config and a values directory and returns the config path.
func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"values/index.html":    "<p>home</p>",
		"values/blog/post.txt": "a<b",
		"values/nav.yml":       "ul: [[ { li: [[ one ]] } ]]",
		"components.yml":       "card:\n  div: [{ class: card }, [ hi ]]\n",
		"page.html":            "<p>{x}</p>",
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.New()
	cfg.Serve.Reload = false
	cfg.Publish.Bucket = "site"
	path := filepath.Join(dir, config.ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	cfgPath := project(t)
	dir := filepath.Dir(cfgPath)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"yaml directive", []string{"render", filepath.Join(dir, "components.yml"), "card"}, `<div class="card">hi</div>` + "\n"},
		{"raw file", []string{"render", filepath.Join(dir, "page.html")}, "<p>{x}</p>\n"},
		{"static", []string{"render", filepath.Join(dir, "page.html"), "--static"}, "<p>{{x}}</p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", cfgPath}, tt.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	cfgPath := project(t)
	dir := filepath.Dir(cfgPath)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"directive on html", []string{"render", filepath.Join(dir, "page.html"), "x"}, "E044"},
		{"unknown extension", []string{"render", filepath.Join(dir, config.ConfigFileName)}, "E041"},
		{"missing directive", []string{"render", filepath.Join(dir, "components.yml"), "nope"}, "E044"},
		{"missing file", []string{"render", filepath.Join(dir, "nope.yml")}, "E045"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--config", cfgPath}, tt.args...)...)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != tt.code {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValuesCommand(t *testing.T) {
	cfgPath := project(t)

	out, err := run(t, "--config", cfgPath, "values")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "blog.post\nindex\nnav\n" {
		t.Errorf("got %q", out)
	}

	out, err = run(t, "--config", cfgPath, "values", "--get", "nav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<ul><li>one</li></ul>\n" {
		t.Errorf("got %q", out)
	}

	out, _ = run(t, "--config", cfgPath, "values", "--get", "blog")
	if out != "blog.post\n" {
		t.Errorf("got %q", out)
	}

	if _, err := run(t, "--config", cfgPath, "values", "--get", "nope"); !stderrors.Is(err, errors.ErrLoader) {
		t.Errorf("err = %v, want loader error", err)
	}
}

func TestPublishDryRun(t *testing.T) {
	cfgPath := project(t)

	out, err := run(t, "--config", cfgPath, "publish", "--dry-run", "--prefix", "www/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"s3://site/www/blog/post.html", "s3://site/www/index.html", "Published 3 pages"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	cfgPath := project(t)
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Publish.Bucket = ""
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	_, err = run(t, "--config", cfgPath, "publish", "--dry-run")
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "E051" {
		t.Errorf("err = %v, want E051", err)
	}
}

func TestServeHandler(t *testing.T) {
	cfgPath := project(t)
	a := &app{configPath: cfgPath}
	if err := a.loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	srv, err := a.newServer()
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/post", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "a&lt;b" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "htmldoom_render_cache_misses_total") {
		t.Error("metrics should be served when enabled")
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.json"), "values")
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("err = %v, want config error", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "--config", project(t), "version", "--short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != version+"\n" {
		t.Errorf("got %q", out)
	}

	out, _ = run(t, "--config", project(t), "version")
	if !strings.Contains(out, "Go version:") {
		t.Errorf("got %q", out)
	}
}

func TestErrorMode(t *testing.T) {
	t.Cleanup(func() { logging.Opts.JSON = false })
	cfgPath := project(t)
	dir := filepath.Dir(cfgPath)

	tests := []struct {
		name string
		args []string
		want errors.Mode
	}{
		{"render is compact", []string{"render", filepath.Join(dir, "nope.yml")}, errors.ModeCompact},
		{"other commands are full", []string{"values", "--get", "nope"}, errors.ModeFull},
		{"json logs", []string{"--log-json", "render", filepath.Join(dir, "nope.yml")}, errors.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(append([]string{"--config", cfgPath}, tt.args...))

			cmd, err := root.ExecuteC()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errorMode(cmd); got != tt.want {
				t.Errorf("errorMode = %d, want %d", got, tt.want)
			}
		})
	}
}

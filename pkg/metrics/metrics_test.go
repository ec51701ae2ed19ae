package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/render"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestObserverCountsCacheActivity(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))
	r := render.New(render.Config{CacheSize: 1, Observer: m})

	p := element.Must(element.NewCompositeTag("p"))
	div := element.Must(element.NewCompositeTag("div"))
	r.MustRender(p)   // miss
	r.MustRender(p)   // hit
	r.MustRender(div) // miss, evicts p

	if got := metricCounterValue(t, m.cacheHits); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.cacheMisses); got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.cacheEvictions); got != 1 {
		t.Errorf("evictions = %v, want 1", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("index", 200, 5*time.Millisecond, 1024)
	m.ObserveRequest("index", 404, time.Millisecond, 0)

	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("index", "200")); got != 1 {
		t.Errorf("requests_total(200) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.requestsTotal.WithLabelValues("index", "404")); got != 1 {
		t.Errorf("requests_total(404) = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.requestDuration.WithLabelValues("index")); got != 2 {
		t.Errorf("request_duration count = %v, want 2", got)
	}
	if got := metricHistogramCount(t, m.pageBytes); got != 1 {
		t.Errorf("page_bytes count = %v, want 1", got)
	}
}

func TestObserveUpload(t *testing.T) {
	m := New()
	m.ObserveUpload(nil)
	m.ObserveUpload(errors.New("denied"))
	m.ObserveUpload(nil)

	if got := metricCounterValue(t, m.uploadsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("uploads_total(success) = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.uploadsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("uploads_total(error) = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New(WithNamespace("doom"), WithConstLabels(prometheus.Labels{"site": "test"}))
	m.CacheHit()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `doom_render_cache_hits_total{site="test"} 1`) {
		t.Errorf("metrics output missing cache hits:\n%s", body)
	}
}

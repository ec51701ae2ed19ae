package publish

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/loader"
	"github.com/vango-dev/htmldoom/pkg/metrics"
)

type object struct {
	Bucket, Key, Body, ContentType, CacheControl string
}

type fakeS3 struct {
	objects []object
	failOn  string
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if aws.ToString(in.Key) == f.failOn {
		return nil, stderrors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects = append(f.objects, object{
		Bucket:       aws.ToString(in.Bucket),
		Key:          aws.ToString(in.Key),
		Body:         string(body),
		ContentType:  aws.ToString(in.ContentType),
		CacheControl: aws.ToString(in.CacheControl),
	})
	return &s3.PutObjectOutput{}, nil
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValues() loader.Values {
	return loader.Values{
		"index": element.RawText("<p>home</p>"),
		"blog": loader.Values{
			"post": element.RawText("<p>post</p>"),
		},
	}
}

func TestPublish(t *testing.T) {
	client := &fakeS3{}
	p, err := New(client, Config{Bucket: "site", Prefix: "www/", CacheControl: "max-age=60", Logger: quiet()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	keys, err := p.Publish(context.Background(), testValues())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if diff := cmp.Diff([]string{"www/blog/post.html", "www/index.html"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	want := []object{
		{"site", "www/blog/post.html", "<p>post</p>", DefaultContentType, "max-age=60"},
		{"site", "www/index.html", "<p>home</p>", DefaultContentType, "max-age=60"},
	}
	if diff := cmp.Diff(want, client.objects); diff != "" {
		t.Errorf("objects mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishStopsOnFirstError(t *testing.T) {
	client := &fakeS3{failOn: "blog/post.html"}
	m := metrics.New()
	p, _ := New(client, Config{Bucket: "site", Metrics: m, Logger: quiet()})

	keys, err := p.Publish(context.Background(), testValues())
	if !stderrors.Is(err, ErrPublish) {
		t.Fatalf("err = %v, want publish error", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "E050" || !strings.Contains(e.Error(), "blog/post.html") {
		t.Errorf("err = %v, want E050 naming the key", err)
	}
	if len(keys) != 0 || len(client.objects) != 0 {
		t.Errorf("nothing should be written after the failure: %v %v", keys, client.objects)
	}
}

func TestPublishCanceled(t *testing.T) {
	client := &fakeS3{}
	p, _ := New(client, Config{Bucket: "site", Logger: quiet()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Publish(ctx, testValues()); !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(client.objects) != 0 {
		t.Errorf("uploaded %d objects after cancel", len(client.objects))
	}
}

func TestPublishDryRun(t *testing.T) {
	client := &fakeS3{}
	p, _ := New(client, Config{Bucket: "site", DryRun: true, Logger: quiet()})

	keys, err := p.Publish(context.Background(), testValues())
	if err != nil || len(keys) != 2 {
		t.Fatalf("got %v, %v", keys, err)
	}
	if len(client.objects) != 0 {
		t.Error("dry run must not upload")
	}
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(&fakeS3{}, Config{})
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "E051" {
		t.Errorf("err = %v, want E051", err)
	}
}

func TestKey(t *testing.T) {
	p, _ := New(&fakeS3{}, Config{Bucket: "b", Prefix: "p/"})
	if got := p.Key("a.b"); got != "p/a/b.html" {
		t.Errorf("Key = %q", got)
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := (envCredentials{}).Retrieve(context.Background()); !stderrors.Is(err, ErrPublish) {
		t.Errorf("err = %v, want publish error", err)
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := (envCredentials{}).Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "id" || creds.SecretAccessKey != "secret" {
		t.Errorf("got %+v, %v", creds, err)
	}

	if c := NewClient("eu-west-1", "http://localhost:9000"); c == nil {
		t.Error("NewClient returned nil")
	}
}

// Package publish uploads rendered values to S3 as static pages.
//
// Each value is written to <prefix><path>.html, where path is its dotted
// path with dots turned into slashes:
//
//	client := publish.NewClient("eu-west-1", "")
//	p, err := publish.New(client, publish.Config{Bucket: "my-site"})
//	if err != nil {
//	    return err
//	}
//	keys, err := p.Publish(ctx, values)
package publish

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/loader"
	"github.com/vango-dev/htmldoom/pkg/metrics"
)

// DefaultContentType is the content type of uploaded pages.
const DefaultContentType = "text/html; charset=utf-8"

// ErrPublish is matched by errors.Is for every publish failure.
var ErrPublish = errors.ErrPublish

// PutObjectAPI is the part of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures a Publisher.
type Config struct {
	// Bucket is the target bucket. Required.
	Bucket string

	// Prefix is prepended to every key, e.g. "site/".
	Prefix string

	// ContentType defaults to DefaultContentType.
	ContentType string

	// CacheControl is set on every object when non-empty.
	CacheControl string

	// DryRun logs the uploads without performing them.
	DryRun bool

	// Metrics, when set, counts uploads.
	Metrics *metrics.Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Publisher uploads values to a bucket.
type Publisher struct {
	client PutObjectAPI
	config Config
}

// New returns a Publisher writing through client.
func New(client PutObjectAPI, config Config) (*Publisher, error) {
	if config.Bucket == "" {
		return nil, errors.New("E051").
			WithSuggestion(`Set "publish.bucket" in htmldoom.json or pass --bucket`)
	}
	if config.ContentType == "" {
		config.ContentType = DefaultContentType
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Publisher{client: client, config: config}, nil
}

// Key returns the object key of a dotted value path.
func (p *Publisher) Key(dotted string) string {
	return p.config.Prefix + strings.ReplaceAll(dotted, ".", "/") + ".html"
}

// Publish uploads every value in path order and returns the written keys.
// It stops at the first failure or when ctx is done.
func (p *Publisher) Publish(ctx context.Context, values loader.Values) ([]string, error) {
	var keys []string
	for _, dotted := range values.Paths() {
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		v, _ := values.Get(dotted)
		html, ok := v.(element.RawText)
		if !ok {
			return keys, errors.New("E050").WithDetailf("%s: expected rendered text, got %T", dotted, v)
		}

		key := p.Key(dotted)
		if err := p.put(ctx, key, string(html)); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (p *Publisher) put(ctx context.Context, key, body string) error {
	log := p.config.Logger.With("bucket", p.config.Bucket, "key", key, "bytes", len(body))
	if p.config.DryRun {
		log.Info("dry run: skipping upload")
		return nil
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          strings.NewReader(body),
		ContentType:   aws.String(p.config.ContentType),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if p.config.CacheControl != "" {
		input.CacheControl = aws.String(p.config.CacheControl)
	}

	_, err := p.client.PutObject(ctx, input)
	if p.config.Metrics != nil {
		p.config.Metrics.ObserveUpload(err)
	}
	if err != nil {
		log.Error("upload failed", "error", err)
		return errors.New("E050").WithDetail(key).Wrap(err)
	}
	log.Info("uploaded")
	return nil
}

// NewClient returns an S3 client for region. A non-empty endpoint selects
// an S3-compatible service with path-style addressing. Credentials come
// from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewClient(region, endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(envCredentials{}),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

type envCredentials struct{}

func (envCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("E051").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
	}
	return creds, nil
}

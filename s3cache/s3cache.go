/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores and
 * retrieves simulation results using Amazon S3. It is based on the original
 * github.com/sourcegraph/s3cache but updated to use the more modern
 * aws-sdk-go-v2 and golang standard library functions
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	DefaultPrefix    = "swisssim/results"
	DefaultOpTimeout = 30 * time.Second
)

// API is the subset of *s3.Client the cache uses.
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput,
		optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type Options struct {
	Bucket string
	// object key prefix; defaults to DefaultPrefix
	Prefix string
	// compress entries; object keys then end in ".gz"
	Gzip      bool
	LogErrors bool
	// bound on each S3 request; defaults to DefaultOpTimeout
	OpTimeout time.Duration
}

// Cache stores encoded results in an S3 bucket. The zero value is not
// usable; call New and then Init, or set Client directly.
type Cache struct {
	// Config is the Amazon S3 configuration loaded by Init.
	Config aws.Config

	// Client is initialized in Init() from the default Config, but callers
	// can set their own before use.
	Client API

	opts Options

	// parent of every S3 request
	ctx context.Context
}

// New returns a Cache backed by opts.Bucket. Invoke Init() on the returned
// Cache before use unless Client is set explicitly.
func New(ctx context.Context, opts Options) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = DefaultOpTimeout
	}

	return &Cache{
		ctx:  ctx,
		opts: opts,
	}
}

func (c *Cache) Bucket() string {
	return c.opts.Bucket
}

func (c *Cache) logf(format string, args ...any) {
	if c.opts.LogErrors {
		log.Printf(format, args...)
	}
}

func (c *Cache) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.ctx, c.opts.OpTimeout)
}

func (c *Cache) Get(key string) ([]byte, bool) {
	ctx, cancel := c.opContext()
	defer cancel()

	objKey := c.ObjectKey(key)
	resp, err := c.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		// no such key just indicates a cache miss
		if !IsNotFound(err) {
			c.logf("s3cache.get: failed to get object %v/%v: %v",
				c.opts.Bucket, objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	var rdr io.Reader = resp.Body
	if c.opts.Gzip {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v/%v: %v",
				c.opts.Bucket, objKey, err)
			return nil, false
		}
		defer gr.Close()
		rdr = gr
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v/%v: %v", c.opts.Bucket,
			objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key. Failures
// are logged and otherwise ignored; a later Get simply misses.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.ObjectKey(key)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.opts.Bucket),
		Key:         aws.String(objKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}

	if c.opts.Gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v/%v: %v",
				c.opts.Bucket, objKey, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v/%v: %v",
				c.opts.Bucket, objKey, err)
			return
		}
		input.Body = bytes.NewReader(buf.Bytes())
		input.ContentEncoding = aws.String("gzip")
	}

	ctx, cancel := c.opContext()
	defer cancel()
	if _, err := c.Client.PutObject(ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v/%v: %v", c.opts.Bucket, objKey,
			err)
	}
}

func (c *Cache) Delete(key string) {
	ctx, cancel := c.opContext()
	defer cancel()

	objKey := c.ObjectKey(key)
	_, err := c.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v/%v: %v", c.opts.Bucket,
			objKey, err)
	}
}

// ObjectKey maps a cache key to its S3 object key.
func (c *Cache) ObjectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := path.Join(c.opts.Prefix, hex.EncodeToString(sum[:]))
	if c.opts.Gzip {
		objKey += ".gz"
	}

	return objKey
}

// IsNotFound reports whether err is S3's missing object error.
func IsNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}

// Init loads the default AWS configuration and verifies the bucket is
// reachable. The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
func (c *Cache) Init() error {
	if c.opts.Bucket == "" {
		return fmt.Errorf("s3cache.init: no bucket configured")
	}

	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	return c.Check()
}

// Check verifies the bucket exists and its objects can be listed.
func (c *Cache) Check() error {
	ctx, cancel := c.opContext()
	defer cancel()

	if _, err := c.Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.opts.Bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.opts.Bucket, err)
	}

	if _, err := c.Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.opts.Bucket),
		Prefix:  aws.String(c.opts.Prefix),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.opts.Bucket, err)
	}

	return nil
}

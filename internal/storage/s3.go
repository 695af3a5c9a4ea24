package storage

import (
	"bytes"
	"io/ioutil"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/nicolagi/seqdiff/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type s3Store struct {
	client *s3.S3
	bucket string
}

var _ Store = (*s3Store)(nil)

func newS3Store(c *config.C, bucket string) (*s3Store, error) {
	const maxRetries = 16
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(c.S3Region),
		Credentials: credentials.NewSharedCredentials("", c.S3Profile),
		MaxRetries:  aws.Int(maxRetries),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &s3Store{
		client: s3.New(sess),
		bucket: bucket,
	}, nil
}

func (s *s3Store) Get(key Key) (Value, error) {
	output, err := s.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(string(key)),
	})
	if err != nil {
		if rfErr, ok := err.(awserr.RequestFailure); ok {
			if rfErr.StatusCode() == http.StatusNotFound {
				return nil, errors.Wrapf(ErrNotFound, "bucket=%q key=%q err=%+v", s.bucket, key, err)
			}
		}
		return nil, errors.WithStack(err)
	}
	defer func() {
		if err := output.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"bucket": s.bucket,
				"key":    key,
				"cause":  err,
			}).Warning("Could not close response body")
		}
	}()
	b, err := ioutil.ReadAll(output.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

func (s *s3Store) Put(key Key, value Value) error {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(string(key)),
		Body:   bytes.NewReader(value),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicolagi/seqdiff/internal/config"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotImplemented = errors.New("not implemented")
)

type Key string

type Value []byte

type Store interface {
	Get(Key) (Value, error)
	Put(Key, Value) error
}

const (
	SchemeFile = "file"
	SchemeS3   = "s3"
)

// Location designates a value in some store. Local paths have the file
// scheme and the path as key. S3 objects are written s3://bucket/key.
type Location struct {
	Scheme string
	Bucket string
	Key    Key
}

func (l Location) String() string {
	if l.Scheme == SchemeS3 {
		return fmt.Sprintf("s3://%s/%s", l.Bucket, l.Key)
	}
	return string(l.Key)
}

func ParseLocation(s string) (Location, error) {
	const method = "ParseLocation"
	if s == "" {
		return Location{}, errorf(method, "empty location")
	}
	if rest := strings.TrimPrefix(s, "s3://"); rest != s {
		i := strings.IndexByte(rest, '/')
		if i <= 0 || i == len(rest)-1 {
			return Location{}, errorf(method, "%q: want s3://bucket/key", s)
		}
		return Location{Scheme: SchemeS3, Bucket: rest[:i], Key: Key(rest[i+1:])}, nil
	}
	if i := strings.Index(s, "://"); i != -1 {
		return Location{}, errorf(method, "%q: scheme %q: %w", s, s[:i], ErrNotImplemented)
	}
	return Location{Scheme: SchemeFile, Key: Key(s)}, nil
}

// Open returns the store holding the given location. The key to use with it
// is loc.Key.
func Open(c *config.C, loc Location) (Store, error) {
	switch loc.Scheme {
	case SchemeFile:
		return NewDiskStore(""), nil
	case SchemeS3:
		return newS3Store(c, loc.Bucket)
	default:
		return nil, fmt.Errorf("%q: %w", loc.Scheme, ErrNotImplemented)
	}
}

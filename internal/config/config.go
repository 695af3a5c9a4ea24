package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultBaseDirectoryPath is where seqdiff looks for its configuration.
// It defaults to $SEQDIFF_BASE if it is set, otherwise it defaults to
// $HOME/lib/seqdiff. Commands override this via the -base flag.
var DefaultBaseDirectoryPath string

func init() {
	if base := os.Getenv("SEQDIFF_BASE"); base != "" {
		DefaultBaseDirectoryPath = base
	} else {
		DefaultBaseDirectoryPath = os.ExpandEnv("$HOME/lib/seqdiff")
	}
}

type C struct {
	// Number of unchanged lines to show around each change. Negative
	// means all of them.
	ContextLines int

	// One of the logrus levels, e.g., "debug" or "warning".
	LogLevel string

	// These only make sense for s3:// locations. The profile refers to
	// the shared credentials file; empty means the default profile.
	S3Region  string
	S3Profile string

	// Directory holding the config file.
	base string
}

// Default returns the configuration used when there is no config file.
func Default() *C {
	return &C{
		ContextLines: -1,
		LogLevel:     "warning",
	}
}

// Load loads the configuration from the file called "config" in the provided base
// directory. If the file does not exist, the error wraps os.ErrNotExist.
func Load(base string) (*C, error) {
	filename := filepath.Join(base, "config")
	if fi, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	} else if fi.Mode()&0077 != 0 {
		return nil, fmt.Errorf("config.Load %q: mode is %#o, want at most %#o",
			filename, fi.Mode()&0777, fi.Mode()&0700)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Ignore error closing file opened only for reading.
		_ = f.Close()
	}()
	c, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("config.Load %q: %w", filename, err)
	}
	c.base = base
	return c, nil
}

func load(f io.Reader) (*C, error) {
	const method = "load"
	c := Default()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " 	")
		if i == -1 {
			return nil, errorf(method, "no separator in %q", line)
		}
		switch key, val := line[:i], strings.TrimSpace(line[i:]); key {
		case "context-lines":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errorf(method, "context-lines: %w", err)
			}
			c.ContextLines = n
		case "log-level":
			c.LogLevel = val
		case "s3-profile":
			c.S3Profile = val
		case "s3-region":
			c.S3Region = val
		default:
			return nil, errorf(method, "unknown key %q", key)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errorf(method, "%w", err)
	}
	return c, nil
}

// Base returns the directory the configuration was loaded from, or the empty
// string for the default configuration.
func (c *C) Base() string {
	return c.base
}

// Initialize generates an initial configuration at the given directory.
func Initialize(baseDir string) error {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return fmt.Errorf("%q: could not mkdir: %w", baseDir, err)
	}
	path := filepath.Join(baseDir, "config")
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%q: already exists", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%q: could not determine if it exists: %w", path, err)
	}

	d := Default()
	var buf bytes.Buffer
	buf.WriteString("# Unchanged lines around each change, -1 for all.\n")
	fmt.Fprintf(&buf, "context-lines %d\n", d.ContextLines)
	fmt.Fprintf(&buf, "log-level %s\n", d.LogLevel)
	buf.WriteString("# Needed for s3:// locations.\n")
	buf.WriteString("# s3-region eu-west-1\n")
	buf.WriteString("# s3-profile default\n")
	err = os.WriteFile(path, buf.Bytes(), 0600)
	if err != nil {
		return fmt.Errorf("config.Initialize %q: %w", path, err)
	}
	return nil
}

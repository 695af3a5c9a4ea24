package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nicolagi/seqdiff/internal/config"
	"github.com/nicolagi/seqdiff/internal/diff"
	"github.com/nicolagi/seqdiff/internal/storage"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Replaced in tests.
var openStore = storage.Open

type source struct {
	loc   storage.Location
	store storage.Store
}

func openSource(cfg *config.C, arg string) (source, error) {
	loc, err := storage.ParseLocation(arg)
	if err != nil {
		return source{}, err
	}
	store, err := openStore(cfg, loc)
	if err != nil {
		return source{}, err
	}
	return source{loc: loc, store: store}, nil
}

// loadAll fetches the contents of all sources concurrently. The nodes are in
// the same order as the sources.
func loadAll(sources ...source) ([]diff.Node, error) {
	nodes := make([]diff.Node, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			v, err := src.store.Get(src.loc.Key)
			if err != nil {
				return fmt.Errorf("%v: %w", src.loc, err)
			}
			log.WithFields(log.Fields{
				"location": src.loc.String(),
				"size":     len(v),
			}).Debug("Loaded")
			nodes[i] = diff.ByteNode(v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// writeDiff compares a and b and sends the result to standard output if dst
// is empty, otherwise to the location dst. Local files are appended to.
func writeDiff(cfg *config.C, a, b diff.Node, dst string, stdout io.Writer, contextLines int) error {
	if dst == "" {
		return runDiff(a, b, diff.NewLineSink[string](stdout), contextLines)
	}
	loc, err := storage.ParseLocation(dst)
	if err != nil {
		return err
	}
	if loc.Scheme == storage.SchemeFile {
		sink, err := diff.NewFileSink[string](string(loc.Key))
		if err != nil {
			return err
		}
		return runDiff(a, b, sink, contextLines)
	}
	store, err := openStore(cfg, loc)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := runDiff(a, b, diff.NewLineSink[string](&buf), contextLines); err != nil {
		return err
	}
	return store.Put(loc.Key, buf.Bytes())
}

// runDiff closes the sink whether or not the comparison succeeds.
func runDiff(a, b diff.Node, sink *diff.LineSink[string], contextLines int) error {
	err := diff.CompareNodes(a, b, diff.WithContext[string](sink, contextLines))
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	return err
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// artifactWriteParams bundles the arguments for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // stem for derived file names
	output    string // explicit output path, "" for derived names, "-" for stdout
}

// artifactPath resolves the on-disk path for one format.
// A single format with an explicit output path goes to exactly that path.
// Everything else derives <stem>.<format> from the output path or the base.
func artifactPath(p artifactWriteParams, format string) string {
	if p.output != "" {
		if len(p.formats) == 1 {
			return p.output
		}
		return strings.TrimSuffix(p.output, filepath.Ext(p.output)) + "." + format
	}
	return p.base + "." + format
}

// writeArtifacts writes rendered artifacts to disk and prints a summary.
// An output path of "-" streams a single artifact to stdout instead.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return fmt.Errorf("cannot write %d formats to stdout", len(p.formats))
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	var paths []string
	for _, f := range p.formats {
		data, ok := p.artifacts[f]
		if !ok {
			return fmt.Errorf("no %s artifact was produced", f)
		}
		path := artifactPath(p, f)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

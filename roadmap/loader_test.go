package roadmap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestLoadMapParsesWaypoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	contents := "0 0 0 0 1\n10 0 10 0 2\n20 0 20 0 1\n"
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	m, err := LoadMap(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Len(), test.ShouldEqual, 3)
	test.That(t, m.Waypoints()[1].Frenet.DY, test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := LoadMap("/nonexistent/path/map.txt")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLoadMapMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	test.That(t, os.WriteFile(path, []byte("0 0 0\n"), 0o600), test.ShouldBeNil)

	_, err := LoadMap(path)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLoadMapEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	test.That(t, os.WriteFile(path, []byte(""), 0o600), test.ShouldBeNil)

	_, err := LoadMap(path)
	test.That(t, errors.Is(err, ErrEmptyMap), test.ShouldBeTrue)
}

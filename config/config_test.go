package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/valtree/dict"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
keyTable:
  maxEntries: 100
log:
  level: debug
`))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.KeyTable.MaxEntries = 100
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Error(diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown field", "keyTable:\n  buckets: 3\n"},
		{"load", "keyTable:\n  maxLoadPercent: 100\n"},
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"syntax", "keyTable: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valtree.yaml")
	if err := os.WriteFile(path, []byte("log:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Log.Format != "json" {
		t.Errorf("format %q", c.Log.Format)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error")
	}
}

func TestLogger(t *testing.T) {
	c := Default()
	c.Log.Level = "warn"
	buf := bytes.NewBuffer(nil)
	l := c.Logger(buf)
	l.Info("quiet")
	l.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("log %q", buf.String())
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() {
		if err := dict.SetTableOptions(dict.DefaultTableOptions()); err != nil {
			t.Fatal(err)
		}
		dict.SetLogger(nil)
	})
	c := Default()
	c.KeyTable.MaxEntries = 1
	c.Log.Level = "debug"
	buf := bytes.NewBuffer(nil)
	if err := c.Apply(buf); err != nil {
		t.Fatal(err)
	}
	o := dict.Object(dict.E("a", dict.New()))
	if res := o.AddKey("b", dict.New()); res != dict.HashError {
		t.Errorf("AddKey past capacity: %v", res)
	}
	if !strings.Contains(buf.String(), "key table failure") {
		t.Errorf("log %q", buf.String())
	}

	c.Log.Format = "yaml"
	if err := c.Apply(buf); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v", err)
	}
}

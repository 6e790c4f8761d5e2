package misc

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "contents.json")
	contents := []byte(`{"palette": "Ocean"}`)

	bytesWritten, err := WriteFile(fileName, contents)
	if err != nil {
		t.Fatalf("WriteFile failed: %s", err)
	}
	if bytesWritten != len(contents) {
		t.Errorf("bytesWritten = %d, want %d", bytesWritten, len(contents))
	}

	readBack, err := ReadFile(fileName)
	if err != nil {
		t.Fatalf("ReadFile failed: %s", err)
	}
	if !bytes.Equal(readBack, contents) {
		t.Errorf("read back %q, want %q", readBack, contents)
	}
}

func TestEmptyFileName(t *testing.T) {
	if _, err := ReadFile(""); err == nil {
		t.Error("ReadFile with empty name should fail")
	}
	if _, err := WriteFile("", []byte("x")); err == nil {
		t.Error("WriteFile with empty name should fail")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile of missing file should fail")
	}
}

package fetch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/virtbuild/guestprep/internal/sumfile"
)

func TestVerify_Match(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "disk.img")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("hello world"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	// MD5 of "hello world"
	if err := os.WriteFile(manifest, []byte("5eb63bbbe01eeed093cb22bb8f5acdc3  disk.img\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	if err := Verify(media, manifest, sumfile.MD5); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestVerify_CaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "disk.img")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("hello world"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	if err := os.WriteFile(manifest, []byte("MD5 (disk.img) = 5EB63BBBE01EEED093CB22BB8F5ACDC3\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	if err := Verify(media, manifest, sumfile.MD5); err != nil {
		t.Errorf("Expected uppercase manifest digest to verify, got %v", err)
	}
}

func TestVerify_Mismatch(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "disk.img")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("tampered"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	if err := os.WriteFile(manifest, []byte("5eb63bbbe01eeed093cb22bb8f5acdc3  disk.img\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	err := Verify(media, manifest, sumfile.MD5)
	if !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("Expected ErrDigestMismatch, got %v", err)
	}
}

func TestVerify_NoManifestEntry(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "disk.img")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	if err := os.WriteFile(manifest, []byte("5eb63bbbe01eeed093cb22bb8f5acdc3  other.img\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	err := Verify(media, manifest, sumfile.MD5)
	if !errors.Is(err, sumfile.ErrNotFound) {
		t.Errorf("Expected sumfile.ErrNotFound, got %v", err)
	}
}

func TestVerify_MissingManifest(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "disk.img")

	if err := os.WriteFile(media, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}

	if err := Verify(media, filepath.Join(tmpDir, "nope"), sumfile.MD5); err == nil {
		t.Error("Expected error for missing manifest")
	}
}

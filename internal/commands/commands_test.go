package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/virtbuild/guestprep/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestChecksumCommand(t *testing.T) {
	manifest := writeFile(t, "CHECKSUM", "5eb63bbbe01eeed093cb22bb8f5acdc3  boot.iso\n")

	cmd := CreateChecksumCommand()
	if err := cmd.Init([]string{"-manifest", manifest, "boot.iso"}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestChecksumCommand_NotFound(t *testing.T) {
	manifest := writeFile(t, "CHECKSUM", "5eb63bbbe01eeed093cb22bb8f5acdc3  boot.iso\n")

	cmd := CreateChecksumCommand()
	if err := cmd.Init([]string{"-manifest", manifest, "other.iso"}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}

	err := cmd.Run()
	if err == nil {
		t.Fatal("Expected error for missing manifest entry")
	}
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeSumfile {
		t.Errorf("Expected SUMFILE_ERROR, got %v", err)
	}
}

func TestChecksumCommand_BadAlgo(t *testing.T) {
	manifest := writeFile(t, "CHECKSUM", "")

	cmd := CreateChecksumCommand()
	if err := cmd.Init([]string{"-manifest", manifest, "-algo", "crc32", "boot.iso"}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
}

func TestChecksumCommand_MissingArgs(t *testing.T) {
	cmd := CreateChecksumCommand()
	if err := cmd.Init([]string{}, &AppContext{}); err == nil {
		t.Error("Expected error without -manifest")
	}

	manifest := writeFile(t, "CHECKSUM", "")
	cmd = CreateChecksumCommand()
	if err := cmd.Init([]string{"-manifest", manifest}, &AppContext{}); err == nil {
		t.Error("Expected error without file name argument")
	}
}

func TestVerifyCommand(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "boot.iso")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("hello world"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	if err := os.WriteFile(manifest, []byte("5eb63bbbe01eeed093cb22bb8f5acdc3  boot.iso\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	cmd := CreateVerifyCommand()
	if err := cmd.Init([]string{"-manifest", manifest, "-algo", "md5", media}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestVerifyCommand_Mismatch(t *testing.T) {
	tmpDir := t.TempDir()
	media := filepath.Join(tmpDir, "boot.iso")
	manifest := filepath.Join(tmpDir, "CHECKSUM")

	if err := os.WriteFile(media, []byte("tampered"), 0644); err != nil {
		t.Fatalf("Failed to write media: %v", err)
	}
	if err := os.WriteFile(manifest, []byte("5eb63bbbe01eeed093cb22bb8f5acdc3  boot.iso\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	cmd := CreateVerifyCommand()
	if err := cmd.Init([]string{"-manifest", manifest, "-algo", "md5", media}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}

	err := cmd.Run()
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeFetch {
		t.Errorf("Expected FETCH_ERROR, got %v", err)
	}
}

func TestCopyCommand(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.img")
	dst := filepath.Join(tmpDir, "dst.img")

	if err := os.WriteFile(src, []byte("image data"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	cmd := CreateCopyCommand()
	if err := cmd.Init([]string{src, dst}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(content) != "image data" {
		t.Errorf("Expected copied content, got %q", string(content))
	}
}

func TestCopyCommand_WrongArgs(t *testing.T) {
	cmd := CreateCopyCommand()
	if err := cmd.Init([]string{"only-one"}, &AppContext{}); err == nil {
		t.Error("Expected error for missing destination")
	}
}

func TestRenderCommand(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "ks.cfg.tmpl")
	dst := filepath.Join(tmpDir, "ks.cfg")

	if err := os.WriteFile(src, []byte("rootpw {{password}}\nurl {{mirror}}\n"), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	cmd := CreateRenderCommand()
	err := cmd.Init([]string{"-set", "password=secret", "-set", "mirror=http://example.com", src, dst}, &AppContext{})
	if err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	expected := "rootpw secret\nurl http://example.com\n"
	if string(content) != expected {
		t.Errorf("Expected %q, got %q", expected, string(content))
	}
}

func TestRenderCommand_UnknownVariable(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "ks.cfg.tmpl")

	if err := os.WriteFile(src, []byte("rootpw {{password}}\n"), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	cmd := CreateRenderCommand()
	if err := cmd.Init([]string{src, filepath.Join(tmpDir, "out")}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Error("Expected error for unresolved template variable")
	}
}

func TestRenderCommand_FromAuto(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "auto"), 0755); err != nil {
		t.Fatalf("Failed to create auto dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "auto", "fedora.ks"), []byte("rootpw {{password}}\n"), 0644); err != nil {
		t.Fatalf("Failed to write asset: %v", err)
	}

	configPath := filepath.Join(dataDir, "guestprep.toml")
	if err := os.WriteFile(configPath, []byte("[general]\ndata_dir = \""+dataDir+"\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	dst := filepath.Join(dataDir, "fedora-rendered.ks")

	cmd := CreateRenderCommand()
	err := cmd.Init([]string{"-auto", "-set", "password=secret", "fedora.ks", dst}, &AppContext{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(content) != "rootpw secret\n" {
		t.Errorf("Expected rendered asset, got %q", string(content))
	}
}

func TestKeyValueFlag(t *testing.T) {
	kv := make(keyValueFlag)

	if err := kv.Set("name=value"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if kv["name"] != "value" {
		t.Errorf("Expected value, got %q", kv["name"])
	}

	if err := kv.Set("url=http://a/b?c=d"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if kv["url"] != "http://a/b?c=d" {
		t.Errorf("Expected value with '=' preserved, got %q", kv["url"])
	}

	if err := kv.Set("novalue"); err == nil {
		t.Error("Expected error for pair without '='")
	}
	if err := kv.Set("=x"); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestMACCommand(t *testing.T) {
	cmd := CreateMACCommand()
	if err := cmd.Init([]string{"-count", "3"}, &AppContext{}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	cmd = CreateMACCommand()
	if err := cmd.Init([]string{"-count", "0"}, &AppContext{}); err == nil {
		t.Error("Expected error for zero count")
	}
}

func TestFetchCommand_ResolveURL(t *testing.T) {
	configPath := writeFile(t, "guestprep.toml", "[general]\ndata_dir = \"data\"\n\n[fetch]\nmirror_url = \"http://mirror.example.com/isos/\"\n")

	cmd := CreateFetchCommand()
	if err := cmd.Init([]string{"fedora/boot.iso"}, &AppContext{ConfigPath: configPath}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}

	resolved, err := cmd.resolveURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resolved != "http://mirror.example.com/isos/fedora/boot.iso" {
		t.Errorf("Expected joined mirror URL, got %s", resolved)
	}
}

func TestFetchCommand_AbsoluteURL(t *testing.T) {
	configPath := writeFile(t, "guestprep.toml", "[general]\ndata_dir = \"data\"\n")

	cmd := CreateFetchCommand()
	if err := cmd.Init([]string{"http://other.example.com/boot.iso"}, &AppContext{ConfigPath: configPath}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}

	resolved, err := cmd.resolveURL()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resolved != "http://other.example.com/boot.iso" {
		t.Errorf("Expected absolute URL unchanged, got %s", resolved)
	}
}

func TestFetchCommand_RelativeWithoutMirror(t *testing.T) {
	configPath := writeFile(t, "guestprep.toml", "[general]\ndata_dir = \"data\"\n")

	cmd := CreateFetchCommand()
	if err := cmd.Init([]string{"fedora/boot.iso"}, &AppContext{ConfigPath: configPath}); err != nil {
		t.Fatalf("Failed to init command: %v", err)
	}

	if _, err := cmd.resolveURL(); err == nil {
		t.Error("Expected error for relative URL without mirror_url")
	}
}

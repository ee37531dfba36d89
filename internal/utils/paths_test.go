package utils

import "testing"

func TestGetAbsolutePath_AlreadyAbsolute(t *testing.T) {
	result := GetAbsolutePath("/test/file.txt", "/base/dir")

	if result != "/test/file.txt" {
		t.Errorf("Expected /test/file.txt, got %s", result)
	}
}

func TestGetAbsolutePath_RelativePath(t *testing.T) {
	result := GetAbsolutePath("media/fedora.iso", "/var/lib/guestprep")
	expected := "/var/lib/guestprep/media/fedora.iso"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_DotPath(t *testing.T) {
	result := GetAbsolutePath("./file.txt", "/base/dir")
	expected := "/base/dir/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_DoubleDotPath(t *testing.T) {
	result := GetAbsolutePath("../file.txt", "/base/dir")
	expected := "/base/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestGetAbsolutePath_PathCleaning(t *testing.T) {
	result := GetAbsolutePath("a//b///c/file.txt", "/base//dir")
	expected := "/base/dir/a/b/c/file.txt"

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

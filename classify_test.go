package preopen

import (
	"strings"
	"testing"
)

func TestIsLikelyPath(t *testing.T) {
	likely := []string{
		"/", "//", ".", "..", "/.", "/..", "./", "../",
		"hello.mp3", "world.JPEG", "goodnight.d", "moon.delightful",
		".gitignore", ".this-and_that",
		"/foo", "/foo/bar", "/foo.baz/bar.baz",
		"foo/bar", "foo.baz/bar.baz", "foo/", "foo/bar/", "foo/bar/.",
		"fo o/b ar", "f oo/ba r",
		strings.Repeat("A/", 2048),
	}
	for _, s := range likely {
		if !IsLikelyPath(s) {
			t.Errorf("IsLikelyPath(%q) = false, want true", s)
		}
	}

	unlikely := []string{
		"",
		".this and that",
		"/hello\nworld.txt",
		"/hello\tworld.txt",
		"/hello\x00world.txt",
		"<special/time.txt",
		"!/what.txt",
		"*/*/foo.md",
		"-flag",
		"~user/file",
		"%escape",
	}
	for _, s := range unlikely {
		if IsLikelyPath(s) {
			t.Errorf("IsLikelyPath(%q) = true, want false", s)
		}
	}
}

func TestSplitExtension(t *testing.T) {
	cases := []struct {
		in        string
		stem, ext string
	}{
		{"foo.txt", "foo", ".txt"},
		{"foo", "foo", ""},
		{".gitignore", ".gitignore", ""},
		{"archive.tar.gz", "archive", ".tar.gz"},
		{"dir/file.txt", "dir/file", ".txt"},
		{"dir.d/file", "dir.d/file", ""},
		{"noext.", "noext", "."},
	}
	for _, c := range cases {
		stem, ext := SplitExtension(c.in)
		if stem != c.stem || ext != c.ext {
			t.Errorf("SplitExtension(%q) = (%q, %q), want (%q, %q)", c.in, stem, ext, c.stem, c.ext)
		}
	}
}

func TestIsNeverExtension(t *testing.T) {
	for _, r := range []rune{' ', '\t', '*', '"', ':', '\\', '|'} {
		if !IsNeverExtension(r) {
			t.Errorf("IsNeverExtension(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', 'Z', '0', '-', '_'} {
		if IsNeverExtension(r) {
			t.Errorf("IsNeverExtension(%q) = true, want false", r)
		}
	}
}

func TestIsSuspiciousShellMetacharacter(t *testing.T) {
	for _, r := range []rune{'&', '<', '>', '|', '?', '*', ';'} {
		if !IsSuspiciousShellMetacharacter(r) {
			t.Errorf("IsSuspiciousShellMetacharacter(%q) = false, want true", r)
		}
	}
	if IsSuspiciousShellMetacharacter('a') {
		t.Error("IsSuspiciousShellMetacharacter('a') = true, want false")
	}
}

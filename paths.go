package mdsite

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// PostURL returns the site path for a post, /posts/<slug>/.
func PostURL(slug string) string { return "/posts/" + slug + "/" }

// PageURL returns the site path for a static page, /<slug>/.
func PageURL(slug string) string { return "/" + slug + "/" }

// TagURL returns the site path for a tag archive, /tag/<encoded-tag>/.
func TagURL(tag string) string { return "/tag/" + url.PathEscape(tag) + "/" }

// PaginationURL returns the site path for an index page. Page 1 is the root.
func PaginationURL(pageNumber int) string {
	if pageNumber <= 1 {
		return "/"
	}
	return fmt.Sprintf("/page/%d/", pageNumber)
}

// OutputPath maps a site URL path to the file that serves it under baseDir.
// "/" maps to baseDir/index.html, "/posts/x/" to baseDir/posts/x/index.html.
//
// Two layers of defense against traversal: a lexical check on the raw and
// percent-decoded path and on every segment, then a containment check on the
// resolved result. Rejections wrap ErrUnsafePath.
func OutputPath(baseDir, urlPath string) (string, error) {
	decoded, err := url.PathUnescape(urlPath)
	if err != nil {
		decoded = urlPath
	}

	if strings.Contains(urlPath, "..") || strings.Contains(decoded, "..") {
		return "", fmt.Errorf("%w: path traversal attempt in %q", ErrUnsafePath, urlPath)
	}
	if strings.ContainsRune(urlPath, '\\') || strings.ContainsRune(decoded, '\\') {
		return "", fmt.Errorf("%w: invalid path separator in %q", ErrUnsafePath, urlPath)
	}

	trimmed := strings.Trim(urlPath, "/")
	if trimmed == "" {
		return filepath.Join(baseDir, "index.html"), nil
	}

	segments := strings.Split(trimmed, "/")
	for _, segment := range segments {
		clean := strings.TrimSpace(segment)
		if clean == "" || clean == "." || clean == ".." || clean != segment {
			return "", fmt.Errorf("%w: invalid segment %q in %q", ErrUnsafePath, segment, urlPath)
		}
	}

	outputPath := filepath.Join(append([]string{baseDir}, append(segments, "index.html")...)...)

	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q: %v", ErrUnsafePath, baseDir, err)
	}
	outputAbs, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q: %v", ErrUnsafePath, outputPath, err)
	}
	rel, err := filepath.Rel(baseAbs, outputAbs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the output directory", ErrUnsafePath, urlPath)
	}

	return outputPath, nil
}

// writeFile writes content to path, creating parent directories as needed.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0775)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), os.FileMode(0664))
}

// Directories that must never be removed, no matter what the config says.
var protectedRoots = map[string]bool{
	"/":             true,
	"/Users":        true,
	"/home":         true,
	"/System":       true,
	"/Applications": true,
}

// Files whose presence marks a directory as real user data.
var userDataMarkers = []string{".bash_profile", ".bashrc", ".zshrc", "Desktop", "Documents"}

// CleanOutputDir removes and recreates the output directory. It refuses to
// touch well-known system roots or anything that looks like a home
// directory. A cheap heuristic, not a sandbox.
func CleanOutputDir(dir string) error {
	resolved, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %q: %v", ErrUnsafeOutputDir, dir, err)
	}

	if protectedRoots[filepath.Clean(resolved)] {
		return fmt.Errorf("%w: %s", ErrUnsafeOutputDir, resolved)
	}
	for _, marker := range userDataMarkers {
		if _, err := os.Stat(filepath.Join(resolved, marker)); err == nil {
			return fmt.Errorf("%w: %s appears to contain user files", ErrUnsafeOutputDir, resolved)
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, os.FileMode(0775))
}

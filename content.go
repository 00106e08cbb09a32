package main

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var validSlug = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Loader resolves slugs to post sources.
// Only slugs found by the last directory scan can be loaded, the slug is never used to build an arbitrary path.
type Loader struct {
	fsys fs.FS
	ext  string

	mu    sync.RWMutex
	slugs map[string]struct{}
}

func NewLoader(fsys fs.FS, ext string) (*Loader, error) {
	l := &Loader{
		fsys:  fsys,
		ext:   ext,
		slugs: map[string]struct{}{},
	}

	if err := l.Refresh(); err != nil {
		return nil, err
	}

	return l, nil
}

// Refresh rescans the content directory for posts
func (l *Loader) Refresh() error {
	matches, err := fs.Glob(l.fsys, "*"+l.ext)
	if err != nil {
		return fmt.Errorf("scanning content: %w", err)
	}

	slugs := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		slug := strings.TrimSuffix(m, l.ext)
		if !validSlug.MatchString(slug) {
			log.Warn("Skipping content file with invalid slug: %s\n", m)
			continue
		}
		slugs[slug] = struct{}{}
	}

	l.mu.Lock()
	l.slugs = slugs
	l.mu.Unlock()
	return nil
}

func (l *Loader) Exists(slug string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.slugs[slug]
	return ok
}

// Slugs returns all known slugs in lexical order
func (l *Loader) Slugs() []string {
	l.mu.RLock()
	slugs := make([]string, 0, len(l.slugs))
	for s := range l.slugs {
		slugs = append(slugs, s)
	}
	l.mu.RUnlock()

	sort.Strings(slugs)
	return slugs
}

// Load returns the full source text of the post with the given slug
func (l *Loader) Load(slug string) (string, error) {
	if !l.Exists(slug) {
		return "", ErrNotFound
	}

	data, err := fs.ReadFile(l.fsys, slug+l.ext)
	if err != nil {
		// removed since the last scan
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}

	return string(data), nil
}

package downloader

import (
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/stoewer/go-strcase"
)

const maxFallbackLength = 200

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// detectFilename returns the last path segment of resolved, or a name built
// from origin when the segment is empty.
func detectFilename(resolved *url.URL, origin string) string {
	if resolved != nil {
		tokens := strings.Split(resolved.Path, "/")
		last := tokens[len(tokens)-1]
		if last != "" && last != "." && last != ".." {
			return last
		}
	}
	return fallbackFilename(origin)
}

func fallbackFilename(origin string) string {
	slug := strings.Trim(nonAlphanumeric.ReplaceAllString(origin, "-"), "-")
	name := "download_" + strcase.SnakeCase(slug)
	if slug == "" {
		name = "download"
	}
	if len(name) > maxFallbackLength {
		name = name[:maxFallbackLength]
	}
	return name
}

// nameRegistry hands out unique file names within one batch.
type nameRegistry struct {
	mu    sync.Mutex
	taken map[string]int
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{taken: make(map[string]int)}
}

// Reserve claims name, or the first free "base-N.ext" variant of it.
func (r *nameRegistry) Reserve(name string) string {
	if r == nil {
		return name
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.taken[name]; !ok {
		r.taken[name] = 0
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base, ext = name, ""
	}
	for n := r.taken[name] + 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n) + ext
		if _, ok := r.taken[candidate]; ok {
			continue
		}
		r.taken[name] = n
		r.taken[candidate] = 0
		return candidate
	}
}

// Package prompts embeds the model prompt catalog. Each JSON file maps
// prompt keys to template strings carrying {{.Name}} placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var catalogFS embed.FS

// loaded caches decoded prompt files for the lifetime of the process;
// the embedded content cannot change underneath it.
var (
	loadedMu sync.Mutex
	loaded   = map[string]map[string]string{}
)

// Get returns the prompt template stored under key in the named embedded
// file, e.g. Get("extraction.json", "extract-cv").
func Get(filename, key string) (string, error) {
	file, err := load(filename)
	if err != nil {
		return "", err
	}

	template, ok := file[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts whose absence is a programming error.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Name}} placeholders with the given values. It is
// plain string replacement rather than text/template: prompt bodies
// contain literal braces that must pass through untouched.
func Format(template string, values map[string]string) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{."+name+"}}", value)
	}
	return out
}

func load(filename string) (map[string]string, error) {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	if file, ok := loaded[filename]; ok {
		return file, nil
	}

	raw, err := catalogFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var file map[string]string
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	loaded[filename] = file
	return file, nil
}

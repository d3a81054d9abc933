package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults for the pager. Engine-facing values mirror the engine's own
// defaults; PageSize is how many lines one load-more round fetches.
const (
	DefaultBuffer     = 5
	DefaultThreshold  = 100
	DefaultDebounceMs = 150
	DefaultPageSize   = 500
	DefaultLabel      = "file contents"
)

// Settings are the pager's tunables, read from an rc file and
// overridable per key through VLIST_* environment variables. Invalid
// values never error out: they are clamped back to defaults, since a
// viewer should start with safe settings rather than refuse to start.
type Settings struct {
	Buffer      int    // extra rows rendered beyond the viewport
	Threshold   int    // load-more distance from the bottom, in rows
	DebounceMs  int    // is-scrolling settle time
	PageSize    int    // lines fetched per load-more
	FixedHeight int    // >0 forces a constant row height; 0 wraps lines
	Label       string // accessibility label for the list surface
}

// Defaults returns the safe baseline settings.
func Defaults() Settings {
	return Settings{
		Buffer:     DefaultBuffer,
		Threshold:  DefaultThreshold,
		DebounceMs: DefaultDebounceMs,
		PageSize:   DefaultPageSize,
		Label:      DefaultLabel,
	}
}

// DefaultPath returns ~/.vlistrc.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vlistrc"
	}
	return filepath.Join(home, ".vlistrc")
}

// Load reads settings from path. A missing file is not an error; the
// defaults (plus environment overrides) are returned.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			s.apply(strings.TrimSpace(key), strings.TrimSpace(val))
		}
	} else if !os.IsNotExist(err) {
		return s, err
	}

	for _, key := range []string{"buffer", "threshold", "debounce_ms", "page_size", "height", "label"} {
		env := "VLIST_" + strings.ToUpper(key)
		if v, ok := os.LookupEnv(env); ok {
			s.apply(key, v)
		}
	}

	s.clamp()
	return s, nil
}

func (s *Settings) apply(key, val string) {
	switch key {
	case "buffer":
		s.Buffer = atoiOr(val, s.Buffer)
	case "threshold":
		s.Threshold = atoiOr(val, s.Threshold)
	case "debounce_ms":
		s.DebounceMs = atoiOr(val, s.DebounceMs)
	case "page_size":
		s.PageSize = atoiOr(val, s.PageSize)
	case "height":
		s.FixedHeight = atoiOr(val, s.FixedHeight)
	case "label":
		if val != "" {
			s.Label = val
		}
	}
}

// clamp pulls out-of-range values back to defaults instead of
// erroring.
func (s *Settings) clamp() {
	if s.Buffer < 0 {
		s.Buffer = DefaultBuffer
	}
	if s.Threshold < 0 {
		s.Threshold = DefaultThreshold
	}
	if s.DebounceMs <= 0 {
		s.DebounceMs = DefaultDebounceMs
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if s.FixedHeight < 0 {
		s.FixedHeight = 0
	}
}

func atoiOr(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Save writes settings to path in the rc format Load reads.
func Save(path string, s Settings) error {
	var b strings.Builder
	fmt.Fprintf(&b, "buffer=%d\n", s.Buffer)
	fmt.Fprintf(&b, "threshold=%d\n", s.Threshold)
	fmt.Fprintf(&b, "debounce_ms=%d\n", s.DebounceMs)
	fmt.Fprintf(&b, "page_size=%d\n", s.PageSize)
	fmt.Fprintf(&b, "height=%d\n", s.FixedHeight)
	fmt.Fprintf(&b, "label=%s\n", s.Label)
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

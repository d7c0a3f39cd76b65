package profiles

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml defaults/scripts/*.tengo
var DefaultsFS embed.FS

const defaultsRoot = "defaults"

// Loader reads profiles and scripts from Dir, falling back to DefaultsFS
// for files the directory does not have.
type Loader struct {
	Dir    string
	logger *zap.SugaredLogger
}

func NewLoader(dir string, logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{Dir: dir, logger: logger}
}

// Read returns the raw YAML of the named profile.
func (l *Loader) Read(name string) ([]byte, error) {
	clean := cleanProfilePath(name)
	if clean == "" {
		return nil, fmt.Errorf("profiles: empty profile name: %w", ErrNotFound)
	}
	return l.read(clean)
}

// ReadScript returns the source of a tengo script referenced by `file`.
func (l *Loader) ReadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if clean == "" {
		return nil, fmt.Errorf("profiles: empty script name: %w", ErrNotFound)
	}
	return l.read(clean)
}

func (l *Loader) read(clean string) ([]byte, error) {
	clean, err := checkPath(clean)
	if err != nil {
		return nil, err
	}
	if l.Dir != "" {
		if data, err := os.ReadFile(l.diskPath(clean)); err == nil {
			l.logger.Debugw("profiles: read from disk", "file", clean, "dir", l.Dir)
			return data, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("profiles: read %s: %w", clean, err)
		}
	}
	data, err := DefaultsFS.ReadFile(path.Join(defaultsRoot, clean))
	if err != nil {
		return nil, fmt.Errorf("profiles: %s: %w", clean, ErrNotFound)
	}
	return data, nil
}

// ModTime reports when the on-disk copy of the named profile last changed.
func (l *Loader) ModTime(name string) (time.Time, bool) {
	if l.Dir == "" {
		return time.Time{}, false
	}
	clean, err := checkPath(cleanProfilePath(name))
	if err != nil {
		return time.Time{}, false
	}
	info, err := os.Stat(l.diskPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// List returns the names of every available profile, embedded and on disk.
func (l *Loader) List() ([]string, error) {
	seen := make(map[string]bool)
	embedded, err := fs.Glob(DefaultsFS, defaultsRoot+"/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, p := range embedded {
		seen[profileName(p)] = true
	}
	if l.Dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(l.Dir, pattern))
			if err != nil {
				return nil, err
			}
			for _, p := range matches {
				seen[profileName(p)] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) Load(name string) (*Profile, error) {
	data, err := l.Read(name)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("profiles: load %s: %w", name, err)
	}
	if p.Name == "" {
		p.Name = profileName(name)
	}
	return p, nil
}

func (l *Loader) Build(p *Profile) (*Set, error) {
	return Build(p, l, l.logger)
}

// LoadSet loads and builds the named profile.
func (l *Loader) LoadSet(name string) (*Set, error) {
	p, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	set, err := l.Build(p)
	if err != nil {
		return nil, err
	}
	l.logger.Infow("profiles: loaded", "profile", p.Name, "axes", len(set.AxisNames()), "sticks", len(set.StickNames()))
	return set, nil
}

func Decode(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func Encode(p *Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func profileName(p string) string {
	base := path.Base(filepath.ToSlash(p))
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}

func cleanProfilePath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "profiles/"); ok {
		s = after
	}
	if !isSpecFile(s) {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "profiles/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	if !isScriptFile(s) {
		s += ".tengo"
	}
	return "scripts/" + s
}

// checkPath rejects names that resolve outside the loader's directory.
func checkPath(clean string) (string, error) {
	p := path.Clean(clean)
	if !fs.ValidPath(p) || p == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, clean)
	}
	return p, nil
}

func (l *Loader) diskPath(clean string) string {
	return filepath.Join(l.Dir, filepath.FromSlash(clean))
}

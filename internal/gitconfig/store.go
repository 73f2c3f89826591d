package gitconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/git-profile/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

// Entry is a single flattened key/value pair, e.g. "user.work.email".
type Entry struct {
	Key   string
	Value string
}

// Store is one git config file held in memory. Changes made with Set are
// visible to Get and Entries immediately and reach the disk on Flush.
//
// Section and option names are case-insensitive, as in git: keys are
// reported in lower case, subsection names keep their case.
type Store struct {
	path    string
	target  string
	mode    os.FileMode
	raw     []byte
	cfg     *format.Config
	pending []change
}

// Locate returns the path of the global git config file. Like git, it
// prefers ~/.gitconfig and falls back to $XDG_CONFIG_HOME/git/config.
// Nothing is created; if neither file exists ErrStoreUnavailable is returned.
func Locate() (string, error) {
	candidates, err := globalCandidates()
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrStoreUnavailable, err)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: none of %s exists", kerrors.ErrStoreUnavailable, strings.Join(candidates, ", "))
}

func globalCandidates() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error getting home directory: %w", err)
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(homeDir, ".config")
	}

	return []string{
		filepath.Join(homeDir, ".gitconfig"),
		filepath.Join(xdgConfig, "git", "config"),
	}, nil
}

// Open reads and parses the git config file at path.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrStoreUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", kerrors.ErrStoreUnavailable, path)
	}

	// Dotfile setups often symlink ~/.gitconfig; writes go to the link target.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrStoreUnavailable, err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrStoreUnavailable, err)
	}

	cfg := format.New()
	if err := format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", kerrors.ErrStoreUnavailable, path, err)
	}

	return &Store{path: path, target: target, mode: info.Mode().Perm(), raw: data, cfg: cfg}, nil
}

// OpenGlobal locates and opens the global git config file.
func OpenGlobal() (*Store, error) {
	path, err := Locate()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Set replaces every value of key with value. The key is split at its first
// and last dot: "user.team.infra.name" is option "name" of subsection
// "team.infra" in section "user".
func (s *Store) Set(key, value string) error {
	section, subsection, name, err := splitKey(key)
	if err != nil {
		return err
	}

	sec := s.cfg.Section(section)
	if subsection == "" {
		sec.SetOption(name, value)
	} else {
		sec.Subsection(subsection).SetOption(name, value)
	}

	s.pending = append(s.pending, change{section: section, subsection: subsection, name: name, value: value})
	return nil
}

// Get returns the last value stored for key.
func (s *Store) Get(key string) (string, bool) {
	section, subsection, name, err := splitKey(key)
	if err != nil {
		return "", false
	}
	key = flatKey(strings.ToLower(section), subsection, strings.ToLower(name))

	var (
		value string
		found bool
	)
	s.walk(func(e Entry) {
		if e.Key == key {
			value, found = e.Value, true
		}
	})
	return value, found
}

// Entries returns every entry whose key matches the glob pattern, in file
// order. '*' matches any run of characters including dots, so "user.*.*"
// selects keys with at least three segments under the user section.
func (s *Store) Entries(pattern string) ([]Entry, error) {
	glob := hideSlashes(pattern)
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("%w: bad pattern %q", kerrors.ErrScanFailed, pattern)
	}

	var entries []Entry
	s.walk(func(e Entry) {
		if ok, _ := doublestar.Match(glob, hideSlashes(e.Key)); ok {
			entries = append(entries, e)
		}
	})
	return entries, nil
}

// hideSlashes swaps '/' for NUL, which a git config key cannot contain.
// doublestar treats '/' as a path separator that '*' never crosses, but
// keys such as user.acme/web.name are not paths.
func hideSlashes(s string) string {
	return strings.ReplaceAll(s, "/", "\x00")
}

// Flush writes the changes made with Set back to the file. Only the lines of
// the changed options are touched; comments, bare boolean keys and every other
// section stay as they were. The file is replaced atomically and keeps its
// permission bits.
func (s *Store) Flush() error {
	lines := strings.Split(string(s.raw), "\n")
	for _, c := range s.pending {
		lines = applyChange(lines, c)
	}

	data := strings.Join(lines, "\n")
	if data != "" && !strings.HasSuffix(data, "\n") {
		data += "\n"
	}

	if err := replaceFile(s.target, []byte(data), s.mode); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}

	s.raw = []byte(data)
	s.pending = nil
	return nil
}

func (s *Store) walk(fn func(Entry)) {
	for _, sec := range s.cfg.Sections {
		section := strings.ToLower(sec.Name)
		for _, opt := range sec.Options {
			fn(Entry{Key: flatKey(section, "", strings.ToLower(opt.Key)), Value: opt.Value})
		}
		for _, sub := range sec.Subsections {
			for _, opt := range sub.Options {
				// A [user ""] section keeps its empty segment: user..name.
				fn(Entry{Key: section + "." + sub.Name + "." + strings.ToLower(opt.Key), Value: opt.Value})
			}
		}
	}
}

func flatKey(section, subsection, name string) string {
	if subsection == "" {
		return section + "." + name
	}
	return section + "." + subsection + "." + name
}

func splitKey(key string) (section, subsection, name string, err error) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", fmt.Errorf("%w: %q", kerrors.ErrInvalidKey, key)
	}

	section = key[:first]
	name = key[last+1:]
	if first == last {
		return section, "", name, nil
	}

	// "user..name" must not collapse into the plain "user.name".
	subsection = key[first+1 : last]
	if subsection == "" {
		return "", "", "", fmt.Errorf("%w: empty subsection in %q", kerrors.ErrInvalidKey, key)
	}
	return section, subsection, name, nil
}

func replaceFile(path string, data []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode on %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

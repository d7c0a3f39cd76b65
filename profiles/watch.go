package profiles

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 100 * time.Millisecond

// Event names a changed file. Profile is empty when the file is a script,
// since any profile may reference it.
type Event struct {
	Path    string
	Profile string
}

// Watcher reports edits to profile and script files under a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.SugaredLogger
	Events  chan Event
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir and, when present, its scripts subdirectory.
func NewWatcher(dir string, logger *zap.SugaredLogger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{dir}
	if info, err := os.Stat(filepath.Join(dir, "scripts")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(dir, "scripts"))
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		logger:  logger,
		Events:  make(chan Event, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	logger.Debugw("profiles: watching", "dirs", dirs)
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

type pendingChange struct {
	path string
	gen  int
}

// run reports a file once it has been quiet for the debounce interval, so
// a truncate followed by a write is seen as one change with the final
// content.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	type pending struct {
		timer *time.Timer
		gen   int
	}
	timers := make(map[string]*pending)
	fired := make(chan pendingChange)
	defer func() {
		for _, p := range timers {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			p, ok := timers[event.Name]
			if !ok {
				p = &pending{}
				timers[event.Name] = p
			} else {
				p.timer.Stop()
			}
			p.gen++
			change := pendingChange{path: event.Name, gen: p.gen}
			p.timer = time.AfterFunc(debounce, func() {
				select {
				case fired <- change:
				case <-w.closeCh:
				}
			})
			w.logger.Debugw("profiles: changed", "path", event.Name, "op", event.Op.String())
		case change := <-fired:
			p, ok := timers[change.path]
			if !ok || p.gen != change.gen {
				continue
			}
			delete(timers, change.path)

			ev := Event{Path: change.path}
			if isSpecFile(change.path) {
				ev.Profile = profileName(change.path)
			}
			select {
			case w.Events <- ev:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				w.logger.Warnw("profiles: dropped watcher error", "error", err)
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

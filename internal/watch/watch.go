package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 150 * time.Millisecond

// Watcher reports changes to a fixed set of files. Parent directories are
// watched so editors that replace files on save are still seen.
type Watcher struct {
	fw    *fsnotify.Watcher
	names map[string]bool
}

func New(paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fw: fw, names: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.names[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run calls onChange once per burst of events, delay after the last one.
// Calls never overlap. Run returns when ctx is done.
func (w *Watcher) Run(ctx context.Context, delay time.Duration, onChange func()) error {
	defer w.fw.Close()

	var (
		mu    sync.Mutex
		runMu sync.Mutex
		timer *time.Timer
	)
	run := func() {
		runMu.Lock()
		defer runMu.Unlock()
		if ctx.Err() == nil {
			onChange()
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.names[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(delay, run)
			} else {
				timer.Reset(delay)
			}
			mu.Unlock()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

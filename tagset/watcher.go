package tagset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"tagmore/log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces the burst of events editors emit on save.
const DefaultReloadDebounce = 150 * time.Millisecond

// Update is a reload result delivered by a Watcher. Exactly one of Board and
// Err is set.
type Update struct {
	Board *Board
	Err   error
}

// Watcher reloads a tag file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	updates  chan Update

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Watch starts watching the tag file at path. The parent directory is watched
// so that editors which save by renaming a temp file are picked up.
func Watch(ctx context.Context, path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fsw,
		updates:  make(chan Update, 1),
		cancel:   cancel,
	}

	w.wg.Add(1)
	go w.run(ctx)

	return w, nil
}

// Updates returns the channel reloads are delivered on. It is closed by Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.updates)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.InfoLog.Printf("tag file changed: %s", ev)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			board, err := Load(w.path)
			if !w.send(ctx, Update{Board: board, Err: err}) {
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.send(ctx, Update{Err: fmt.Errorf("file watcher: %w", err)}) {
				return
			}
		}
	}
}

// send delivers u unless the watcher is shutting down.
func (w *Watcher) send(ctx context.Context, u Update) bool {
	select {
	case w.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

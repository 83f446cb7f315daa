// Package watcher notices growth in the session log tree so the UI can
// offer a rescan. It never tails files: a change only raises a hint, and
// the scanner re-collects from scratch when the user asks.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const logExt = ".jsonl"

type Watcher struct {
	root         string
	sizes        map[string]int64 // path -> last seen size
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func()
	stop         chan struct{}
	wg           sync.WaitGroup
}

func New(root string, pollInterval time.Duration, onChange func()) *Watcher {
	return &Watcher{
		root:         root,
		sizes:        make(map[string]int64),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Prime records the current size of every log file so only growth after
// this point raises a change.
func (w *Watcher) Prime() {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != logExt {
			return nil
		}
		w.sizes[path] = info.Size()
		return nil
	})
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() {
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		_ = filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
			if err == nil && info.IsDir() {
				_ = fsw.Add(path)
			}
			return nil
		})

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if filepath.Ext(event.Name) == logExt &&
						(event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0) {
						w.checkFile(event.Name)
					}
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.pollAll()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) checkFile(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	last, known := w.sizes[path]
	grown := !known || info.Size() > last
	w.sizes[path] = info.Size()
	w.mu.Unlock()

	if grown {
		w.onChange()
	}
}

func (w *Watcher) pollAll() {
	type fileInfo struct {
		path string
		size int64
	}
	var files []fileInfo
	_ = filepath.Walk(w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != logExt {
			return nil
		}
		files = append(files, fileInfo{path: path, size: info.Size()})
		return nil
	})

	w.mu.Lock()
	grown := false
	for _, f := range files {
		last, known := w.sizes[f.path]
		if !known || f.size > last {
			grown = true
		}
		w.sizes[f.path] = f.size
	}
	w.mu.Unlock()

	if grown {
		w.onChange()
	}
}

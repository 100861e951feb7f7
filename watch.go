/*
Copyright (C) 2023-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import "io"
import "fmt"
import "time"
import "context"
import "log/slog"
import "path/filepath"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/minilisp/scm"

// watchScripts runs a script again whenever it changes on disk, until ctx
// is cancelled. Runs happen one after another on the calling goroutine.
func watchScripts(ctx context.Context, in *scm.Interpreter, scripts []string, limit int64, stdout, stderr io.Writer, log *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]string{} // cleaned path -> name as given
	for _, script := range scripts {
		if err := watcher.Add(script); err != nil {
			return fmt.Errorf("watch %s: %w", script, err)
		}
		watched[filepath.Clean(script)] = script
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed := map[string]bool{}
			collect := func(ev fsnotify.Event) {
				if script, ok := watched[filepath.Clean(ev.Name)]; ok {
					changed[script] = true
				}
			}
			collect(event)
			// flush all other events
			for drained := false; !drained; {
				time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
				select {
				case ev := <-watcher.Events:
					collect(ev)
				default:
					drained = true
				}
			}
			for _, script := range scripts {
				if !changed[script] {
					continue
				}
				log.Info("reloading", "script", script)
				if err := runScript(in, script, limit, stdout); err != nil {
					fmt.Fprintln(stderr, err)
				}
				// text editors rename, so we have to rewatch
				if err := watcher.Add(script); err != nil {
					log.Warn("cannot watch again", "script", script, "err", err)
				}
			}
		}
	}
}

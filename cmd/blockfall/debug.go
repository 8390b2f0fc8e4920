package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/plus3/blockfall/engine"
)

const debugLogName = "blockfall-debug.log"

// setupLogging routes the standard logger to the debug file when enabled and
// discards it otherwise. The returned function closes the file.
func setupLogging(enabled bool) (func(), error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path := filepath.Join(os.TempDir(), debugLogName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func logEvent(ev engine.Event) {
	log.Printf("event %s", ev)
}

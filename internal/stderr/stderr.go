//go:build !windows

// Package stderr captures output that the audio backend's C libraries
// (ALSA, minimp3) write straight to file descriptor 2. Left alone, those
// lines would be drawn over the TUI; captured, they go to the log.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into the log. It must run before the audio device
// is opened. On failure the program can continue with stderr untouched.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go forward(pipeRead, zlog.Logger)
	return nil
}

// forward logs every non-blank line read from r until it is closed.
func forward(r io.Reader, log zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.Debug().Str("source", "stderr").Msg(line)
		}
	}
}

// WriteOriginal writes to the terminal's stderr, bypassing capture.
func WriteOriginal(msg string) {
	if !started {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(origStderr, []byte(msg))
}

// Stop restores the original stderr.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()
	started = false
}

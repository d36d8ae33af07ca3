//go:build linux

package fb

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
)

// readKeyboards starts one reader per device matching pattern, each pushing
// key events into queue until ctx is done. Wait on the returned group to
// join them. Missing devices are logged, not fatal.
func readKeyboards(ctx context.Context, pattern string, queue *input.Queue, logger logging.Logger) *sync.WaitGroup {
	var wg sync.WaitGroup

	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices match %s", pattern)
		return &wg
	}

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			readDevice(ctx, path, queue)
		}(path)
	}
	logger.Infof("input", "reading %d evdev devices", len(paths))
	return &wg
}

func readDevice(ctx context.Context, path string, queue *input.Queue) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 64*eventSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if ev, ok := keyEvent(typ, code, value); ok {
				queue.Push(ev)
			}
		}
	}
}

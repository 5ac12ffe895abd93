// Package thread keeps SDL calls on the main OS thread.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import (
	"runtime"

	"github.com/faiface/mainthread"
)

func init() {
	runtime.LockOSThread()
}

// Main runs f while the main thread serves Call requests.
// Main returns when f finishes and must be called from main().
func Main(f func()) { mainthread.Run(f) }

// Call executes f on the main thread and blocks until it finishes.
func Call(f func()) { mainthread.Call(f) }

// CallErr executes f on the main thread and returns its error.
func CallErr(f func() error) error { return mainthread.CallErr(f) }

package main

import (
	"io"
	"sync"
)

// syncWriter serializes diagnostics from concurrent assemblies.
type syncWriter struct {
	mutex sync.Mutex
	w     io.Writer
}

func (sw *syncWriter) Write(data []byte) (n int, err error) {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()
	return sw.w.Write(data)
}

//go:build !unix

package main

import "os"

// Without dup2 the descriptors cannot be replaced, so only the os.Stdout and
// os.Stderr variables are swapped. Native library output and runtime
// panics are not captured.
func redirectStdIO(path string) error {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout, os.Stderr = logFile, logFile
	return nil
}

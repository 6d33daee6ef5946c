// Package main provides the pancakes demo: a stack of colored screens
// navigated with a gamepad or keyboard, saved on exit and restored on start.
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

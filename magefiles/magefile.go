//go:build mage

// Package main provides build targets for the viewstack project using Mage.
//
// Usage:
//
//	mage build       Compile the pancakes demo to bin/
//	mage test:all    Run every test (needs SDL2 development headers)
//	mage test:core   Run tests of the packages that build without cgo
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install pancakes to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "pancakes"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pancakes"
)

// Build compiles the pancakes binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := fmt.Sprintf("-X main.version=%s", version())
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Test groups test targets.
type Test mg.Namespace

// All runs every test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Core runs tests of packages that do not link SDL, so it works on
// machines without the SDL2 development headers.
func (Test) Core() error {
	pkgs, err := sh.Output(binGo, "list", "./pkg/...", "./internal/...")
	if err != nil {
		return err
	}
	var core []string
	for _, pkg := range strings.Split(pkgs, "\n") {
		if pkg != "" && !strings.HasSuffix(pkg, "/sdlview") {
			core = append(core, pkg)
		}
	}
	args := append([]string{"test"}, core...)
	return sh.RunV(binGo, args...)
}

// version describes the checkout, or "dev" outside a git repository.
func version() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || out == "" {
		return "dev"
	}
	return strings.TrimSpace(out)
}

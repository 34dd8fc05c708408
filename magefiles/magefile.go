//go:build mage

// Package main provides build targets for the kbase project using Mage.
//
// Usage:
//
//	mage build           Compile kbase binary to bin/
//	mage test:all        Run all tests (unit + integration)
//	mage test:unit       Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage lint            Run golangci-lint
//	mage clean           Remove build artifacts
//	mage install         Install kbase to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "kbase"
	binaryDir  = "bin"
	cmdDir     = "./cmd/kbase"
)

// Build compiles the kbase binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
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

// Test groups the test targets.
type Test mg.Namespace

// All runs unit and integration tests.
func (Test) All() error {
	mg.Deps(Test.Unit)
	return Test{}.Integration()
}

// Unit runs package tests, excluding the integration suite.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./pkg/...", "./internal/...", "./cmd/...")
}

// Integration builds the binary first, then runs the integration suite.
func (Test) Integration() error {
	mg.Deps(Build)
	return sh.RunV(binGo, "test", "-v", "./tests/...")
}

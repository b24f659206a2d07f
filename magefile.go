//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs tests and builds the binary
var Default = All

// Build compiles the us8kjams binary
func Build() error {
	return sh.RunV("go", "build", "-o", "us8kjams", "./cmd/us8kjams")
}

// Test runs the full test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Install installs us8kjams into GOBIN
func Install() error {
	return sh.RunV("go", "install", "./cmd/us8kjams")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("us8kjams")
}

// All tests and then builds
func All() {
	mg.SerialDeps(Test, Build)
}

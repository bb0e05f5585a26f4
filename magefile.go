//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bulktrans"

var Default = Build

// Build builds the bulktrans binary
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/bulktrans")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort runs the tests without loading the lingua language models
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration runs the tests that call the live translation services
func Integration() error {
	env := map[string]string{"BULKTRANS_INTEGRATION": "1"}
	return sh.RunWithV(env, "go", "test", "-count=1", "./internal/translation/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs bulktrans into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/bulktrans")
}

// Clean removes the built binary
func Clean() error {
	return os.RemoveAll(binary)
}

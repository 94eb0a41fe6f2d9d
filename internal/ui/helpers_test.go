package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/seed"
	"github.com/zhubert/facade/internal/workspace"
)

// stripANSI removes ANSI escape codes from a string for testing
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// testSeed returns a fresh copy of the embedded workspace
func testSeed() *seed.Data {
	return seed.Default()
}

func testTree() *workspace.Tree {
	return testSeed().Tree()
}

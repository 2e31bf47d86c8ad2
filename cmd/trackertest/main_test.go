package main

//go:generate go test -c -o=../../bin/trackertest

import (
	"os"
	"testing"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/suite"
)

// TestMain создает окружение пакетного уровня, необходимое фикстурам со
// Scope: fixenv.ScopePackage.
func TestMain(m *testing.M) {
	_, tearDown := fixenv.CreateMainTestEnv(nil)

	code := m.Run()
	tearDown()
	os.Exit(code)
}

func TestTracker(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

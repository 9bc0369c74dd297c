// Package testutil provides fixtures and assertions shared by package tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/stretchr/testify/require"
)

// SamplePrototypes returns a small table mixing functions and methods.
func SamplePrototypes() []entities.Prototype {
	return []entities.Prototype{
		{Key: "mysqli_connect", Return: "object", Params: "[string host [, string username [, string passwd]]]", Description: "Open a new connection to the MySQL server"},
		{Key: "PDO::query", Return: "object", Params: "string statement", Description: "Prepares and executes an SQL statement without placeholders"},
		{Key: "PDO::prepare", Return: "object", Params: "string statement [, array driver_options]", Description: "Prepares a statement for execution"},
		{Key: "strlen", Return: "int", Params: "string str", Description: "Get string length"},
	}
}

// WriteFile writes content to name inside a per-test temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// RequireErrorAs asserts that err wraps a T and returns it.
func RequireErrorAs[T error](t *testing.T, err error) T {
	t.Helper()
	var target T
	require.Error(t, err)
	require.True(t, errors.As(err, &target), "expected %T in chain, got %T: %v", target, err, err)
	return target
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `{"openapi":"3.0.3","info":{"title":"A","version":"1"},"paths":{"/pets":{"get":{"operationId":"listPets"}}}}`)
	outPath := filepath.Join(dir, "merged.json")
	cfgPath := writeFixture(t, dir, "config.json", `{"inputs":[{"inputFile":"`+filepath.Join(dir, "a.json")+`"}],"output":"`+outPath+`"}`)

	code := run([]string{"-config", cfgPath})
	assert.Equal(t, exitSuccess, code)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listPets")
}

func TestRunConfigLoadFailure(t *testing.T) {
	code := run([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	assert.Equal(t, exitConfigFailure, code)
}

func TestRunBadFlag(t *testing.T) {
	code := run([]string{"-nonexistent-flag"})
	assert.Equal(t, exitConfigFailure, code)
}

func TestRunInputLoadFailure(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "merged.json")
	cfgPath := writeFixture(t, dir, "config.json", `{"inputs":[{"inputFile":"`+filepath.Join(dir, "missing.json")+`"}],"output":"`+outPath+`"}`)

	code := run([]string{"-config", cfgPath})
	assert.Equal(t, exitInputLoadFailure, code)
}

func TestRunMergeFailureOnDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.json", `{"openapi":"3.0.3","info":{"title":"A","version":"1"},"paths":{"/pets":{"get":{"operationId":"a"}}}}`)
	writeFixture(t, dir, "b.json", `{"openapi":"3.0.3","info":{"title":"B","version":"1"},"paths":{"/pets":{"get":{"operationId":"b"}}}}`)
	outPath := filepath.Join(dir, "merged.json")
	cfgPath := writeFixture(t, dir, "config.json", `{"inputs":[{"inputFile":"`+filepath.Join(dir, "a.json")+`"},{"inputFile":"`+filepath.Join(dir, "b.json")+`"}],"output":"`+outPath+`"}`)

	code := run([]string{"-config", cfgPath})
	assert.Equal(t, exitMergeFailure, code)
}

func TestConvertPathModificationNil(t *testing.T) {
	assert.Nil(t, convertPathModification(nil))
}

func TestConvertOperationSelectionNil(t *testing.T) {
	assert.Nil(t, convertOperationSelection(nil))
}

func TestConvertDescriptionNil(t *testing.T) {
	assert.Nil(t, convertDescription(nil))
}

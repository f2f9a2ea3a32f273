package utils

import (
	"fmt"
	"os"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var CarbonjInstanceId = gonanoid.MustGenerate(idAlphabet, 12)

// NewRunId returns an id for a single tracking action, prefixed with the instance id.
func NewRunId() string {
	return fmt.Sprintf("%s-%s", CarbonjInstanceId, gonanoid.MustGenerate(idAlphabet, 8))
}

// Returns true if the specified file exists and is actually a file (not a directory)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// Returns true if the specified directory exists and is actually a directory (not a file)
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

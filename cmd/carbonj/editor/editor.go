// Package editor provides the document the host editor currently has open.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/utils"
)

var ErrNoActiveDocument = errors.New("No active file found")

type Context interface {
	// ActiveDocument returns the open document with an absolute path, or ErrNoActiveDocument.
	ActiveDocument() (*entities.Document, error)
}

// Static is the editor state reported along with a single startTracking request.
type Static struct {
	Document *entities.Document
	// Relative document paths are resolved inside this directory. Empty means the current directory.
	WorkspaceRoot string
}

func (s *Static) ActiveDocument() (*entities.Document, error) {
	if s.Document == nil || s.Document.Path == "" {
		return nil, ErrNoActiveDocument
	}

	path, err := s.resolvePath(s.Document.Path)
	if err != nil {
		return nil, err
	}

	if !utils.FileExists(path) {
		return nil, fmt.Errorf("The active file does not exist: %s", path)
	}

	return &entities.Document{
		Path:       path,
		LanguageId: s.Document.LanguageId,
	}, nil
}

func (s *Static) resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if s.WorkspaceRoot == "" {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("Failed to resolve the absolute path for %s: %w", path, err)
		}
		return absolutePath, nil
	}

	root, err := filepath.Abs(s.WorkspaceRoot)
	if err != nil {
		return "", fmt.Errorf("Failed to resolve the workspace root %s: %w", s.WorkspaceRoot, err)
	}
	if !utils.DirectoryExists(root) {
		return "", fmt.Errorf("The workspace root does not exist: %s", root)
	}

	// Keeps paths such as ../../etc/passwd inside the workspace
	resolvedPath, err := securejoin.SecureJoin(root, path)
	if err != nil {
		return "", fmt.Errorf("Failed to resolve %s inside the workspace: %w", path, err)
	}
	return resolvedPath, nil
}

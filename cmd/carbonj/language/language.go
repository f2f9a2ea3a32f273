// Package language maps the language id reported by the editor to the
// interpreter invocation that runs a file of that language.
package language

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

type Language int

const (
	Python Language = iota + 1
	JavaScript
	TypeScript
)

var languageIds = map[string]Language{
	"python":     Python,
	"javascript": JavaScript,
	"typescript": TypeScript,
}

var extensionIds = map[string]string{
	".py":  "python",
	".js":  "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".ts":  "typescript",
	".mts": "typescript",
	".cts": "typescript",
}

func (l Language) String() string {
	switch l {
	case Python:
		return "python"
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// Interpreter returns the program and leading arguments used to run a file.
func (l Language) Interpreter() []string {
	switch l {
	case Python:
		return []string{"python"}
	case JavaScript:
		return []string{"node"}
	case TypeScript:
		return []string{"npx", "ts-node"}
	default:
		return nil
	}
}

type UnsupportedLanguageError struct {
	ID string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("Unsupported language: %s", e.ID)
}

// Parse returns the Language for an editor language id. Ids are matched exactly.
func Parse(id string) (Language, error) {
	language, ok := languageIds[id]
	if !ok {
		return 0, &UnsupportedLanguageError{ID: id}
	}
	return language, nil
}

// FromExtension guesses the editor language id of a file. Unknown extensions
// are returned without the leading dot, so they fail in Parse with a useful id.
func FromExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if id, ok := extensionIds[ext]; ok {
		return id
	}
	return strings.TrimPrefix(ext, ".")
}

type Command struct {
	Language Language
	Line     string
	Dir      string
}

func (c *Command) String() string {
	return c.Line
}

// Resolve builds the shell command that runs filePath with the interpreter for id.
// The command runs in the directory containing the file.
func Resolve(id string, filePath string) (*Command, error) {
	language, err := Parse(id)
	if err != nil {
		return nil, err
	}

	return &Command{
		Language: language,
		Line:     strings.Join(append(language.Interpreter(), Quote(filePath)), " "),
		Dir:      filepath.Dir(filePath),
	}, nil
}

// Quote makes path a single shell word for the platform's shell.
func Quote(path string) string {
	return lo.Ternary(
		runtime.GOOS == "windows",
		`"`+strings.ReplaceAll(path, `"`, `""`)+`"`,
		"'"+strings.ReplaceAll(path, "'", `'\''`)+"'",
	)
}

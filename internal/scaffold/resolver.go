package scaffold

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultAPIPort is the application port baked into generated projects when
// the caller does not override it.
const DefaultAPIPort = 8080

// secretKeyBytes is the entropy drawn for each generated secret key. The
// hex-encoded value is twice this length.
const secretKeyBytes = 32

// dbSuffix is appended to the snake_case name to form the database name.
const dbSuffix = "_db"

// reservedNames are project names that would collide with directories or
// module names inside the generated tree.
var reservedNames = map[string]bool{
	"app":       true,
	"static":    true,
	"templates": true,
	"test":      true,
	"tests":     true,
	"src":       true,
	"venv":      true,
}

// Resolve computes the variable bindings for one generation run.
//
// Every binding except secret_key is a deterministic function of the project
// name and options; secret_key is drawn fresh from crypto/rand on each call
// and is never reproduced across runs, even for the same project name.
func Resolve(projectName string, opts GenerateOptions) (Bindings, error) {
	if err := validateProjectName(projectName); err != nil {
		return nil, err
	}

	snake := snakeCase(projectName)
	if snake == "" {
		return nil, newInvalidNameError(projectName, "contains no usable characters")
	}
	if reservedNames[snake] {
		return nil, newInvalidNameError(projectName, "collides with a reserved identifier")
	}

	port := opts.APIPort
	if port == 0 {
		port = DefaultAPIPort
	}

	secret, err := generateSecretKey()
	if err != nil {
		return nil, fmt.Errorf("generating secret key: %w", err)
	}

	return Bindings{
		VarProjectName:      projectName,
		VarProjectNameSnake: snake,
		VarProjectNameKebab: strings.ReplaceAll(snake, "_", "-"),
		VarProjectNameTitle: titleCase(projectName),
		VarProjectNamePkg:   pkgName(snake),
		VarDBName:           snake + dbSuffix,
		VarAPIPort:          strconv.Itoa(port),
		VarSecretKey:        secret,
	}, nil
}

// DefaultTargetDir returns the directory a project name maps to when the
// caller does not pick one: the snake_case derivation, relative to the
// current directory.
func DefaultTargetDir(projectName string) (string, error) {
	if err := validateProjectName(projectName); err != nil {
		return "", err
	}
	snake := snakeCase(projectName)
	if snake == "" {
		return "", newInvalidNameError(projectName, "contains no usable characters")
	}
	return snake, nil
}

// CheckRequiredVars confirms every spec's required variables are present in
// the bindings. A miss is a catalog/resolver mismatch, reported as a defect
// with the file and variable rather than as user error.
func CheckRequiredVars(specs []FileSpec, bindings Bindings) error {
	for _, spec := range specs {
		for _, v := range spec.Vars {
			if _, ok := bindings[v]; !ok {
				return newVariableMissingError(spec.Path, v)
			}
		}
	}
	return nil
}

func validateProjectName(name string) error {
	if name == "" {
		return newInvalidNameError(name, "is empty")
	}
	if strings.TrimSpace(name) == "" {
		return newInvalidNameError(name, "is blank")
	}
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case r == ' ', r == '-', r == '_', r == '.':
		default:
			return newInvalidNameError(name, fmt.Sprintf("contains unsupported character %q", r))
		}
	}
	return nil
}

// snakeCase lowercases the name and collapses every non-alphanumeric run to
// a single underscore, trimming leading and trailing underscores.
func snakeCase(name string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	return b.String()
}

// pkgName prefixes a leading digit with an underscore so the result is a
// valid package or module identifier.
func pkgName(snake string) string {
	if snake == "" {
		return snake
	}
	if snake[0] >= '0' && snake[0] <= '9' {
		return "_" + snake
	}
	return snake
}

// titleCase upcases the first letter of each word, splitting on the same
// separators snakeCase collapses.
func titleCase(name string) string {
	var b strings.Builder
	startWord := true

	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if startWord {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			startWord = false
		case unicode.IsDigit(r):
			b.WriteRune(r)
			startWord = false
		default:
			if !startWord {
				b.WriteByte(' ')
			}
			startWord = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// generateSecretKey draws secretKeyBytes from the system CSPRNG and encodes
// them as lowercase hex. The generated value seeds the session and signing
// secret of a real application, so a general-purpose PRNG is not acceptable
// here.
func generateSecretKey() (string, error) {
	buf := make([]byte, secretKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

package scaffold

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, opts GenerateOptions) *Result {
	t.Helper()
	result, err := NewGenerator(opts).Generate()
	require.NoError(t, err)
	return result
}

func TestGenerateSuccess(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my_cool_app")
	result := generate(t, GenerateOptions{
		Flavor:      FlavorFullstack,
		ProjectName: "My Cool App",
		TargetDir:   target,
	})

	assert.Equal(t, FlavorFullstack, result.Flavor)
	assert.Equal(t, target, result.TargetDir)
	assert.Equal(t, "my_cool_app", result.ProjectNameSnake)
	assert.Equal(t, "my_cool_app", result.ProjectNamePkg)
	assert.Equal(t, len(result.CreatedPaths), result.FileCount)

	specs, err := SpecsFor(FlavorFullstack)
	require.NoError(t, err)
	wantPaths := make([]string, 0, len(specs))
	for _, s := range specs {
		wantPaths = append(wantPaths, s.Path)
	}
	assert.Equal(t, wantPaths, result.CreatedPaths, "created paths follow catalog order")

	for _, rel := range result.CreatedPaths {
		info, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel)))
		require.NoError(t, err, "missing %s", rel)
		assert.False(t, info.IsDir())
	}
}

func TestGenerateExecutableMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	target := filepath.Join(t.TempDir(), "proj")
	generate(t, GenerateOptions{Flavor: FlavorPortfolio, ProjectName: "proj", TargetDir: target})

	info, err := os.Stat(filepath.Join(target, "run.py"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "run.py must be executable")

	info, err = os.Stat(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&0o111, "README.md must not be executable")
}

func TestGenerateDeterministicExceptSecret(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")

	resultA := generate(t, GenerateOptions{Flavor: FlavorAPI, ProjectName: "my-api", TargetDir: a})
	resultB := generate(t, GenerateOptions{Flavor: FlavorAPI, ProjectName: "my-api", TargetDir: b})
	require.Equal(t, resultA.CreatedPaths, resultB.CreatedPaths)

	for _, rel := range resultA.CreatedPaths {
		contentA, err := os.ReadFile(filepath.Join(a, filepath.FromSlash(rel)))
		require.NoError(t, err)
		contentB, err := os.ReadFile(filepath.Join(b, filepath.FromSlash(rel)))
		require.NoError(t, err)

		if rel == ".env.example" {
			assert.NotEqual(t, contentA, contentB,
				"the secret-bearing file must differ between runs")
			continue
		}
		assert.Equal(t, contentA, contentB, "%s must be byte-identical across runs", rel)
	}
}

func TestGenerateSecretWrittenOnlyToEnvFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "proj")
	result := generate(t, GenerateOptions{Flavor: FlavorAPI, ProjectName: "proj-name", TargetDir: target})

	env, err := os.ReadFile(filepath.Join(target, ".env.example"))
	require.NoError(t, err)

	secretLine := regexp.MustCompile(`(?m)^SECRET_KEY=([0-9a-f]{64})$`)
	match := secretLine.FindSubmatch(env)
	require.NotNil(t, match, ".env.example must carry a 64-char hex secret")
	secret := string(match[1])

	for _, rel := range result.CreatedPaths {
		if rel == ".env.example" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.NotContains(t, string(content), secret, "secret leaked into %s", rel)
	}
}

func TestGenerateNoClobber(t *testing.T) {
	target := t.TempDir()
	unrelated := filepath.Join(target, "precious.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep me"), 0o644))

	_, err := NewGenerator(GenerateOptions{
		Flavor:      FlavorPortfolio,
		ProjectName: "proj",
		TargetDir:   target,
	}).Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTargetExists)

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	require.Len(t, entries, 1, "a failed run must not touch the target")

	content, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}

func TestGenerateTargetIsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	_, err := NewGenerator(GenerateOptions{
		Flavor:      FlavorAPI,
		ProjectName: "proj",
		TargetDir:   target,
	}).Generate()
	assert.ErrorIs(t, err, ErrTargetExists)
}

func TestGenerateEmptyExistingTarget(t *testing.T) {
	// An existing but empty directory is a valid target.
	target := t.TempDir()
	result := generate(t, GenerateOptions{Flavor: FlavorAPI, ProjectName: "proj", TargetDir: target})
	assert.NotZero(t, result.FileCount)
}

func TestGenerateBadNameCreatesNothing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "never-created")

	_, err := NewGenerator(GenerateOptions{
		Flavor:      FlavorAPI,
		ProjectName: "",
		TargetDir:   target,
	}).Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProjectName)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no directory may be created for a rejected name")
}

func TestGenerateUnknownFlavorCreatesNothing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "never-created")

	_, err := NewGenerator(GenerateOptions{
		Flavor:      Flavor("spa"),
		ProjectName: "proj",
		TargetDir:   target,
	}).Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFlavor)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCasingPropagation(t *testing.T) {
	target := filepath.Join(t.TempDir(), "proj")
	generate(t, GenerateOptions{Flavor: FlavorAPI, ProjectName: "My Cool App", TargetDir: target})

	pyproject, err := os.ReadFile(filepath.Join(target, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `package = "my_cool_app"`)
	assert.Contains(t, string(pyproject), `name = "my-cool-app"`)

	compose, err := os.ReadFile(filepath.Join(target, "docker-compose.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(compose), "image: my_cool_app",
		"the compose image name must derive from the same snake_case value")
}

func TestGeneratePortOverride(t *testing.T) {
	target := filepath.Join(t.TempDir(), "proj")
	generate(t, GenerateOptions{
		Flavor:      FlavorAPI,
		ProjectName: "proj",
		TargetDir:   target,
		APIPort:     9001,
	})

	dockerfile, err := os.ReadFile(filepath.Join(target, "Dockerfile"))
	require.NoError(t, err)
	assert.Contains(t, string(dockerfile), "EXPOSE 9001")
}

func TestPlanWritesNothing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "dry")

	plan, err := NewGenerator(GenerateOptions{
		Flavor:      FlavorFullstack,
		ProjectName: "proj",
		TargetDir:   target,
	}).Plan()
	require.NoError(t, err)
	assert.NotEmpty(t, plan.Files)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "planning must not touch the file system")
}

func TestGenerateCleanupOnCommitFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission-based failure injection is unix-only")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root bypasses permission checks")
	}

	// An existing empty directory that refuses writes passes the
	// precondition but fails the first commit write.
	target := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(target, 0o555))
	t.Cleanup(func() { _ = os.Chmod(target, 0o755) })

	_, err := NewGenerator(GenerateOptions{
		Flavor:      FlavorAPI,
		ProjectName: "proj",
		TargetDir:   target,
	}).Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialWrite)

	// The externally created directory survives, with nothing inside.
	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Empty(t, entries, "cleanup must remove everything the run created")
}

func TestGeneratorSingleRun(t *testing.T) {
	g := NewGenerator(GenerateOptions{
		Flavor:      FlavorPortfolio,
		ProjectName: "proj",
		TargetDir:   filepath.Join(t.TempDir(), "proj"),
	})

	_, err := g.Generate()
	require.NoError(t, err)

	_, err = g.Generate()
	assert.Error(t, err, "a generator owns exactly one run")
}

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkwd/cli/internal/output"
)

// runState tracks the lifecycle of one generation run. A run only moves
// forward; once committing begins the only exits are succeeded or aborted.
type runState int

const (
	stateIdle runState = iota
	stateValidating
	statePlanning
	stateCommitting
	stateSucceeded
	stateAborted
)

// Generator materializes one project tree. Each Generator owns exactly one
// run: a second Generate call on the same value is an error.
//
// Known limitation: the empty-target precondition is a best-effort guard,
// not a lock. A concurrent actor writing into the target between the check
// and the commit can collide with the run, and external modification during
// commit can leave residue that the best-effort cleanup does not see.
// Concurrent runs against different targets are independent.
type Generator struct {
	opts  GenerateOptions
	state runState

	// Paths created by this run, recorded for rollback. createdRoot is set
	// when the run itself created the target directory.
	createdRoot  bool
	createdDirs  []string
	createdFiles []string
}

// NewGenerator creates a generator for the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Plan validates the inputs and renders the full file set into memory
// without touching the file system. Used directly for dry runs.
func (g *Generator) Plan() (*Plan, error) {
	specs, err := SpecsFor(g.opts.Flavor)
	if err != nil {
		return nil, err
	}

	bindings, err := Resolve(g.opts.ProjectName, g.opts)
	if err != nil {
		return nil, err
	}
	if err := CheckRequiredVars(specs, bindings); err != nil {
		return nil, err
	}

	plan := &Plan{
		Flavor:   g.opts.Flavor,
		Files:    make([]PlannedFile, 0, len(specs)),
		Bindings: bindings,
	}
	for _, spec := range specs {
		content, err := Render(spec, bindings)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, PlannedFile{
			Path:       spec.Path,
			Content:    content,
			Executable: spec.Executable,
		})
	}

	return plan, nil
}

// Generate runs the full pipeline: precondition check, resolution, in-memory
// planning, then commit. No directory or file is created until the entire
// plan has rendered successfully, so input and rendering failures leave the
// file system untouched. A commit failure triggers best-effort removal of
// everything this run created and surfaces as ErrPartialWrite.
func (g *Generator) Generate() (*Result, error) {
	if g.state != stateIdle {
		return nil, fmt.Errorf("generator already ran (state %d)", g.state)
	}
	if g.opts.TargetDir == "" {
		return nil, fmt.Errorf("target directory not set")
	}

	output.Debug("generating project",
		"flavor", g.opts.Flavor,
		"name", g.opts.ProjectName,
		"target", g.opts.TargetDir)

	g.state = stateValidating
	if err := g.checkTarget(); err != nil {
		g.state = stateAborted
		return nil, err
	}

	g.state = statePlanning
	plan, err := g.Plan()
	if err != nil {
		g.state = stateAborted
		return nil, err
	}

	g.state = stateCommitting
	if err := g.commit(plan); err != nil {
		g.cleanup()
		g.state = stateAborted
		return nil, err
	}

	g.state = stateSucceeded
	return &Result{
		Flavor:           plan.Flavor,
		TargetDir:        g.opts.TargetDir,
		CreatedPaths:     plan.Paths(),
		FileCount:        len(plan.Files),
		ProjectNameSnake: plan.Bindings[VarProjectNameSnake],
		ProjectNamePkg:   plan.Bindings[VarProjectNamePkg],
	}, nil
}

// checkTarget enforces the create-or-abort policy: the target must not
// exist, or must be an empty directory. The engine never merges into a
// populated tree.
func (g *Generator) checkTarget() error {
	info, err := os.Stat(g.opts.TargetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return newTargetExistsError(g.opts.TargetDir)
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}
	if len(entries) > 0 {
		return newTargetExistsError(g.opts.TargetDir)
	}

	return nil
}

// commit writes the plan under the target directory in catalog order. The
// order carries no correctness weight but keeps output reproducible for
// snapshot tests.
func (g *Generator) commit(plan *Plan) error {
	if _, err := os.Stat(g.opts.TargetDir); os.IsNotExist(err) {
		if err := os.MkdirAll(g.opts.TargetDir, 0o755); err != nil {
			return newPartialWriteError(g.opts.TargetDir, err)
		}
		g.createdRoot = true
	}

	for _, f := range plan.Files {
		target := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.Path))

		if err := g.mkdirTracked(filepath.Dir(target)); err != nil {
			return newPartialWriteError(f.Path, err)
		}

		mode := os.FileMode(0o644)
		if f.Executable {
			mode = 0o755
		}
		if err := os.WriteFile(target, f.Content, mode); err != nil {
			return newPartialWriteError(f.Path, err)
		}
		g.createdFiles = append(g.createdFiles, target)
		output.Debug("created file", "path", f.Path)
	}

	return nil
}

// mkdirTracked creates dir and any missing parents, recording each directory
// this run brings into existence so cleanup can remove them.
func (g *Generator) mkdirTracked(dir string) error {
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	}

	if err := g.mkdirTracked(filepath.Dir(dir)); err != nil {
		return err
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return err
	}
	g.createdDirs = append(g.createdDirs, dir)
	return nil
}

// cleanup removes everything this run created, files first and directories
// in reverse creation order. Removal errors are ignored: this is best-effort
// rollback, not a transaction.
func (g *Generator) cleanup() {
	output.Warn("removing files created by the failed run",
		"target", g.opts.TargetDir,
		"files", len(g.createdFiles))

	if g.createdRoot {
		_ = os.RemoveAll(g.opts.TargetDir)
		return
	}

	for _, f := range g.createdFiles {
		_ = os.Remove(f)
	}
	for i := len(g.createdDirs) - 1; i >= 0; i-- {
		_ = os.Remove(g.createdDirs[i])
	}
}

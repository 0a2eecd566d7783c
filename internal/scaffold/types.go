// Package scaffold provides the project generation engine for mkwd.
//
// The engine is split into four parts: a static template catalog describing
// which files each flavor produces, a variable resolver that computes the
// binding set for one run, a renderer that substitutes bindings into a
// template body, and a generator that materializes the rendered tree on disk
// with all-or-nothing semantics.
package scaffold

// Flavor selects the project archetype to generate.
type Flavor string

const (
	// FlavorPortfolio is a minimal site with static assets and page templates.
	FlavorPortfolio Flavor = "portfolio"

	// FlavorAPI is a backend-only service with database models and API routes.
	FlavorAPI Flavor = "api"

	// FlavorFullstack combines the API backend with the front-end asset tree.
	FlavorFullstack Flavor = "fullstack"
)

// DefaultFlavor is used when the caller does not pick a flavor.
const DefaultFlavor = FlavorPortfolio

// Flavors returns all flavors in registration order.
func Flavors() []Flavor {
	return []Flavor{FlavorPortfolio, FlavorAPI, FlavorFullstack}
}

// ParseFlavor parses a flavor name. Unknown names return ErrUnknownFlavor.
func ParseFlavor(s string) (Flavor, error) {
	switch Flavor(s) {
	case FlavorPortfolio, FlavorAPI, FlavorFullstack:
		return Flavor(s), nil
	default:
		return "", newUnknownFlavorError(s)
	}
}

// Description returns a one-line description of the flavor for listings.
func (f Flavor) Description() string {
	switch f {
	case FlavorPortfolio:
		return "Portfolio site - static assets, page templates, no database"
	case FlavorAPI:
		return "API-only backend - database models, user and auth routes"
	case FlavorFullstack:
		return "Full-stack app - API backend plus front-end asset tree"
	default:
		return ""
	}
}

// FileSpec describes one templated output file. Specs are owned by the
// catalog and immutable after registration.
type FileSpec struct {
	// Path is the output path relative to the target directory. Always
	// POSIX-style, cleaned, with no leading slash and no ".." segments.
	Path string

	// Body is the template text with {{name}} placeholders.
	Body string

	// Vars is the set of variable names the body references. Verified
	// against the body at registration time.
	Vars []string

	// Executable marks scripts that should be written with the execute bit.
	Executable bool

	// Description is a short label shown in the generation summary.
	Description string
}

// Bindings maps variable names to values for a single generation run.
type Bindings map[string]string

// Binding names produced by the resolver.
const (
	VarProjectName      = "project_name"
	VarProjectNameSnake = "project_name_snake"
	VarProjectNameKebab = "project_name_kebab"
	VarProjectNameTitle = "project_name_title"
	VarProjectNamePkg   = "project_name_pkg"
	VarDBName           = "db_name"
	VarAPIPort          = "api_port"
	VarSecretKey        = "secret_key"
)

// PlannedFile is one fully rendered output file, computed before any write.
type PlannedFile struct {
	// Path is the output path relative to the target directory.
	Path string

	// Content is the rendered file content.
	Content []byte

	// Executable marks the file for mode 0o755 instead of 0o644.
	Executable bool
}

// Plan is the ordered set of files one run will write. It is computed
// entirely in memory; a plan that fails to build performs no I/O.
type Plan struct {
	// Flavor is the flavor the plan was built for.
	Flavor Flavor

	// Files are the planned files in catalog order.
	Files []PlannedFile

	// Bindings are the resolved variables, kept for the caller's summary.
	// The secret_key binding is present here but never copied into Result.
	Bindings Bindings
}

// Paths returns the planned relative paths in catalog order.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Result describes a completed generation run.
//
// The generated secret_key is deliberately absent: it is written only into
// the generated configuration file so callers are not tempted to log it.
type Result struct {
	// Flavor is the flavor that was generated.
	Flavor Flavor

	// TargetDir is the directory the tree was written under.
	TargetDir string

	// CreatedPaths are the created relative paths in catalog order.
	CreatedPaths []string

	// FileCount is the total number of files written.
	FileCount int

	// ProjectNameSnake is the resolved snake_case derivation.
	ProjectNameSnake string

	// ProjectNamePkg is the resolved package-identifier derivation.
	ProjectNamePkg string
}

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Flavor selects the file set to generate.
	Flavor Flavor

	// ProjectName is the caller-supplied project name, as given.
	ProjectName string

	// TargetDir is the directory to materialize the tree under. It must not
	// exist, or must exist and be empty.
	TargetDir string

	// APIPort overrides the default application port when non-zero.
	APIPort int
}

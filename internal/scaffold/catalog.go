package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template bodies and their manifests are compiled into the binary. The
// all: prefix keeps dotfile templates (.gitignore, .env.example) included.
//
//go:embed all:templates
var templatesFS embed.FS

// Flavors are composed from shared groups rather than three independent file
// piles: every flavor extends base, api and fullstack share the backend
// group, and portfolio and fullstack share the frontend group.
var flavorGroups = map[Flavor][]string{
	FlavorPortfolio: {"base", "frontend"},
	FlavorAPI:       {"base", "backend"},
	FlavorFullstack: {"base", "backend", "frontend"},
}

// manifest is the parsed form of a group's manifest.yaml.
type manifest struct {
	Files []manifestEntry `yaml:"files"`
}

type manifestEntry struct {
	Path        string   `yaml:"path"`
	Description string   `yaml:"description"`
	Vars        []string `yaml:"vars"`
	Executable  bool     `yaml:"executable"`
}

// specsByFlavor is the process-wide catalog. It is built once here and never
// mutated afterwards; a registration failure is a defect in the shipped
// templates and aborts startup.
var specsByFlavor = mustLoadCatalog()

func mustLoadCatalog() map[Flavor][]FileSpec {
	catalog, err := loadCatalog(templatesFS)
	if err != nil {
		panic(fmt.Sprintf("scaffold: invalid template catalog: %v", err))
	}
	return catalog
}

// SpecsFor returns the ordered file specs for a flavor. The order is the
// manifests' declared order and is fixed across runs.
func SpecsFor(flavor Flavor) ([]FileSpec, error) {
	specs, ok := specsByFlavor[flavor]
	if !ok {
		return nil, newUnknownFlavorError(string(flavor))
	}
	return specs, nil
}

// loadCatalog reads every group manifest, attaches template bodies, and
// validates the composed per-flavor sets.
func loadCatalog(fsys fs.FS) (map[Flavor][]FileSpec, error) {
	groups := make(map[string][]FileSpec)

	for _, flavorSet := range flavorGroups {
		for _, group := range flavorSet {
			if _, done := groups[group]; done {
				continue
			}
			specs, err := loadGroup(fsys, group)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", group, err)
			}
			groups[group] = specs
		}
	}

	catalog := make(map[Flavor][]FileSpec, len(flavorGroups))
	for flavor, flavorSet := range flavorGroups {
		var specs []FileSpec
		for _, group := range flavorSet {
			specs = append(specs, groups[group]...)
		}
		if err := validateSpecs(specs); err != nil {
			return nil, fmt.Errorf("flavor %s: %w", flavor, err)
		}
		catalog[flavor] = specs
	}

	return catalog, nil
}

// loadGroup parses one group's manifest and reads its template bodies.
// Manifest entries and embedded .tmpl files must match one to one.
func loadGroup(fsys fs.FS, group string) ([]FileSpec, error) {
	root := path.Join("templates", group)

	raw, err := fs.ReadFile(fsys, path.Join(root, "manifest.yaml"))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	declared := make(map[string]bool, len(m.Files))
	specs := make([]FileSpec, 0, len(m.Files))

	for _, entry := range m.Files {
		if declared[entry.Path] {
			return nil, fmt.Errorf("path %s declared twice", entry.Path)
		}
		declared[entry.Path] = true

		body, err := fs.ReadFile(fsys, path.Join(root, entry.Path+".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("template for %s: %w", entry.Path, err)
		}

		spec := FileSpec{
			Path:        entry.Path,
			Body:        string(body),
			Vars:        append([]string(nil), entry.Vars...),
			Executable:  entry.Executable,
			Description: entry.Description,
		}
		if err := validateSpecVars(spec); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	// Every embedded template must be declared; an orphan .tmpl is a
	// packaging mistake.
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(p, ".tmpl") {
			return err
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(p, root+"/"), ".tmpl")
		if !declared[rel] {
			return fmt.Errorf("embedded template %s not declared in manifest", rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return specs, nil
}

// validateSpecVars checks that the declared variable set matches the
// placeholders actually present in the body, both ways. A body referencing
// an undeclared variable would defeat the resolver's closed-world check; a
// declared-but-unused variable is manifest rot.
func validateSpecVars(spec FileSpec) error {
	found := scanVars(spec.Body)

	declared := make(map[string]bool, len(spec.Vars))
	for _, v := range spec.Vars {
		declared[v] = true
	}

	for _, v := range found {
		if !declared[v] {
			return fmt.Errorf("%s: body references undeclared variable %q", spec.Path, v)
		}
	}

	present := make(map[string]bool, len(found))
	for _, v := range found {
		present[v] = true
	}
	for _, v := range spec.Vars {
		if !present[v] {
			return fmt.Errorf("%s: declared variable %q not referenced by body", spec.Path, v)
		}
	}

	return nil
}

// validateSpecs checks one flavor's composed file set: clean POSIX-relative
// paths and pairwise-distinct paths.
func validateSpecs(specs []FileSpec) error {
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		if err := validateRelPath(spec.Path); err != nil {
			return err
		}
		if seen[spec.Path] {
			return fmt.Errorf("path %s appears in more than one group", spec.Path)
		}
		seen[spec.Path] = true
	}

	return nil
}

// validateRelPath rejects absolute, unclean, or escaping relative paths.
func validateRelPath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("path %s is absolute", p)
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("path %s is not POSIX-style", p)
	}
	if path.Clean(p) != p {
		return fmt.Errorf("path %s is not clean", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("path %s escapes the target directory", p)
		}
	}
	return nil
}

// FlavorPaths returns the pinned relative path list for a flavor, sorted.
// Exposed for listings and snapshot fixtures.
func FlavorPaths(flavor Flavor) ([]string, error) {
	specs, err := SpecsFor(flavor)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(specs))
	for _, s := range specs {
		paths = append(paths, s.Path)
	}
	sort.Strings(paths)
	return paths, nil
}

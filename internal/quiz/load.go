package quiz

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// CorrelationsFile is the reserved file name holding correlation tables.
const CorrelationsFile = "correlations.yaml"

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("open built-in definitions: %w", err)
	}
	return Load(sub)
}

// LoadDir loads a catalog from the *.yaml files in dir.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open quiz dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open quiz dir: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every *.yaml file at the root of fsys. Each file holds one quiz,
// except CorrelationsFile which holds the correlation tables. Quizzes are
// ordered by file name.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	slices.Sort(names)

	quizzes := make([]*Quiz, len(names))
	var correlations []CorrelationDef

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			if name == CorrelationsFile {
				defs, err := ParseCorrelations(data)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				correlations = defs
				return nil
			}
			q, err := ParseQuiz(data)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			quizzes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	quizzes = slices.DeleteFunc(quizzes, func(q *Quiz) bool { return q == nil })
	if len(quizzes) == 0 {
		return nil, fmt.Errorf("%w: no quiz files found", ErrInvalidDefinition)
	}
	return NewCatalog(quizzes, correlations)
}

// ParseQuiz decodes and schema-checks a single quiz document.
func ParseQuiz(data []byte) (*Quiz, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(QuizSchema, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	var q Quiz
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return &q, nil
}

type correlationsDoc struct {
	Tables []CorrelationDef `yaml:"tables"`
}

// ParseCorrelations decodes and schema-checks the correlations document.
func ParseCorrelations(data []byte) ([]CorrelationDef, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateDocument(CorrelationsSchema, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	var cd correlationsDoc
	if err := yaml.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("decode correlations: %w", err)
	}
	return cd.Tables, nil
}

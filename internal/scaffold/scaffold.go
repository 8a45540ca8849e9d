// Package scaffold creates new DivinePL projects from templates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template names accepted by Create
const (
	TemplateDefault = "default"
	TemplateMiracle = "miracle"
	TemplateProphet = "prophet"
)

// Project describes a scaffolded project so callers can print its structure
type Project struct {
	Name       string
	Template   string
	Files      []string // Relative paths, in creation order
	HasTrinity bool
}

type templateFile struct {
	path    string
	content string
}

func templateFiles(template string) ([]templateFile, error) {
	switch template {
	case TemplateDefault, "":
		return []templateFile{
			{"genesis.divine", defaultGenesis},
			{"commandments.config", defaultCommandments},
		}, nil
	case TemplateMiracle:
		return []templateFile{
			{"genesis.divine", miracleGenesis},
			{"commandments.config", miracleCommandments},
			{filepath.Join("holy_trinity", "father.divine"), miracleFather},
			{filepath.Join("holy_trinity", "son.divine"), miracleSon},
			{filepath.Join("holy_trinity", "holy_ghost.divine"), miracleHolyGhost},
		}, nil
	case TemplateProphet:
		return []templateFile{
			{"genesis.divine", prophetGenesis},
			{"commandments.config", prophetCommandments},
			{filepath.Join("holy_trinity", "father.divine"), prophetFather},
			{filepath.Join("holy_trinity", "son.divine"), prophetSon},
			{filepath.Join("holy_trinity", "holy_ghost.divine"), prophetHolyGhost},
		}, nil
	default:
		return nil, fmt.Errorf("unknown template %q (supported: default, miracle, prophet)", template)
	}
}

// Create scaffolds a new project directory. Creation is sacred, duplication
// is heresy: an existing directory is an error, never overwritten.
func Create(name, template string) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	files, err := templateFiles(template)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(name); err == nil {
		return nil, fmt.Errorf("project %q already exists. Creation is sacred, duplication is heresy", name)
	}

	if err := os.MkdirAll(name, 0755); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	project := &Project{
		Name:     name,
		Template: template,
	}

	for _, f := range files {
		path := filepath.Join(name, f.path)
		if dir := filepath.Dir(path); dir != name {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
			project.HasTrinity = true
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.path, err)
		}
		project.Files = append(project.Files, f.path)
	}

	return project, nil
}

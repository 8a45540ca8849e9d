package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func inTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestCreate_DefaultTemplate(t *testing.T) {
	inTempDir(t)

	project, err := Create("ark", TemplateDefault)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if project.HasTrinity {
		t.Error("default template should not create the trinity directory")
	}

	genesis, err := os.ReadFile(filepath.Join("ark", "genesis.divine"))
	if err != nil {
		t.Fatalf("read genesis: %v", err)
	}
	if !strings.Contains(string(genesis), "bless Program") {
		t.Error("genesis.divine missing blessed program")
	}

	if _, err := os.Stat(filepath.Join("ark", "commandments.config")); err != nil {
		t.Errorf("commandments.config missing: %v", err)
	}
}

func TestCreate_MiracleTemplateHasTrinity(t *testing.T) {
	inTempDir(t)

	project, err := Create("lazarus", TemplateMiracle)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !project.HasTrinity {
		t.Error("miracle template should create the trinity directory")
	}

	for _, member := range []string{"father.divine", "son.divine", "holy_ghost.divine"} {
		if _, err := os.Stat(filepath.Join("lazarus", "holy_trinity", member)); err != nil {
			t.Errorf("missing trinity member %s: %v", member, err)
		}
	}
}

func TestCreate_RefusesExistingDirectory(t *testing.T) {
	inTempDir(t)

	if err := os.Mkdir("eden", 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := Create("eden", TemplateDefault); err == nil {
		t.Error("expected an error for an existing project directory")
	}
}

func TestCreate_UnknownTemplate(t *testing.T) {
	inTempDir(t)

	if _, err := Create("babel", "apocrypha"); err == nil {
		t.Error("expected an error for an unknown template")
	}
	if _, err := os.Stat("babel"); !os.IsNotExist(err) {
		t.Error("unknown template must not leave a project directory behind")
	}
}

func TestCreate_TemplatesAreClassifiable(t *testing.T) {
	// Scaffolded scripts should at least carry the markers the classifier
	// understands
	for _, content := range []string{miracleGenesis, prophetGenesis} {
		if !strings.Contains(content, "🙏 BEGIN PRAYER 🙏") || !strings.Contains(content, "🙏 END PRAYER 🙏") {
			t.Error("template missing prayer block markers")
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"fyne.io/fyne/v2/test"
)

func TestBuildNamespace(t *testing.T) {
	test.NewTempApp(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.png"), []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	mountsPath := filepath.Join(dir, "mounts.yaml")
	if err := os.WriteFile(mountsPath, []byte("mounts:\n  - prefix: local\n    path: .\n"), 0644); err != nil {
		t.Fatalf("Failed to write mounts file: %v", err)
	}

	ns, err := BuildNamespace(NamespaceOptions{
		Bundle:       fstest.MapFS{"icons/play.png": {Data: []byte("png")}},
		IncludeTheme: true,
		MountsFile:   mountsPath,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ns.Mounts() != 3 {
		t.Fatalf("Expected 3 mounts, got %d", ns.Mounts())
	}

	resources, err := ns.List()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resources[0].Path != "icons/play.png" {
		t.Errorf("Expected bundle entries first, got %s", resources[0].Path)
	}

	var themed, mounted bool
	for _, r := range resources {
		if strings.HasPrefix(r.Path, ThemeMountPrefix+"/") {
			themed = true
		}
		if r.Path == "local/extra.png" {
			mounted = true
		}
	}
	if !themed {
		t.Error("Expected theme icons in namespace")
	}
	if !mounted {
		t.Error("Expected local/extra.png in namespace")
	}
}

func TestBuildNamespace_BadMountsFile(t *testing.T) {
	_, err := BuildNamespace(NamespaceOptions{MountsFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Error("Expected error for missing mounts file")
	}
}

func TestSettingsNamespaceOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetIncludeThemeIcons(false)
	settings.SetMountsFile("/tmp/mounts.yaml")

	opts := settings.NamespaceOptions(nil)
	if opts.IncludeTheme {
		t.Error("Expected theme icons to be disabled")
	}
	if opts.MountsFile != "/tmp/mounts.yaml" {
		t.Errorf("Unexpected mounts file %s", opts.MountsFile)
	}
}

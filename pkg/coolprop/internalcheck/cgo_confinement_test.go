package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// bindingsPath is the only package allowed to import "C" or "unsafe". It owns
// every native call; keeping the rest of the module pure Go is what makes the
// memory-safety contract auditable.
const bindingsPath = "github.com/fluidkit/coolprop-go/internal/bindings"

func TestCgoConfinedToBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, "github.com/fluidkit/coolprop-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPath || strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}
		for importPath := range pkg.Imports {
			if importPath == "unsafe" || importPath == "runtime/cgo" {
				findings = append(findings, pkg.PkgPath+" imports "+importPath)
			}
		}
		for _, f := range pkg.GoFiles {
			if strings.HasSuffix(f, ".cgo1.go") {
				findings = append(findings, pkg.PkgPath+" uses cgo: "+f)
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo confinement policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

package usecase

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

// InitWorkspace scaffolds lumen.yaml, the receipts directory and the
// .gitignore entries under a directory.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute returns the absolute root it initialized. Existing files are kept
// unless force is set.
func (uc *InitWorkspace) Execute(dir string, force bool) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", &domain.OpError{Op: "workspace.init", Kind: domain.KindInvalidInput, Err: domain.ErrInvalidInput}
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{Op: "workspace.init", Kind: domain.KindInvalidInput, Path: dir, Err: err}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}
	return root, nil
}

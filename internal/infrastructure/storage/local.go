// Package storage grava uploads no disco local.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/relampago/backoffice-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage grava em dir; a URL devolvida é base + publicPath + nome.
type LocalStorage struct {
	dir        string
	publicPath string
	publicBase string
}

// NewLocalStorage cria o diretório se ainda não existir.
func NewLocalStorage(dir, publicPath, publicBase string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de upload: %w", err)
	}
	return &LocalStorage{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *LocalStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("nome de arquivo inválido")
	}
	dst := filepath.Join(s.dir, name)
	tmp := dst + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("gravar upload: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("mover upload: %w", err)
	}
	return s.publicBase + path.Join(s.publicPath, name), nil
}

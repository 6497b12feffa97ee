package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GravaEDevolveURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "uploads/", "https://api.relampago.com/")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "abc.png", []byte("conteudo"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.relampago.com/uploads/abc.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
}

func TestLocalStorage_SemBaseEIgnoraDiretorios(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "novo"), "/uploads", "")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "../../etc/x.gif", []byte("g"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x.gif", url)
	assert.FileExists(t, filepath.Join(dir, "novo", "x.gif"))
}

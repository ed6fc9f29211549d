package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"praxis/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *Root {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Root = t.TempDir()
	root, err := NewRoot(cfg)
	require.NoError(t, err)

	return root
}

func TestNewRoot_RejectsRelativeBase(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Root = "uploads"
	_, err := NewRoot(cfg)
	assert.Error(t, err)

	cfg.Storage.Root = ""
	_, err = NewRoot(cfg)
	assert.Error(t, err)
}

func TestResolve_RejectsTraversal(t *testing.T) {
	root := newTestRoot(t)

	hostile := []string{
		"../../etc/passwd",
		"docs/../../secret",
		`..\..\windows\system32`,
		`docs\..\..\fora`,
		"..",
		"./../escape",
		"a/b/../../../c",
	}
	for _, path := range hostile {
		_, err := root.Resolve(path)
		assert.ErrorIs(t, err, ErrPathRejected, "path %q must be rejected", path)
	}
}

func TestResolve_RejectsRootItself(t *testing.T) {
	root := newTestRoot(t)

	// Paths that canonicalize to the base directory must not pass the
	// containment gate: the gateway serves files below the root, never the
	// root itself.
	hostile := []string{
		".",
		"./",
		"./.",
		"sub/..", // gate 1 catches this before containment does
	}
	for _, path := range hostile {
		resolved, err := root.Resolve(path)
		assert.ErrorIs(t, err, ErrPathRejected, "path %q must be rejected", path)
		assert.Empty(t, resolved)
	}
}

func TestResolve_RejectsAbsolute(t *testing.T) {
	root := newTestRoot(t)

	hostile := []string{
		"/etc/passwd",
		`\server\share`,
		`C:\segredos\arquivo.pdf`,
		"c:/segredos/arquivo.pdf",
		root.Base() + "/dentro.pdf", // absolute even when under the root
	}
	for _, path := range hostile {
		_, err := root.Resolve(path)
		assert.ErrorIs(t, err, ErrPathRejected, "path %q must be rejected", path)
	}
}

func TestResolve_AllRejectionsAreUniform(t *testing.T) {
	root := newTestRoot(t)

	_, errTraversal := root.Resolve("../fuga")
	_, errAbsolute := root.Resolve("/etc/passwd")
	_, errEmpty := root.Resolve("")

	assert.Equal(t, errTraversal, errAbsolute)
	assert.Equal(t, errTraversal, errEmpty)
}

func TestResolve_AcceptsContainedPaths(t *testing.T) {
	root := newTestRoot(t)

	for _, path := range []string{
		"contrato.pdf",
		"clientes/123/procuracao.pdf",
		"docs/./peticao.pdf",
		"nome com espaços.pdf",
	} {
		resolved, err := root.Resolve(path)
		require.NoError(t, err, "path %q must resolve", path)
		assert.True(t, strings.HasPrefix(resolved, root.Base()+string(filepath.Separator)))
	}
}

func TestSaveOpenRemove_Roundtrip(t *testing.T) {
	root := newTestRoot(t)
	const stored = "clientes/abc/contrato.pdf"

	written, err := root.Save(stored, strings.NewReader("conteúdo do contrato"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("conteúdo do contrato")), written)

	file, err := root.Open(stored)
	require.NoError(t, err)
	defer file.Close()

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, "conteúdo do contrato", string(content))

	require.NoError(t, root.Remove(stored))
	_, err = root.Open(stored)
	assert.Error(t, err)

	// Removing an already absent file is fine.
	assert.NoError(t, root.Remove(stored))
}

func TestRemove_RejectsHostilePathBeforeTouchingDisk(t *testing.T) {
	root := newTestRoot(t)

	outside := filepath.Join(filepath.Dir(root.Base()), "fora.txt")
	require.NoError(t, os.WriteFile(outside, []byte("intocado"), 0o640))

	err := root.Remove("../fora.txt")
	assert.ErrorIs(t, err, ErrPathRejected)

	content, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "intocado", string(content))
}

package testsuite

import (
	"errors"
	"path"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/ftpsession"
	"github.com/c2fo/ftpsession/types"
)

// ConformanceOptions toggles checks a transport can not support.
type ConformanceOptions struct {
	// SkipRawCommands skips Execute checks beyond NOOP.
	SkipRawCommands bool
	// SkipChmod skips permission checks.
	SkipChmod bool
}

// RunConformanceTests drives a logged-in connection through every session operation under baseDir, which must
// exist and be writable. The working directory is restored on return.
func RunConformanceTests(t *testing.T, conn *ftpsession.Connection, baseDir string, opts ConformanceOptions) {
	t.Helper()

	pwd, err := conn.Pwd()
	require.NoError(t, err)
	defer func() { assert.NoError(t, conn.Chdir(pwd)) }()

	root := path.Join(baseDir, "ftpsession-"+gofakeit.LetterN(10))
	require.NoError(t, conn.Mkdir(root, false))
	defer cleanup(t, conn, root)

	t.Run("put and get", func(t *testing.T) {
		content := []byte(gofakeit.Sentence(12))
		remote := path.Join(root, "put.txt")

		require.NoError(t, conn.Put(remote, content, false, types.ModeBinary))
		got, err := conn.Get(remote, types.ModeBinary)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		head, err := conn.GetN(remote, types.ModeBinary, 4)
		require.NoError(t, err)
		assert.Equal(t, content[:4], head)

		size, err := conn.Size(remote)
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), size)

		require.NoError(t, conn.Put(remote, []byte("!"), true, types.ModeBinary))
		got, err = conn.Get(remote, types.ModeBinary)
		require.NoError(t, err)
		assert.Equal(t, append(content, '!'), got)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := conn.Get(path.Join(root, "missing.txt"), types.ModeBinary)
		require.Error(t, err)
		var opErr *ftpsession.OperationError
		assert.True(t, errors.As(err, &opErr), "expected an OperationError, got %T", err)
	})

	t.Run("recursive mkdir", func(t *testing.T) {
		before, err := conn.Pwd()
		require.NoError(t, err)

		deep := path.Join(root, "a", "b", "c")
		require.NoError(t, conn.Mkdir(deep, true))

		isDir, err := conn.IsDir(deep)
		require.NoError(t, err)
		assert.True(t, isDir)

		after, err := conn.Pwd()
		require.NoError(t, err)
		assert.Equal(t, before, after, "working directory must be restored")

		// existing segments are skipped
		require.NoError(t, conn.Mkdir(deep, true))
	})

	t.Run("checks", func(t *testing.T) {
		remote := path.Join(root, "check.txt")
		require.NoError(t, conn.Put(remote, []byte("x"), false, types.ModeBinary))

		isFile, err := conn.IsFile(remote)
		require.NoError(t, err)
		assert.True(t, isFile)

		isDir, err := conn.IsDir(remote)
		require.NoError(t, err)
		assert.False(t, isDir)

		exists, err := conn.FileExists(path.Join(root, "nope.txt"))
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = conn.Stat(path.Join(root, "nope.txt"))
		assert.ErrorIs(t, err, ftpsession.ErrNotExist)
	})

	t.Run("listing", func(t *testing.T) {
		dir := path.Join(root, "list")
		require.NoError(t, conn.Mkdir(dir, false))
		require.NoError(t, conn.Put(path.Join(dir, "one.txt"), []byte("1"), false, types.ModeBinary))
		require.NoError(t, conn.Put(path.Join(dir, "two.txt"), []byte("22"), false, types.ModeBinary))
		require.NoError(t, conn.Mkdir(path.Join(dir, "sub"), false))

		names, err := conn.Nlist(dir)
		require.NoError(t, err)
		sort.Strings(names)
		assert.Equal(t, []string{"one.txt", "sub", "two.txt"}, names)

		entries, err := conn.Ls(dir)
		require.NoError(t, err)
		byName := map[string]ftpsession.Entry{}
		for _, e := range entries {
			byName[e.Name] = e
		}
		require.Len(t, byName, 3)
		assert.Equal(t, int64(2), byName["two.txt"].Size)
		sub := byName["sub"]
		assert.True(t, sub.IsDir())
		assert.False(t, byName["one.txt"].ModifyTime.IsZero())
	})

	t.Run("rename and delete", func(t *testing.T) {
		from, to := path.Join(root, "from.txt"), path.Join(root, "to.txt")
		require.NoError(t, conn.Put(from, []byte("moved"), false, types.ModeBinary))
		require.NoError(t, conn.Rename(from, to))

		exists, err := conn.FileExists(from)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, conn.Delete(to))
		exists, err = conn.FileExists(to)
		require.NoError(t, err)
		assert.False(t, exists)

		assert.Error(t, conn.Delete(to))
	})

	t.Run("chdir and cdup", func(t *testing.T) {
		start, err := conn.Pwd()
		require.NoError(t, err)
		defer func() { require.NoError(t, conn.Chdir(start)) }()

		require.NoError(t, conn.Chdir(root))
		require.NoError(t, conn.Mkdir("child", false))
		require.NoError(t, conn.Chdir("child"))
		require.NoError(t, conn.Cdup())
		dir, err := conn.Pwd()
		require.NoError(t, err)
		assert.Equal(t, root, dir)
		require.NoError(t, conn.Rmdir("child"))
	})

	t.Run("execute", func(t *testing.T) {
		cmd, err := conn.Execute("NOOP")
		require.NoError(t, err)
		assert.False(t, cmd.IsError())
		assert.True(t, cmd.HasOutput())

		if opts.SkipRawCommands {
			return
		}
		cmd, err = conn.Execute("XYZZY")
		require.NoError(t, err)
		assert.True(t, cmd.IsError())
		assert.NotEmpty(t, cmd.ErrorMessage())
	})

	t.Run("chmod", func(t *testing.T) {
		if opts.SkipChmod {
			t.Skip("transport does not support chmod")
		}
		remote := path.Join(root, "mode.txt")
		require.NoError(t, conn.Put(remote, []byte("x"), false, types.ModeBinary))
		require.NoError(t, conn.Chmod(remote, 0o600))
		entry, err := conn.Stat(remote)
		require.NoError(t, err)
		if entry.Mode != "" {
			assert.Equal(t, "0600", entry.Mode)
		}
	})
}

// cleanup removes dir depth first.
func cleanup(t *testing.T, conn *ftpsession.Connection, dir string) {
	entries, err := conn.Ls(dir)
	if err != nil {
		t.Logf("cleanup %s: %v", dir, err)
		return
	}
	for _, e := range entries {
		p := path.Join(dir, e.Name)
		if e.IsDir() {
			cleanup(t, conn, p)
			continue
		}
		if err := conn.Delete(p); err != nil {
			t.Logf("cleanup %s: %v", p, err)
		}
	}
	if err := conn.Rmdir(dir); err != nil {
		t.Logf("cleanup %s: %v", dir, err)
	}
}

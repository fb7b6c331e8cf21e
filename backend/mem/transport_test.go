package mem

import (
	"bytes"
	"context"
	"errors"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/types"
)

type transportTestSuite struct {
	suite.Suite
	server *Server
	t      types.Transport
}

func (s *transportTestSuite) SetupTest() {
	s.server = NewServer()
	s.server.AddUser("bob", "secret")
	t, err := s.server.Dial(context.Background(), types.Params{Host: "localhost", Port: 21})
	s.Require().NoError(err)
	s.Require().NoError(t.Login("bob", "secret"))
	s.t = t
}

func (s *transportTestSuite) code(err error) int {
	var tpErr *textproto.Error
	s.Require().True(errors.As(err, &tpErr), "expected a server reply, got %v", err)
	return tpErr.Code
}

func (s *transportTestSuite) TestDial() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.server.Dial(ctx, types.Params{Host: "localhost", Port: 21})
	s.ErrorIs(err, context.Canceled)

	_, err = s.server.Dial(context.Background(), types.Params{})
	s.Error(err)

	s.NotNil(backend.Backend(Scheme), "mem scheme should be registered")
	s.Same(Default(), backend.Backend(Scheme))
}

func (s *transportTestSuite) TestLogin() {
	t, err := s.server.Dial(context.Background(), types.Params{Host: "localhost"})
	s.Require().NoError(err)

	s.Equal(530, s.code(t.MakeDir("/a")), "commands need a login")
	s.Equal(530, s.code(t.Login("bob", "wrong")))
	s.Equal(530, s.code(t.Login("alice", "secret")))
	s.NoError(t.Login("bob", "secret"))

	s.server.AddUser(anonymous, "")
	s.NoError(t.Login(anonymous, "whatever@example.com"))
}

func (s *transportTestSuite) TestQuit() {
	s.NoError(s.t.Quit())
	s.ErrorIs(s.t.Quit(), errClosed)
	s.ErrorIs(s.t.Login("bob", "secret"), errClosed)
	_, err := s.t.RawCommand("NOOP")
	s.ErrorIs(err, errClosed)
	s.ErrorIs(s.t.ChangeDir("/"), errClosed)
}

func (s *transportTestSuite) TestRawCommand() {
	tests := []struct {
		line string
		code int
	}{
		{"NOOP", 200},
		{"noop", 200},
		{"SYST", 215},
		{"HELP", 214},
		{"PWD", 257},
		{"SITE CHMOD 0600 /f.txt", 550},
		{"SITE CHMOD xyz /f.txt", 501},
		{"SITE WHO", 500},
		{"XYZZY", 502},
		{"", 500},
	}
	for _, tt := range tests {
		reply, err := s.t.RawCommand(tt.line)
		s.NoError(err, tt.line)
		s.Equal(tt.code, reply.Code, tt.line)
		s.True(strings.HasPrefix(reply.Lines[len(reply.Lines)-1], "2") == (tt.code < 300), tt.line)
	}

	s.server.WriteFile("/f.txt", []byte("x"))
	reply, err := s.t.RawCommand("SITE CHMOD 0600 /f.txt")
	s.NoError(err)
	s.Equal(200, reply.Code)
	mode, ok := s.server.Mode("/f.txt")
	s.True(ok)
	s.Equal(os.FileMode(0o600), mode)
}

func (s *transportTestSuite) TestStoreRetrieveAppend() {
	s.NoError(s.t.Store("/a.txt", strings.NewReader("hello"), types.ModeBinary))
	s.NoError(s.t.Append("/a.txt", strings.NewReader(" world"), types.ModeASCII))
	s.NoError(s.t.Append("/b.txt", strings.NewReader("new"), types.ModeASCII))

	buf := &bytes.Buffer{}
	s.NoError(s.t.Retrieve("/a.txt", buf, types.ModeBinary))
	s.Equal("hello world", buf.String())

	data, ok := s.server.ReadFile("/b.txt")
	s.True(ok)
	s.Equal("new", string(data))

	s.ErrorIs(s.t.Store("/missing/a.txt", strings.NewReader("x"), types.ModeBinary), os.ErrNotExist)
	s.ErrorIs(s.t.Retrieve("/nope.txt", buf, types.ModeBinary), os.ErrNotExist)

	s.server.MkdirAll("/dir")
	s.Equal(553, s.code(s.t.Store("/dir", strings.NewReader("x"), types.ModeBinary)))
	s.ErrorIs(s.t.Retrieve("/dir", buf, types.ModeBinary), os.ErrNotExist)
}

func (s *transportTestSuite) TestDirectories() {
	s.NoError(s.t.MakeDir("a"))
	s.Equal(550, s.code(s.t.MakeDir("/a")), "already exists")
	s.ErrorIs(s.t.MakeDir("/x/y"), os.ErrNotExist)

	s.NoError(s.t.ChangeDir("a"))
	cwd, err := s.t.CurrentDir()
	s.NoError(err)
	s.Equal("/a", cwd)

	s.NoError(s.t.MakeDir("b"))
	s.True(s.server.Exists("/a/b"))

	s.NoError(s.t.ChangeDirToParent())
	cwd, err = s.t.CurrentDir()
	s.NoError(err)
	s.Equal("/", cwd)

	s.Equal(550, s.code(s.t.RemoveDir("/a")), "not empty")
	s.NoError(s.t.RemoveDir("/a/b"))
	s.NoError(s.t.RemoveDir("/a"))
	s.ErrorIs(s.t.RemoveDir("/a"), os.ErrNotExist)
	s.ErrorIs(s.t.ChangeDir("/a"), os.ErrNotExist)
}

func (s *transportTestSuite) TestDeleteRename() {
	s.server.WriteFile("/d/one.txt", []byte("1"))
	s.server.WriteFile("/d/sub/two.txt", []byte("2"))

	s.Equal(550, s.code(s.t.Delete("/d")), "directories are not files")
	s.NoError(s.t.Rename("/d", "/e"))
	s.False(s.server.Exists("/d/one.txt"))
	s.True(s.server.Exists("/e/one.txt"))
	s.True(s.server.Exists("/e/sub/two.txt"))

	s.Equal(550, s.code(s.t.Rename("/e", "/e/sub/e")), "can not move into itself")
	s.ErrorIs(s.t.Rename("/nope", "/x"), os.ErrNotExist)
	s.ErrorIs(s.t.Rename("/e/one.txt", "/nope/one.txt"), os.ErrNotExist)

	s.NoError(s.t.Delete("/e/one.txt"))
	s.ErrorIs(s.t.Delete("/e/one.txt"), os.ErrNotExist)
}

func (s *transportTestSuite) TestChmod() {
	s.server.WriteFile("/f.txt", []byte("x"))
	s.NoError(s.t.Chmod("/f.txt", 0o640))
	mode, _ := s.server.Mode("/f.txt")
	s.Equal(os.FileMode(0o640), mode)
	s.ErrorIs(s.t.Chmod("/g.txt", 0o640), os.ErrNotExist)
}

func (s *transportTestSuite) TestFileSize() {
	s.server.WriteFile("/f.txt", []byte("12345"))
	size, err := s.t.FileSize("/f.txt")
	s.NoError(err)
	s.Equal(int64(5), size)

	size, err = s.t.FileSize("/")
	s.NoError(err)
	s.Equal(int64(-1), size, "directories have no size")

	_, err = s.t.FileSize("/g.txt")
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *transportTestSuite) TestListings() {
	s.server.WriteFile("/d/one.txt", []byte("1"))
	s.server.WriteFile("/d/two.txt", []byte("22"))
	s.server.MkdirAll("/d/sub")

	names, err := s.t.NameList("/d")
	s.NoError(err)
	s.Equal([]string{"/d/one.txt", "/d/sub", "/d/two.txt"}, names)

	s.NoError(s.t.ChangeDir("/d"))
	names, err = s.t.NameList("")
	s.NoError(err)
	s.Equal([]string{"one.txt", "sub", "two.txt"}, names)

	entries, err := s.t.List("/d")
	s.NoError(err)
	s.Len(entries, 4)
	s.Equal(".", entries[0].Name)
	s.Equal("cdir", entries[0].Facts["type"])
	s.Equal("one.txt", entries[1].Name)
	s.Equal("file", entries[1].Facts["type"])
	s.Equal("1", entries[1].Facts["size"])
	s.Equal("dir", entries[2].Facts["type"])
	s.Equal("4096", entries[2].Facts["sizd"])
	s.Equal("0644", entries[3].Facts["unix.mode"])

	_, err = s.t.NameList("/d/one.txt")
	s.ErrorIs(err, os.ErrNotExist)
	_, err = s.t.List("/none")
	s.ErrorIs(err, os.ErrNotExist)

	entry, err := s.t.GetEntry("two.txt")
	s.NoError(err)
	s.Equal("/d/two.txt", entry.Name)
	s.Len(entry.Facts["modify"], len(modifyLayout))

	entry, err = s.t.GetEntry("/")
	s.NoError(err)
	s.Equal("dir", entry.Facts["type"])

	_, err = s.t.GetEntry("/none")
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *transportTestSuite) TestSharedTree() {
	other, err := s.server.Dial(context.Background(), types.Params{Host: "localhost"})
	s.Require().NoError(err)
	s.Require().NoError(other.Login("bob", "secret"))

	s.NoError(s.t.Store("/shared.txt", strings.NewReader("x"), types.ModeBinary))
	_, err = other.GetEntry("/shared.txt")
	s.NoError(err)

	s.NoError(other.ChangeDir("/"))
	s.NoError(s.t.MakeDir("/only"))
	s.NoError(s.t.ChangeDir("/only"))
	cwd, _ := other.CurrentDir()
	s.Equal("/", cwd, "working directories are per session")
}

func TestTransport(t *testing.T) {
	suite.Run(t, new(transportTestSuite))
}

package mem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/types"
)

const modifyLayout = "20060102150405"

var errClosed = errors.New("mem: connection closed")

type transport struct {
	server   *Server
	cwd      string
	user     string
	loggedIn bool
	passive  bool
	closed   bool
}

func reply(code int, msg string) *textproto.Error {
	return &textproto.Error{Code: code, Msg: msg}
}

func notExist(op, p string) error {
	return backend.NotExistError(op, p, reply(550, p+": No such file or directory"))
}

func (t *transport) resolve(p string) string {
	if p == "" || p == "." {
		return t.cwd
	}
	if !path.IsAbs(p) {
		p = path.Join(t.cwd, p)
	}
	return path.Clean(p)
}

// ready checks the session state and takes the server lock. Callers must unlock on success.
func (t *transport) ready() error {
	if t.closed {
		return errClosed
	}
	if !t.loggedIn {
		return reply(530, "Please login with USER and PASS.")
	}
	t.server.mu.Lock()
	return nil
}

func (t *transport) Login(user, password string) error {
	if t.closed {
		return errClosed
	}
	if !t.server.login(user, password) {
		return reply(530, "Login incorrect.")
	}
	t.user = user
	t.loggedIn = true
	return nil
}

func (t *transport) SetPassive(passive bool) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()
	t.passive = passive
	return nil
}

func (t *transport) RawCommand(line string) (*types.Reply, error) {
	if t.closed {
		return nil, errClosed
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &types.Reply{Code: 500, Lines: []string{"500 Syntax error, command unrecognized."}}, nil
	}

	respond := func(code int, msg string) (*types.Reply, error) {
		return &types.Reply{Code: code, Lines: []string{strconv.Itoa(code) + " " + msg}}, nil
	}

	verb := strings.ToUpper(fields[0])
	switch verb {
	case "NOOP":
		return respond(200, "NOOP ok.")
	case "SYST":
		return respond(215, "UNIX Type: L8")
	case "HELP":
		return &types.Reply{Code: 214, Lines: []string{
			"214-The following commands are recognized.",
			" NOOP SYST PWD HELP SITE",
			"214 Help OK.",
		}}, nil
	}

	if !t.loggedIn {
		return respond(530, "Please login with USER and PASS.")
	}

	switch verb {
	case "PWD":
		return respond(257, strconv.Quote(t.cwd)+" is the current directory")
	case "SITE":
		if len(fields) == 4 && strings.EqualFold(fields[1], "CHMOD") {
			mode, err := strconv.ParseUint(fields[2], 8, 32)
			if err != nil {
				return respond(501, "SITE CHMOD command failed.")
			}
			if err := t.Chmod(fields[3], os.FileMode(mode)); err != nil {
				return respond(550, "SITE CHMOD command failed.")
			}
			return respond(200, "SITE CHMOD command ok.")
		}
		return respond(500, "Unknown SITE command.")
	}
	return respond(502, "Command not implemented.")
}

func (t *transport) Quit() error {
	if t.closed {
		return errClosed
	}
	t.closed = true
	t.loggedIn = false
	return nil
}

func (t *transport) Store(p string, r io.Reader, _ types.TransferMode) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return t.write(p, data, false)
}

func (t *transport) Append(p string, r io.Reader, _ types.TransferMode) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return t.write(p, data, true)
}

func (t *transport) write(p string, data []byte, appendData bool) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	parent, ok := t.server.nodes[path.Dir(abs)]
	if !ok || !parent.dir {
		return notExist("store", p)
	}
	existing, ok := t.server.nodes[abs]
	if ok && existing.dir {
		return reply(553, "Could not create file.")
	}
	if ok && appendData {
		existing.data = append(existing.data, data...)
		existing.modTime = t.server.now()
		return nil
	}
	t.server.nodes[abs] = &node{data: data, mode: 0o644, modTime: t.server.now()}
	return nil
}

func (t *transport) Retrieve(p string, w io.Writer, _ types.TransferMode) error {
	if err := t.ready(); err != nil {
		return err
	}
	n, ok := t.server.nodes[t.resolve(p)]
	if !ok || n.dir {
		t.server.mu.Unlock()
		return notExist("retrieve", p)
	}
	data := append([]byte(nil), n.data...)
	t.server.mu.Unlock()

	_, err := io.Copy(w, bytes.NewReader(data))
	return err
}

func (t *transport) MakeDir(p string) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	if _, ok := t.server.nodes[abs]; ok {
		return reply(550, "Create directory operation failed.")
	}
	parent, ok := t.server.nodes[path.Dir(abs)]
	if !ok || !parent.dir {
		return notExist("mkdir", p)
	}
	t.server.nodes[abs] = &node{dir: true, mode: os.ModeDir | 0o755, modTime: t.server.now()}
	return nil
}

func (t *transport) RemoveDir(p string) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok || !n.dir {
		return notExist("rmdir", p)
	}
	if abs == "/" || len(t.server.children(abs)) > 0 {
		return reply(550, "Remove directory operation failed.")
	}
	delete(t.server.nodes, abs)
	return nil
}

func (t *transport) Delete(p string) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok {
		return notExist("delete", p)
	}
	if n.dir {
		return reply(550, "Delete operation failed.")
	}
	delete(t.server.nodes, abs)
	return nil
}

func (t *transport) Rename(from, to string) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	src, dst := t.resolve(from), t.resolve(to)
	if _, ok := t.server.nodes[src]; !ok || src == "/" {
		return notExist("rename", from)
	}
	parent, ok := t.server.nodes[path.Dir(dst)]
	if !ok || !parent.dir {
		return notExist("rename", to)
	}
	if src == dst {
		return nil
	}
	if strings.HasPrefix(dst, src+"/") {
		return reply(550, "Rename failed.")
	}
	for p, n := range t.server.nodes {
		switch {
		case p == src:
			delete(t.server.nodes, p)
			t.server.nodes[dst] = n
		case strings.HasPrefix(p, src+"/"):
			delete(t.server.nodes, p)
			t.server.nodes[dst+strings.TrimPrefix(p, src)] = n
		}
	}
	return nil
}

func (t *transport) ChangeDir(p string) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok || !n.dir {
		return notExist("chdir", p)
	}
	t.cwd = abs
	return nil
}

func (t *transport) ChangeDirToParent() error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()
	t.cwd = path.Dir(t.cwd)
	return nil
}

func (t *transport) Chmod(p string, perm os.FileMode) error {
	if err := t.ready(); err != nil {
		return err
	}
	defer t.server.mu.Unlock()

	n, ok := t.server.nodes[t.resolve(p)]
	if !ok {
		return notExist("chmod", p)
	}
	n.mode = n.mode&os.ModeType | perm.Perm()
	return nil
}

// FileSize reports -1 for directories, like servers that refuse SIZE on them.
func (t *transport) FileSize(p string) (int64, error) {
	if err := t.ready(); err != nil {
		return 0, err
	}
	defer t.server.mu.Unlock()

	n, ok := t.server.nodes[t.resolve(p)]
	if !ok {
		return 0, notExist("size", p)
	}
	if n.dir {
		return -1, nil
	}
	return int64(len(n.data)), nil
}

func (t *transport) CurrentDir() (string, error) {
	if err := t.ready(); err != nil {
		return "", err
	}
	defer t.server.mu.Unlock()
	return t.cwd, nil
}

// NameList prefixes each name with p, as servers do for NLST with an argument.
func (t *transport) NameList(p string) ([]string, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok || !n.dir {
		return nil, notExist("nlist", p)
	}
	names := t.server.children(abs)
	if p == "" || p == "." {
		return names, nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, strings.TrimSuffix(p, "/")+"/"+name)
	}
	return out, nil
}

func (t *transport) List(p string) ([]*types.Entry, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok || !n.dir {
		return nil, notExist("list", p)
	}

	cdir := entry(".", n)
	cdir.Facts["type"] = "cdir"
	entries := []*types.Entry{cdir}
	for _, name := range t.server.children(abs) {
		entries = append(entries, entry(name, t.server.nodes[path.Join(abs, name)]))
	}
	return entries, nil
}

func (t *transport) GetEntry(p string) (*types.Entry, error) {
	if err := t.ready(); err != nil {
		return nil, err
	}
	defer t.server.mu.Unlock()

	abs := t.resolve(p)
	n, ok := t.server.nodes[abs]
	if !ok {
		return nil, notExist("stat", p)
	}
	return entry(abs, n), nil
}

func entry(name string, n *node) *types.Entry {
	facts := map[string]string{
		"modify":    n.modTime.UTC().Format(modifyLayout),
		"unix.mode": fmt.Sprintf("%04o", n.mode.Perm()),
	}
	if n.dir {
		facts["type"] = "dir"
		facts["sizd"] = "4096"
	} else {
		facts["type"] = "file"
		facts["size"] = strconv.Itoa(len(n.data))
	}
	return &types.Entry{Name: name, Facts: facts}
}

var _ types.Transport = (*transport)(nil)
var _ types.Dialer = (*Server)(nil)

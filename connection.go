package ftpsession

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/types"
	"github.com/c2fo/ftpsession/utils"
)

// SizeUnknown is the value a Transport reports from FileSize when the server can not size the file.
const SizeUnknown int64 = -1

const (
	stagePrefix  = "ftpsession-"
	modifyLayout = "20060102150405"
)

// Entry is a normalized MLSD/MLST directory entry.
type Entry struct {
	Name       string
	ModifyTime time.Time
	Size       int64
	Mode       string
	Type       string
}

// IsDir reports whether the entry describes a directory, including the "cdir" and "pdir" pseudo entries.
func (e *Entry) IsDir() bool {
	switch e.Type {
	case "dir", "cdir", "pdir":
		return true
	}
	return false
}

// IsFile reports whether the entry describes a regular file.
func (e *Entry) IsFile() bool {
	return e.Type == "file"
}

// Connection is a live session to one FTP server. It owns the transport handle until Close is called.
//
// A Connection is not safe for concurrent use.
type Connection struct {
	id             string
	host           string
	port           int
	isSSL          bool
	timeout        time.Duration
	isPassive      bool
	authentication Authenticator

	handle types.Transport
	// reopen is set on a restored connection whose handle has not been opened yet
	reopen bool
	// relogin holds the restored identity until the reopened handle logs in with it
	relogin Authenticator
	dialer  types.Dialer

	logger     logr.Logger
	fs         afero.Fs
	stagingDir string
	lastErr    error
}

// NewConnection wraps an already open transport handle. passive is re-applied on every Login.
func NewConnection(p types.Params, handle types.Transport, passive bool) (*Connection, error) {
	if handle == nil {
		return nil, &PreconditionError{Op: "connection", Err: ErrClosed}
	}
	c := &Connection{
		id:        uuid.NewString(),
		host:      p.Host,
		port:      p.Port,
		isSSL:     p.SSL,
		timeout:   p.Timeout,
		isPassive: passive,
		handle:    handle,
		fs:        afero.NewOsFs(),
	}
	c.SetLogger(logr.Discard())
	return c, nil
}

// ID returns a random identifier used to correlate log lines.
func (c *Connection) ID() string { return c.id }

// Host returns the server host name.
func (c *Connection) Host() string { return c.host }

// Port returns the server port.
func (c *Connection) Port() int { return c.port }

// IsSSL reports whether the control channel is TLS protected.
func (c *Connection) IsSSL() bool { return c.isSSL }

// Timeout returns the network timeout.
func (c *Connection) Timeout() time.Duration { return c.timeout }

// IsPassive reports whether passive mode was requested.
func (c *Connection) IsPassive() bool { return c.isPassive }

// Authentication returns the identity resolved by Login, or nil.
func (c *Connection) Authentication() Authenticator { return c.authentication }

// LastError returns the message of the last transport failure seen on this connection, or "".
func (c *Connection) LastError() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Error()
}

// SetLogger replaces the connection logger.
func (c *Connection) SetLogger(l logr.Logger) {
	c.logger = l.WithName("ftpsession").WithValues("connection", c.id, "host", c.host)
}

// SetDialer sets the dialer used to reopen a restored connection. Without one, the dialer registered for the
// "ftp" scheme is used.
func (c *Connection) SetDialer(d types.Dialer) { c.dialer = d }

// SetFs sets the filesystem used for staging files and local paths.
func (c *Connection) SetFs(fs afero.Fs) { c.fs = fs }

// String returns the connection URI. The password is never included.
func (c *Connection) String() string {
	scheme := "ftp"
	if c.isSSL {
		scheme = "ftps"
	}
	username := ""
	if c.authentication != nil {
		username = c.authentication.Username()
	}
	return utils.EncodeURI(scheme, username, c.host+":"+strconv.Itoa(c.port), "")
}

func (c *Connection) params() types.Params {
	return types.Params{
		Host:    c.host,
		Port:    c.port,
		SSL:     c.isSSL,
		Timeout: c.timeout,
	}
}

func (c *Connection) record(err error) {
	c.lastErr = err
}

func (c *Connection) fail(op string, err error) error {
	c.record(err)
	c.logger.V(1).Info("operation failed", "op", op, "error", err.Error())
	return &OperationError{Op: op, Conn: c, Err: err}
}

// Transport returns the live transport handle. A restored connection opens a new handle on first use and logs in
// again with its stored identity. After Close it fails with ErrClosed.
func (c *Connection) Transport() (types.Transport, error) {
	if c.handle != nil {
		return c.handle, nil
	}
	if !c.reopen {
		return nil, &PreconditionError{Op: "transport", Err: ErrClosed}
	}

	dialer := c.dialer
	if dialer == nil {
		dialer = backend.Backend(defaultScheme)
	}
	if dialer == nil {
		return nil, &PreconditionError{Op: "transport", Err: ErrNoTransport}
	}

	p := c.params()
	handle, err := dialer.Dial(context.Background(), p)
	if err != nil {
		c.record(err)
		return nil, &ConnectionError{Params: p, Err: err}
	}
	c.handle = handle
	c.reopen = false
	c.logger.V(1).Info("reopened connection")

	if auth := c.relogin; auth != nil {
		c.authentication = nil
		if err := c.Login(auth); err != nil {
			c.abandon(handle)
			c.relogin = auth
			return nil, err
		}
		c.relogin = nil
	}
	return c.handle, nil
}

// loggedIn reports whether the connection has an identity, or has one waiting to be restored on reopen.
func (c *Connection) loggedIn() bool {
	return c.authentication != nil || c.relogin != nil
}

// abandon drops a reopened handle whose login failed so the next call dials again.
func (c *Connection) abandon(handle types.Transport) {
	if err := handle.Quit(); err != nil {
		c.logger.V(1).Info("quit after failed login", "error", err.Error())
	}
	c.handle = nil
	c.authentication = nil
	c.reopen = true
}

// Close sends QUIT and releases the handle. Calling Close again is a no-op.
func (c *Connection) Close() error {
	c.reopen = false
	c.relogin = nil
	if c.handle == nil {
		return nil
	}
	t := c.handle
	c.handle = nil
	c.logger.V(1).Info("close")
	if err := t.Quit(); err != nil {
		return c.fail("quit", err)
	}
	return nil
}

// Login authenticates the connection. If passive mode was requested at construction it is asserted again.
func (c *Connection) Login(auth Authenticator) error {
	if auth == nil {
		return &PreconditionError{Op: "login", Err: ErrNoAuthenticator}
	}
	c.relogin = nil
	c.logger.V(1).Info("login", "username", auth.Username())
	resolved, err := auth.Authenticate(c)
	if err != nil {
		return err
	}
	c.authentication = resolved
	if c.isPassive {
		return c.SetPassive(true)
	}
	return nil
}

// SetPassive switches passive mode. It must be called after Login.
func (c *Connection) SetPassive(passive bool) error {
	if !c.loggedIn() {
		return &PreconditionError{Op: "pasv", Err: ErrPassiveBeforeLogin}
	}
	t, err := c.Transport()
	if err != nil {
		return err
	}
	if err := t.SetPassive(passive); err != nil {
		return c.fail("pasv", err)
	}
	c.isPassive = passive
	return nil
}

// Execute sends a raw command built from argv, escaping each argument. A rejected command is not an error: it is
// reported through Command.IsError.
func (c *Connection) Execute(argv ...string) (*Command, error) {
	if len(argv) == 0 {
		return nil, &PreconditionError{Op: "quote", Err: errors.New("empty command")}
	}
	t, err := c.Transport()
	if err != nil {
		return nil, err
	}
	line := commandLine(argv)
	c.logger.V(1).Info("quote", "command", argv[0])

	reply, err := t.RawCommand(line)
	if err != nil {
		return nil, c.fail("quote", err)
	}
	text := strings.Join(reply.Lines, "\n")
	if reply.Rejected() {
		c.record(errors.New(text))
		return NewCommand(c, "", true, ""), nil
	}
	return NewCommand(c, text, false, ""), nil
}

// Put stores data at remote, or appends it when appendData is set.
func (c *Connection) Put(remote string, data []byte, appendData bool, mode types.TransferMode) error {
	const op = "put"
	if _, err := c.Transport(); err != nil {
		return err
	}
	c.logger.V(1).Info(op, "path", remote, "bytes", len(data), "append", appendData)

	stage, err := afero.TempFile(c.fs, c.stagingDir, stagePrefix+op+"-*")
	if err != nil {
		return c.fail(op, utils.WrapStageError(err))
	}
	name := stage.Name()
	defer func() { _ = c.fs.Remove(name) }()

	if _, err := stage.Write(data); err != nil {
		_ = stage.Close()
		return c.fail(op, utils.WrapWriteError(err))
	}
	if err := stage.Close(); err != nil {
		return c.fail(op, utils.WrapCloseError(err))
	}

	if appendData {
		return c.Append(remote, name, mode)
	}
	return c.store(op, remote, name, mode)
}

// Get returns the whole content of remote.
func (c *Connection) Get(remote string, mode types.TransferMode) ([]byte, error) {
	return c.get(remote, mode, -1)
}

// GetN returns at most n bytes of remote.
func (c *Connection) GetN(remote string, mode types.TransferMode, n int64) ([]byte, error) {
	if n < 0 {
		return nil, &PreconditionError{Op: "get", Err: errors.New("byte limit must not be negative")}
	}
	return c.get(remote, mode, n)
}

func (c *Connection) get(remote string, mode types.TransferMode, limit int64) ([]byte, error) {
	const op = "get"
	t, err := c.Transport()
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info(op, "path", remote)

	stage, err := afero.TempFile(c.fs, c.stagingDir, stagePrefix+op+"-*")
	if err != nil {
		return nil, c.fail(op, utils.WrapStageError(err))
	}
	defer func() {
		_ = stage.Close()
		_ = c.fs.Remove(stage.Name())
	}()

	if err := t.Retrieve(remote, stage, mode); err != nil {
		return nil, c.fail(op, err)
	}
	if _, err := stage.Seek(0, io.SeekStart); err != nil {
		return nil, c.fail(op, utils.WrapStageError(err))
	}

	var r io.Reader = stage
	if limit >= 0 {
		r = io.LimitReader(stage, limit)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, c.fail(op, utils.WrapReadError(err))
	}
	return data, nil
}

// Upload stores the local file at remote in binary mode.
func (c *Connection) Upload(local, remote string) error {
	if _, err := c.Transport(); err != nil {
		return err
	}
	c.logger.V(1).Info("upload", "local", local, "path", remote)
	return c.store("upload", remote, local, types.ModeBinary)
}

func (c *Connection) store(op, remote, local string, mode types.TransferMode) error {
	t, err := c.Transport()
	if err != nil {
		return err
	}
	f, err := c.fs.Open(local)
	if err != nil {
		return c.fail(op, utils.WrapOpenError(err))
	}
	defer func() { _ = f.Close() }()

	if err := t.Store(remote, f, mode); err != nil {
		return c.fail(op, err)
	}
	return nil
}

// Download writes remote to the local file, creating or truncating it.
func (c *Connection) Download(remote, local string) error {
	const op = "download"
	t, err := c.Transport()
	if err != nil {
		return err
	}
	c.logger.V(1).Info(op, "path", remote, "local", local)

	f, err := c.fs.Create(local)
	if err != nil {
		return c.fail(op, utils.WrapOpenError(err))
	}
	if err := t.Retrieve(remote, f, types.ModeBinary); err != nil {
		_ = f.Close()
		return c.fail(op, err)
	}
	if err := f.Close(); err != nil {
		return c.fail(op, utils.WrapCloseError(err))
	}
	return nil
}

// Append appends the local file to remote.
func (c *Connection) Append(remote, local string, mode types.TransferMode) error {
	const op = "append"
	t, err := c.Transport()
	if err != nil {
		return err
	}
	c.logger.V(1).Info(op, "path", remote, "local", local)

	f, err := c.fs.Open(local)
	if err != nil {
		return c.fail(op, utils.WrapOpenError(err))
	}
	defer func() { _ = f.Close() }()

	if err := t.Append(remote, f, mode); err != nil {
		return c.fail(op, err)
	}
	return nil
}

// Mkdir creates dir. With recursive set every missing segment is created in turn; the working directory is
// restored afterwards whether or not creation succeeded.
func (c *Connection) Mkdir(dir string, recursive bool) (err error) {
	if !recursive {
		return c.mkdir(dir)
	}

	pwd, err := c.Pwd()
	if err != nil {
		return err
	}
	defer func() {
		if cdErr := c.Chdir(pwd); cdErr != nil && err == nil {
			err = cdErr
		}
	}()

	if strings.HasPrefix(dir, "/") {
		if err := c.Chdir("/"); err != nil {
			return err
		}
	}
	for _, segment := range utils.PathSegments(dir) {
		exists, err := c.IsDir(segment)
		if err != nil {
			return err
		}
		if !exists {
			if err := c.mkdir(segment); err != nil {
				return err
			}
		}
		if err := c.Chdir(segment); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connection) mkdir(dir string) error {
	const op = "mkdir"
	t, err := c.Transport()
	if err != nil {
		return err
	}
	c.logger.V(1).Info(op, "path", dir)
	if err := t.MakeDir(dir); err != nil {
		return c.fail(op, err)
	}
	return nil
}

// Rmdir removes an empty directory.
func (c *Connection) Rmdir(dir string) error {
	return c.do("rmdir", dir, func(t types.Transport) error { return t.RemoveDir(dir) })
}

// Delete removes a file.
func (c *Connection) Delete(p string) error {
	return c.do("delete", p, func(t types.Transport) error { return t.Delete(p) })
}

// Rename moves from to to.
func (c *Connection) Rename(from, to string) error {
	return c.do("rename", from, func(t types.Transport) error { return t.Rename(from, to) })
}

// Chdir changes the working directory.
func (c *Connection) Chdir(dir string) error {
	return c.do("chdir", dir, func(t types.Transport) error { return t.ChangeDir(dir) })
}

// Cdup changes to the parent directory.
func (c *Connection) Cdup() error {
	return c.do("cdup", "..", func(t types.Transport) error { return t.ChangeDirToParent() })
}

// Chmod sets the permission bits of filename.
func (c *Connection) Chmod(filename string, perm os.FileMode) error {
	return c.do("chmod", filename, func(t types.Transport) error { return t.Chmod(filename, perm) })
}

func (c *Connection) do(op, p string, fn func(t types.Transport) error) error {
	t, err := c.Transport()
	if err != nil {
		return err
	}
	c.logger.V(1).Info(op, "path", p)
	if err := fn(t); err != nil {
		return c.fail(op, err)
	}
	return nil
}

// Pwd returns the working directory.
func (c *Connection) Pwd() (string, error) {
	t, err := c.Transport()
	if err != nil {
		return "", err
	}
	dir, err := t.CurrentDir()
	if err != nil {
		return "", c.fail("pwd", err)
	}
	return dir, nil
}

// Size returns the size of filename in bytes.
func (c *Connection) Size(filename string) (int64, error) {
	const op = "size"
	t, err := c.Transport()
	if err != nil {
		return 0, err
	}
	size, err := t.FileSize(filename)
	if err != nil {
		return 0, c.fail(op, err)
	}
	if size < 0 {
		return 0, c.fail(op, ErrUnknownSize)
	}
	return size, nil
}

// Nlist returns the bare names in dir, without "." and "..".
func (c *Connection) Nlist(dir string) ([]string, error) {
	t, err := c.Transport()
	if err != nil {
		return nil, err
	}
	names, err := t.NameList(dir)
	if err != nil {
		return nil, c.fail("nlist", err)
	}

	prefix := ""
	if dir != "" {
		prefix = utils.EnsureTrailingSlash(dir)
	}
	return lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.TrimPrefix(name, prefix)
		return name, name != "." && name != ".."
	}), nil
}

// Ls returns the MLSD entries of dir, without "." and "..".
func (c *Connection) Ls(dir string) ([]Entry, error) {
	t, err := c.Transport()
	if err != nil {
		return nil, err
	}
	raw, err := t.List(dir)
	if err != nil {
		return nil, c.fail("ls", err)
	}
	return lo.FilterMap(raw, func(e *types.Entry, _ int) (Entry, bool) {
		entry := newEntry(e)
		if entry.Type == "cdir" || entry.Type == "pdir" {
			return entry, false
		}
		return entry, entry.Name != "." && entry.Name != ".."
	}), nil
}

// Stat returns the entry for p. A missing path yields an error matching ErrNotExist.
func (c *Connection) Stat(p string) (*Entry, error) {
	const op = "stat"
	if !c.loggedIn() {
		return nil, &PreconditionError{Op: op, Err: ErrNotLoggedIn}
	}
	t, err := c.Transport()
	if err != nil {
		return nil, err
	}
	raw, err := t.GetEntry(p)
	if err != nil {
		return nil, c.fail(op, err)
	}
	entry := newEntry(raw)
	return &entry, nil
}

// IsDir reports whether p is an existing directory.
func (c *Connection) IsDir(p string) (bool, error) {
	return c.entryMatches(p, (*Entry).IsDir)
}

// IsFile reports whether p is an existing regular file.
func (c *Connection) IsFile(p string) (bool, error) {
	return c.entryMatches(p, (*Entry).IsFile)
}

// FileExists reports whether anything exists at p.
func (c *Connection) FileExists(p string) (bool, error) {
	return c.entryMatches(p, func(*Entry) bool { return true })
}

func (c *Connection) entryMatches(p string, match func(*Entry) bool) (bool, error) {
	entry, err := c.Stat(p)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return match(entry), nil
}

func newEntry(e *types.Entry) Entry {
	entry := Entry{
		Name: path.Base(e.Name),
		Type: strings.ToLower(e.Facts["type"]),
		Mode: e.Facts["unix.mode"],
		Size: -1,
	}
	if e.Name == "" {
		entry.Name = ""
	}

	size, ok := e.Facts["size"]
	if !ok {
		size, ok = e.Facts["sizd"]
	}
	if ok {
		if n, err := strconv.ParseInt(size, 10, 64); err == nil {
			entry.Size = n
		}
	}

	if modify, ok := e.Facts["modify"]; ok {
		if t, err := time.ParseInLocation(modifyLayout, modify, time.UTC); err == nil {
			entry.ModifyTime = t
		}
	}
	return entry
}

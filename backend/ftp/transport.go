package ftp

import (
	"context"
	"io"
	"net"
	"os"
	"path"
	"strconv"

	_ftp "github.com/jlaffaye/ftp"
	"golang.org/x/time/rate"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/types"
)

// Scheme defines the transport type.
const Scheme = "ftp"

const modifyLayout = "20060102150405"

// Client is the part of *_ftp.ServerConn the transport drives. It is an interface to make it easier to test.
type Client interface {
	Login(user string, password string) error
	Quit() error
	NoOp() error
	Type(transferType _ftp.TransferType) error
	Stor(path string, r io.Reader) error
	Append(path string, r io.Reader) error
	Retr(path string) (*_ftp.Response, error)
	MakeDir(path string) error
	RemoveDir(path string) error
	Delete(path string) error
	Rename(from, to string) error
	ChangeDir(path string) error
	ChangeDirToParent() error
	FileSize(path string) (int64, error)
	CurrentDir() (string, error)
	NameList(path string) ([]string, error)
	List(path string) ([]*_ftp.Entry, error)
	GetEntry(path string) (*_ftp.Entry, error)
	IsTimePreciseInList() bool
}

// Dialer opens ftp transports over github.com/jlaffaye/ftp.
type Dialer struct {
	opts Options
	dial func(addr string, options ..._ftp.DialOption) (Client, error)
}

// NewDialer returns a Dialer using opts.
func NewDialer(opts Options) *Dialer {
	return &Dialer{
		opts: opts,
		dial: func(addr string, options ..._ftp.DialOption) (Client, error) {
			return _ftp.Dial(addr, options...)
		},
	}
}

// Options returns the dialer options.
func (d *Dialer) Options() Options {
	return d.opts
}

// Dial connects to p.Host:p.Port. The returned transport is not logged in.
func (d *Dialer) Dial(ctx context.Context, p types.Params) (types.Transport, error) {
	addr := net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	c, err := d.dial(addr, fetchDialOptions(ctx, p, d.opts)...)
	if err != nil {
		return nil, err
	}
	return NewTransport(c, d.opts), nil
}

// Transport adapts a Client to types.Transport.
type Transport struct {
	client  Client
	limiter *rate.Limiter
	ctx     context.Context
}

// NewTransport wraps an open client.
func NewTransport(c Client, opts Options) *Transport {
	return &Transport{
		client:  c,
		limiter: newLimiter(opts.BandwidthLimit),
		ctx:     context.Background(),
	}
}

func (t *Transport) Login(user, password string) error {
	return t.client.Login(user, password)
}

// SetPassive accepts passive mode only; the client always uses EPSV or PASV.
func (t *Transport) SetPassive(passive bool) error {
	if !passive {
		return errActiveUnsupported
	}
	return nil
}

// RawCommand supports NOOP only. The client exposes no way to send arbitrary verbs.
func (t *Transport) RawCommand(line string) (*types.Reply, error) {
	if line != "NOOP" {
		return nil, errRawUnsupported
	}
	if err := t.client.NoOp(); err != nil {
		return nil, err
	}
	return &types.Reply{Code: _ftp.StatusCommandOK, Lines: []string{"200 NOOP ok."}}, nil
}

func (t *Transport) Quit() error {
	return t.client.Quit()
}

func (t *Transport) setType(mode types.TransferMode) error {
	transferType := _ftp.TransferTypeBinary
	if mode == types.ModeASCII {
		transferType = _ftp.TransferTypeASCII
	}
	return t.client.Type(transferType)
}

func (t *Transport) Store(p string, r io.Reader, mode types.TransferMode) error {
	if err := t.setType(mode); err != nil {
		return err
	}
	return translate("store", p, t.client.Stor(p, limitReader(t.ctx, r, t.limiter)))
}

func (t *Transport) Append(p string, r io.Reader, mode types.TransferMode) error {
	if err := t.setType(mode); err != nil {
		return err
	}
	return translate("append", p, t.client.Append(p, limitReader(t.ctx, r, t.limiter)))
}

func (t *Transport) Retrieve(p string, w io.Writer, mode types.TransferMode) (err error) {
	if err := t.setType(mode); err != nil {
		return err
	}
	resp, err := t.client.Retr(p)
	if err != nil {
		return translate("retrieve", p, err)
	}
	defer func() {
		if cerr := resp.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(limitWriter(t.ctx, w, t.limiter), resp)
	return err
}

func (t *Transport) MakeDir(p string) error {
	return translate("mkdir", p, t.client.MakeDir(p))
}

func (t *Transport) RemoveDir(p string) error {
	return translate("rmdir", p, t.client.RemoveDir(p))
}

func (t *Transport) Delete(p string) error {
	return translate("delete", p, t.client.Delete(p))
}

func (t *Transport) Rename(from, to string) error {
	return translate("rename", from, t.client.Rename(from, to))
}

func (t *Transport) ChangeDir(p string) error {
	return translate("chdir", p, t.client.ChangeDir(p))
}

func (t *Transport) ChangeDirToParent() error {
	return translate("cdup", "..", t.client.ChangeDirToParent())
}

func (t *Transport) Chmod(string, os.FileMode) error {
	return errChmodUnsupported
}

func (t *Transport) FileSize(p string) (int64, error) {
	size, err := t.client.FileSize(p)
	if err != nil {
		return 0, translate("size", p, err)
	}
	return size, nil
}

func (t *Transport) CurrentDir() (string, error) {
	dir, err := t.client.CurrentDir()
	if err != nil {
		return "", translate("pwd", ".", err)
	}
	return dir, nil
}

func (t *Transport) NameList(p string) ([]string, error) {
	names, err := t.client.NameList(p)
	if err != nil {
		return nil, translate("nlist", p, err)
	}
	return names, nil
}

func (t *Transport) List(p string) ([]*types.Entry, error) {
	entries, err := t.client.List(p)
	if err != nil {
		return nil, translate("list", p, err)
	}
	out := make([]*types.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	return out, nil
}

// GetEntry uses MLST when the server supports MLSD. Otherwise it lists the parent directory and picks p out of it.
func (t *Transport) GetEntry(p string) (*types.Entry, error) {
	if !t.client.IsTimePreciseInList() {
		return t.listEntry(p)
	}
	e, err := t.client.GetEntry(p)
	if err != nil {
		return nil, translate("stat", p, err)
	}
	return toEntry(e), nil
}

func (t *Transport) listEntry(p string) (*types.Entry, error) {
	clean := path.Clean(p)
	if clean == "/" || clean == "." {
		return toEntry(&_ftp.Entry{Name: clean, Type: _ftp.EntryTypeFolder}), nil
	}

	entries, err := t.client.List(path.Dir(clean))
	if err != nil {
		return nil, translate("stat", p, err)
	}
	name := path.Base(clean)
	for _, e := range entries {
		if path.Base(e.Name) == name {
			return toEntry(e), nil
		}
	}
	return nil, backend.NotExistError("stat", p, nil)
}

// toEntry rebuilds MLSD facts from a parsed client entry.
func toEntry(e *_ftp.Entry) *types.Entry {
	facts := map[string]string{}
	size := strconv.FormatUint(e.Size, 10)
	switch e.Type {
	case _ftp.EntryTypeFolder:
		facts["type"] = "dir"
		facts["sizd"] = size
	case _ftp.EntryTypeLink:
		facts["type"] = "OS.unix=symlink"
		facts["size"] = size
	default:
		facts["type"] = "file"
		facts["size"] = size
	}
	if !e.Time.IsZero() {
		facts["modify"] = e.Time.UTC().Format(modifyLayout)
	}
	return &types.Entry{Name: e.Name, Facts: facts}
}

func init() {
	d := NewDialer(Options{})
	backend.Register(Scheme, d)
	backend.Register("ftps", types.DialerFunc(func(ctx context.Context, p types.Params) (types.Transport, error) {
		opts := d.Options()
		opts.Protocol = protocolFTPS
		return (&Dialer{opts: opts, dial: d.dial}).Dial(ctx, p)
	}))
}

var _ types.Transport = (*Transport)(nil)
var _ types.Dialer = (*Dialer)(nil)
var _ Client = (*_ftp.ServerConn)(nil)

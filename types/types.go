package types

import (
	"context"
	"io"
	"os"
	"time"
)

// TransferMode represents the representation type used for a data transfer (TYPE A or TYPE I).
type TransferMode int

const (
	_ TransferMode = iota
	// ModeASCII denotes ASCII transfers (TYPE A)
	ModeASCII
	// ModeBinary denotes binary/image transfers (TYPE I)
	ModeBinary
)

// String returns the FTP type code for the mode.
func (m TransferMode) String() string {
	switch m {
	case ModeASCII:
		return "A"
	case ModeBinary:
		return "I"
	default:
		return "unknown"
	}
}

// Entry is a raw directory entry as reported by MLSD/MLST. Facts keys are lowercase,
// ie: "type", "size", "sizd", "modify", "unix.mode".
type Entry struct {
	Name  string
	Facts map[string]string
}

// Reply is the server reply to a raw command.
type Reply struct {
	Code  int
	Lines []string
}

// Rejected reports whether the reply is a transient or permanent negative completion.
func (r *Reply) Rejected() bool {
	return r.Code >= 400
}

// Params are the connection parameters handed to a Dialer.
type Params struct {
	Host    string        `json:"host" yaml:"host" validate:"required,hostname_rfc1123|ip"`
	Port    int           `json:"port" yaml:"port" validate:"min=1,max=65535"`
	SSL     bool          `json:"isSSL" yaml:"isSSL"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"min=0"`
}

// Transport is the FTP capability a Connection drives. Every method maps to one or a few
// FTP verbs and blocks until the server answers.
type Transport interface {
	Login(user, password string) error
	SetPassive(passive bool) error
	RawCommand(line string) (*Reply, error)
	Quit() error

	Store(path string, r io.Reader, mode TransferMode) error
	Append(path string, r io.Reader, mode TransferMode) error
	Retrieve(path string, w io.Writer, mode TransferMode) error

	MakeDir(path string) error
	RemoveDir(path string) error
	Delete(path string) error
	Rename(from, to string) error
	ChangeDir(path string) error
	ChangeDirToParent() error
	Chmod(path string, perm os.FileMode) error
	FileSize(path string) (int64, error)
	CurrentDir() (string, error)
	NameList(path string) ([]string, error)
	List(path string) ([]*Entry, error) // MLSD
	GetEntry(path string) (*Entry, error) // MLST
}

// Dialer opens Transport handles.
type Dialer interface {
	Dial(ctx context.Context, p Params) (Transport, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, p Params) (Transport, error)

// Dial calls f(ctx, p).
func (f DialerFunc) Dial(ctx context.Context, p Params) (Transport, error) {
	return f(ctx, p)
}

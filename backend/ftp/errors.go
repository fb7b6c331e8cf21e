package ftp

import (
	"errors"
	"net/textproto"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpsession/backend"
)

type transportErr string

func (e transportErr) Error() string { return string(e) }

const errRawUnsupported = transportErr("raw commands are not supported by the ftp transport")
const errChmodUnsupported = transportErr("SITE CHMOD is not supported by the ftp transport")
const errActiveUnsupported = transportErr("active mode is not supported by the ftp transport")

// translate maps a 550 reply onto an error matching os.ErrNotExist.
func translate(op, p string, err error) error {
	if err == nil {
		return nil
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && tpErr.Code == _ftp.StatusFileUnavailable {
		return backend.NotExistError(op, p, err)
	}
	return err
}

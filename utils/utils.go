package utils

import (
	"io"
	"net/url"
	"strings"
)

// TouchCopyMinBufferSize min buffer size used in TouchCopyBuffered in bytes
const TouchCopyMinBufferSize = 262144

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(path string) string {
	return strings.TrimLeft(path, "/")
}

// EnsureTrailingSlash will only ever use / since it's used for remote paths, never a Windows OS path.
func EnsureTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if strings.HasPrefix(dir, "/") {
		return dir
	}
	return "/" + dir
}

// PathSegments splits a remote path on "/" and drops empty segments, so "/a//b/" yields ["a", "b"].
func PathSegments(p string) []string {
	parts := strings.Split(p, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// TouchCopyBuffered is a wrapper around io.CopyBuffer which ensures that even empty sources (reader) will get written as an
// empty file. It guarantees a Write() call on the target.
// bufferSize is in bytes and if is less than or equal to zero will result in a buffer of size TouchCopyMinBufferSize
// bytes.
func TouchCopyBuffered(writer io.Writer, reader io.Reader, bufferSize int) error {
	if bufferSize <= 0 {
		bufferSize = TouchCopyMinBufferSize
	}
	size, err := io.CopyBuffer(writer, reader, make([]byte, bufferSize))
	if err != nil {
		return err
	}
	if size == 0 {
		if _, err = writer.Write([]byte{}); err != nil {
			return err
		}
	}
	return nil
}

// EncodeURI ensure that a uri is properly percent-encoded. The password is never included.
func EncodeURI(scheme, username, hostport, path string) string {
	u := &url.URL{
		Scheme: scheme,
		Host:   hostport,
		Path:   path,
	}
	if username != "" {
		u.User = url.User(username)
	}

	return u.String()
}

// Ptr returns a pointer to the given value.
func Ptr[T any](value T) *T {
	return &value
}

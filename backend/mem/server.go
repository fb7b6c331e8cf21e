package mem

import (
	"context"
	"errors"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/c2fo/ftpsession/backend"
	"github.com/c2fo/ftpsession/types"
)

// Scheme defines the transport type.
const Scheme = "mem"

const anonymous = "anonymous"

type node struct {
	dir     bool
	data    []byte
	mode    os.FileMode
	modTime time.Time
}

// Server is an in-memory FTP server. All transports dialed from the same Server share one tree.
type Server struct {
	mu    sync.Mutex
	users map[string]string
	nodes map[string]*node
	now   func() time.Time
}

// NewServer returns an empty server with only the root directory and no users.
func NewServer() *Server {
	s := &Server{
		users: make(map[string]string),
		nodes: make(map[string]*node),
		now:   func() time.Time { return time.Now().UTC() },
	}
	s.nodes["/"] = &node{dir: true, mode: os.ModeDir | 0o755, modTime: s.now()}
	return s
}

// AddUser adds a login. A user named "anonymous" accepts any password.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// WriteFile creates or replaces the file at the absolute path p, creating missing parents.
func (s *Server) WriteFile(p string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = path.Clean("/" + p)
	s.mkdirAll(path.Dir(p))
	s.nodes[p] = &node{data: append([]byte(nil), data...), mode: 0o644, modTime: s.now()}
}

// ReadFile returns a copy of the file at the absolute path p.
func (s *Server) ReadFile(p string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[path.Clean("/"+p)]
	if !ok || n.dir {
		return nil, false
	}
	return append([]byte(nil), n.data...), true
}

// MkdirAll creates the absolute directory p and its parents.
func (s *Server) MkdirAll(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mkdirAll(path.Clean("/" + p))
}

// Exists reports whether anything exists at the absolute path p.
func (s *Server) Exists(p string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.nodes[path.Clean("/"+p)]
	return ok
}

// Mode returns the permission bits of the node at p.
func (s *Server) Mode(p string) (os.FileMode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[path.Clean("/"+p)]
	if !ok {
		return 0, false
	}
	return n.mode.Perm(), true
}

// Dial opens a transport session rooted at "/".
func (s *Server) Dial(ctx context.Context, p types.Params) (types.Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Host == "" {
		return nil, errors.New("mem: host is required")
	}
	return &transport{server: s, cwd: "/"}, nil
}

// mkdirAll expects the lock to be held.
func (s *Server) mkdirAll(p string) {
	if p == "/" {
		return
	}
	if n, ok := s.nodes[p]; ok && n.dir {
		return
	}
	s.mkdirAll(path.Dir(p))
	s.nodes[p] = &node{dir: true, mode: os.ModeDir | 0o755, modTime: s.now()}
}

// children returns the sorted direct children of dir. The lock must be held.
func (s *Server) children(dir string) []string {
	var names []string
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	for p := range s.nodes {
		if p == dir || !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest != "" && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names
}

func (s *Server) login(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expected, ok := s.users[username]
	if !ok {
		return false
	}
	return username == anonymous || expected == password
}

var defaultServer = NewServer()

// Default returns the server registered for the "mem" scheme.
func Default() *Server {
	return defaultServer
}

func init() {
	defaultServer.AddUser(anonymous, "")
	backend.Register(Scheme, defaultServer)
}

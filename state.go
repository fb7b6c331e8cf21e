package ftpsession

import (
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type authenticationRecord struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// connectionRecord is the persisted form of a Connection. Timeout is in whole seconds.
type connectionRecord struct {
	Host           string                `json:"host" yaml:"host"`
	Port           int                   `json:"port" yaml:"port"`
	Timeout        *int64                `json:"timeout" yaml:"timeout"`
	IsSSL          bool                  `json:"isSSL" yaml:"isSSL"`
	Authentication *authenticationRecord `json:"authentication" yaml:"authentication"`
}

func (a *Authentication) record() *authenticationRecord {
	return &authenticationRecord{Username: a.username, Password: a.password}
}

func (a *Authentication) restore(r *authenticationRecord) {
	a.username = r.Username
	a.password = r.Password
}

// MarshalJSON implements json.Marshaler.
func (a *Authentication) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Authentication) UnmarshalJSON(data []byte) error {
	r := &authenticationRecord{}
	if err := json.Unmarshal(data, r); err != nil {
		return err
	}
	a.restore(r)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a *Authentication) MarshalYAML() (interface{}, error) {
	return a.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Authentication) UnmarshalYAML(value *yaml.Node) error {
	r := &authenticationRecord{}
	if err := value.Decode(r); err != nil {
		return err
	}
	a.restore(r)
	return nil
}

func (c *Connection) snapshot() *connectionRecord {
	r := &connectionRecord{
		Host:  c.host,
		Port:  c.port,
		IsSSL: c.isSSL,
	}
	if c.timeout > 0 {
		secs := int64(c.timeout / time.Second)
		r.Timeout = &secs
	}
	current := c.authentication
	if current == nil {
		current = c.relogin
	}
	if auth, ok := current.(*Authentication); ok && auth != nil {
		r.Authentication = auth.record()
	}
	return r
}

// restore rebuilds the connection from r. The handle is opened lazily on first use unless the connection is
// already live.
func (c *Connection) restore(r *connectionRecord) {
	c.host = r.Host
	c.port = r.Port
	c.isSSL = r.IsSSL
	c.timeout = 0
	if r.Timeout != nil {
		c.timeout = time.Duration(*r.Timeout) * time.Second
	}
	c.authentication = nil
	if r.Authentication != nil {
		auth := &Authentication{}
		auth.restore(r.Authentication)
		c.authentication = auth
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.logger.GetSink() == nil {
		c.SetLogger(logr.Discard())
	}
	c.reopen = c.handle == nil
	c.relogin = nil
	if c.reopen {
		c.relogin = c.authentication
	}
}

// MarshalJSON implements json.Marshaler. The live handle is not persisted.
func (c *Connection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.snapshot())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Connection) UnmarshalJSON(data []byte) error {
	r := &connectionRecord{}
	if err := json.Unmarshal(data, r); err != nil {
		return err
	}
	c.restore(r)
	return nil
}

// MarshalYAML implements yaml.Marshaler. The live handle is not persisted.
func (c *Connection) MarshalYAML() (interface{}, error) {
	return c.snapshot(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Connection) UnmarshalYAML(value *yaml.Node) error {
	r := &connectionRecord{}
	if err := value.Decode(r); err != nil {
		return err
	}
	c.restore(r)
	return nil
}

package protocol

import (
	"fmt"
	"strconv"
)

// Credential holds what a transport needs to open a session against a
// Linkar entry point. The core never inspects it beyond logging the
// non-secret parts.
type Credential struct {
	Host       string `json:"host"        mapstructure:"host"`
	EntryPoint string `json:"entry_point" mapstructure:"entry_point"`
	Port       int    `json:"port"        mapstructure:"port"`
	Username   string `json:"username"    mapstructure:"username"`
	Password   string `json:"-"           mapstructure:"password"`
	Language   string `json:"language"    mapstructure:"language"`
	FreeText   string `json:"free_text"   mapstructure:"free_text"`
}

// NewCredential creates a credential with the fields every session needs.
func NewCredential(host, entryPoint string, port int, username, password string) Credential {
	return Credential{
		Host:       host,
		EntryPoint: entryPoint,
		Port:       port,
		Username:   username,
		Password:   password,
	}
}

// Address returns host:port.
func (c Credential) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// String renders the credential with the password redacted.
func (c Credential) String() string {
	pw := ""
	if c.Password != "" {
		pw = "[REDACTED]"
	}
	return fmt.Sprintf("%s@%s/%s (password=%s)", c.Username, c.Address(), c.EntryPoint, pw)
}

// Validate reports a malformed credential. Transports may call it before
// dialing; the dispatcher does not.
func (c Credential) Validate() error {
	missing := []string{}
	if c.Host == "" {
		missing = append(missing, "host")
	}
	if c.EntryPoint == "" {
		missing = append(missing, "entry_point")
	}
	if c.Port <= 0 || c.Port > 65535 {
		missing = append(missing, "port")
	}
	if len(missing) > 0 {
		return AuthError("malformed credential", map[string]interface{}{
			"invalid": missing,
		})
	}
	return nil
}

package mailer

import (
	"fmt"
	"strings"

	"github.com/wneessen/go-mail/smtp"
)

const (
	mechPlain = "PLAIN"
	mechLogin = "LOGIN"
)

// relayAuth picks PLAIN or LOGIN from the mechanisms the relay advertises
// after EHLO, in that order. Credentials go over the session as negotiated,
// including sessions without TLS.
type relayAuth struct {
	username string
	password string
	mech     string
	step     int
}

func newRelayAuth(username, password string) *relayAuth {
	return &relayAuth{username: username, password: password}
}

func (a *relayAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	a.mech, a.step = "", 0
	for _, want := range []string{mechPlain, mechLogin} {
		if advertises(server.Auth, want) {
			a.mech = want
			break
		}
	}

	switch a.mech {
	case mechPlain:
		return mechPlain, []byte("\x00" + a.username + "\x00" + a.password), nil
	case mechLogin:
		return mechLogin, nil, nil
	default:
		return "", nil, fmt.Errorf("relay offers no supported auth mechanism: %q", strings.Join(server.Auth, " "))
	}
}

// Next answers LOGIN's username and password prompts in order.
func (a *relayAuth) Next(_ []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	if a.mech != mechLogin {
		return nil, fmt.Errorf("unexpected challenge during %s auth", a.mech)
	}
	a.step++
	switch a.step {
	case 1:
		return []byte(a.username), nil
	case 2:
		return []byte(a.password), nil
	default:
		return nil, fmt.Errorf("unexpected challenge during %s auth", a.mech)
	}
}

func advertises(mechs []string, want string) bool {
	for _, m := range mechs {
		if strings.EqualFold(m, want) {
			return true
		}
	}
	return false
}

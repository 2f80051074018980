//go:build unit

package mailer

import (
	"context"
	"mime"
	"net"
	"testing"
	"time"

	"refreshing-booking/internal/infra"
	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage(shared.Mail{
		From:    "Refreshing <booking@refreshing.se>",
		To:      "info@refreshing.se",
		ReplyTo: "anna@example.se",
		Subject: "Ny bokning: Grundstädning – Anna Svensson",
		Text:    "Kund: Anna Svensson\n",
	})
	require.NoError(t, err)

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"info@refreshing.se"}, rcpts)

	// non-ASCII subjects are stored as RFC 2047 encoded words
	subject := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subject, 1)
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject[0])
	require.NoError(t, err)
	assert.Equal(t, "Ny bokning: Grundstädning – Anna Svensson", decoded)
}

func TestBuildMessageRejectsBadAddresses(t *testing.T) {
	_, err := buildMessage(shared.Mail{From: "not an address", To: "info@refreshing.se"})
	assert.Error(t, err)

	_, err = buildMessage(shared.Mail{From: "booking@refreshing.se", To: ""})
	assert.Error(t, err)
}

func TestOpenFailsWhenRelayIsDown(t *testing.T) {
	// grab a free port and release it so nothing is listening there
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := config.NewTestConfig()
	cfg.Site.SMTPTimeout = 2 * time.Second
	m := NewSMTPMailer(cfg, zap.NewNop())

	mailCfg := config.NewTestMailConfig()
	mailCfg.Host = "127.0.0.1"
	mailCfg.Port = port

	session, err := m.Open(context.Background(), mailCfg)
	assert.Nil(t, session)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDial))
	assert.NotContains(t, err.Error(), mailCfg.Password)
}

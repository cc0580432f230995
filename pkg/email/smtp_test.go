package email_test

import (
	"context"
	"net"
	"net/textproto"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credportal/pkg/email"
)

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     email.SMTPConfig
		wantErr string
	}{
		{name: "valid", cfg: email.SMTPConfig{Host: "smtp.example.com", Port: 587}},
		{name: "valid ssl", cfg: email.SMTPConfig{Host: "smtp.example.com", Port: 465, TLSMode: "ssl"}},
		{name: "missing host", cfg: email.SMTPConfig{Port: 587}, wantErr: "SMTP host is required"},
		{name: "bad port", cfg: email.SMTPConfig{Host: "smtp.example.com", Port: 70000}, wantErr: "out of range"},
		{name: "bad tls mode", cfg: email.SMTPConfig{Host: "smtp.example.com", Port: 25, TLSMode: "maybe"}, wantErr: "unknown SMTP TLS mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := email.NewSMTPSender(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, s)
				return
			}
			assert.Nil(t, s)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSMTPSender_Send(t *testing.T) {
	t.Parallel()

	s, err := email.NewSMTPSender(email.SMTPConfig{Host: "127.0.0.1", Port: 1, TLSMode: "none"})
	require.NoError(t, err)

	t.Run("invalid message", func(t *testing.T) {
		t.Parallel()
		msg := testMessage()
		msg.HTML = ""
		_, err := s.Send(context.Background(), msg)
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Send(ctx, testMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unreachable relay", func(t *testing.T) {
		t.Parallel()
		_, err := s.Send(context.Background(), testMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}

// fakeRelay is a minimal plaintext SMTP server. It can advertise STARTTLS but
// refuses the upgrade, so a client that tries it fails.
type fakeRelay struct {
	host      string
	port      int
	starttls  bool
	mu        sync.Mutex
	commands  []string
	delivered int
}

func startFakeRelay(t *testing.T, advertiseSTARTTLS bool) *fakeRelay {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	r := &fakeRelay{host: host, port: p, starttls: advertiseSTARTTLS}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go r.serve(conn)
		}
	}()
	return r
}

func (r *fakeRelay) serve(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)

	_ = tp.PrintfLine("220 fake.relay ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToUpper(fields[0])
		r.record(cmd)

		switch cmd {
		case "EHLO":
			if r.starttls {
				_ = tp.PrintfLine("250-fake.relay")
				_ = tp.PrintfLine("250 STARTTLS")
			} else {
				_ = tp.PrintfLine("250 fake.relay")
			}
		case "HELO", "MAIL", "RCPT", "RSET", "NOOP":
			_ = tp.PrintfLine("250 OK")
		case "STARTTLS":
			_ = tp.PrintfLine("454 4.7.0 TLS not available")
		case "DATA":
			_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			if _, err := tp.ReadDotBytes(); err != nil {
				return
			}
			r.mu.Lock()
			r.delivered++
			r.mu.Unlock()
			_ = tp.PrintfLine("250 OK queued")
		case "QUIT":
			_ = tp.PrintfLine("221 Bye")
			return
		default:
			_ = tp.PrintfLine("502 command not implemented")
		}
	}
}

func (r *fakeRelay) record(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

func (r *fakeRelay) seen(cmd string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.commands, cmd)
}

func (r *fakeRelay) deliveries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.delivered
}

func TestSMTPSender_TLSModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mode         string
		advertise    bool
		wantErr      bool
		wantSTARTTLS bool
	}{
		{name: "none skips advertised starttls", mode: "none", advertise: true},
		{name: "auto without starttls sends plaintext", mode: "auto", advertise: false},
		{name: "auto upgrades when offered", mode: "auto", advertise: true, wantErr: true, wantSTARTTLS: true},
		{name: "starttls refuses relay without it", mode: "starttls", advertise: false, wantErr: true},
		{name: "starttls upgrades when offered", mode: "starttls", advertise: true, wantErr: true, wantSTARTTLS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			relay := startFakeRelay(t, tt.advertise)
			s, err := email.NewSMTPSender(email.SMTPConfig{Host: relay.host, Port: relay.port, TLSMode: tt.mode})
			require.NoError(t, err)

			res, err := s.Send(context.Background(), testMessage())
			assert.Equal(t, tt.wantSTARTTLS, relay.seen("STARTTLS"))

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
				assert.False(t, relay.seen("MAIL"), "no message may be sent before TLS is settled")
				assert.Zero(t, relay.deliveries())
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(res.MessageID, "@"+relay.host+">"))
			assert.Equal(t, 1, relay.deliveries())
		})
	}
}

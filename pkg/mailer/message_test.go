package mailer

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipients(t *testing.T) {
	t.Parallel()

	t.Run("single address", func(t *testing.T) {
		t.Parallel()
		got, err := parseRecipients("a@x.com")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a@x.com", got[0].Address)
	})

	t.Run("whitespace around commas is irrelevant", func(t *testing.T) {
		t.Parallel()
		variants := []string{
			"a@x.com,b@x.com",
			"a@x.com, b@x.com",
			"  a@x.com ,\tb@x.com  ",
		}
		for _, v := range variants {
			got, err := parseRecipients(v)
			require.NoError(t, err, "input %q", v)
			require.Len(t, got, 2)
			assert.Equal(t, "a@x.com", got[0].Address)
			assert.Equal(t, "b@x.com", got[1].Address)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		t.Parallel()
		got, err := parseRecipients("c@x.com, a@x.com, b@x.com")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "c@x.com", got[0].Address)
		assert.Equal(t, "a@x.com", got[1].Address)
		assert.Equal(t, "b@x.com", got[2].Address)
	})

	t.Run("display names accepted", func(t *testing.T) {
		t.Parallel()
		got, err := parseRecipients("Ann <a@x.com>")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ann", got[0].Name)
		assert.Equal(t, "a@x.com", got[0].Address)
	})

	t.Run("invalid entry fails the whole parse", func(t *testing.T) {
		t.Parallel()
		_, err := parseRecipients("a@x.com, not-an-address")
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "not-an-address")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := parseRecipients("")
		require.ErrorIs(t, err, ErrConfig)
	})
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	to := []*mail.Address{
		{Name: "Ann", Address: "a@x.com"},
		{Address: "b@x.com"},
	}

	t.Run("multipart with plaintext before html", func(t *testing.T) {
		t.Parallel()
		m := &Mailer{from: mail.Address{Address: "no-reply@x.com"}}
		msg := m.buildMessage(to, "Hi", "<p>Hello <strong>Ann</strong></p>")

		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		raw := buf.String()

		assert.Contains(t, raw, "multipart/alternative")
		textIdx := strings.Index(raw, "text/plain")
		htmlIdx := strings.Index(raw, "text/html")
		require.Positive(t, textIdx)
		require.Positive(t, htmlIdx)
		assert.Less(t, textIdx, htmlIdx, "plaintext part must come first")

		assert.Contains(t, raw, "a@x.com")
		assert.Contains(t, raw, "b@x.com")
		assert.Contains(t, raw, "Subject: Hi")
		// Derived plaintext has the markup stripped.
		assert.Contains(t, raw, "Hello Ann")
	})

	t.Run("reply-to set only when configured", func(t *testing.T) {
		t.Parallel()
		rt := &mail.Address{Address: "support@x.com"}
		with := &Mailer{from: mail.Address{Address: "no-reply@x.com"}, replyTo: rt}
		without := &Mailer{from: mail.Address{Address: "no-reply@x.com"}}

		var a, b bytes.Buffer
		_, err := with.buildMessage(to, "s", "<p>x</p>").WriteTo(&a)
		require.NoError(t, err)
		_, err = without.buildMessage(to, "s", "<p>x</p>").WriteTo(&b)
		require.NoError(t, err)

		assert.Contains(t, a.String(), "Reply-To: support@x.com")
		assert.NotContains(t, b.String(), "Reply-To")
	})
}

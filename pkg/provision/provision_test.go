package provision_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authvault/pkg/provision"
)

func TestURI(t *testing.T) {
	t.Parallel()

	t.Run("standard account", func(t *testing.T) {
		t.Parallel()

		uri, err := provision.URI(provision.URIParams{
			Seed:    "JBSWY3DPEHPK3PXP",
			Account: "test@example.com",
			Issuer:  "TestIssuer",
		})
		require.NoError(t, err)
		assert.Equal(t,
			"otpauth://totp/TestIssuer:test@example.com?algorithm=SHA1&digits=6&issuer=TestIssuer&period=30&secret=JBSWY3DPEHPK3PXP",
			uri,
		)
	})

	t.Run("custom parameters", func(t *testing.T) {
		t.Parallel()

		uri, err := provision.URI(provision.URIParams{
			Seed:      "JBSWY3DPEHPK3PXP",
			Account:   "user",
			Issuer:    "Acme",
			Algorithm: "SHA256",
			Digits:    8,
			Period:    60,
		})
		require.NoError(t, err)
		assert.Contains(t, uri, "algorithm=SHA256")
		assert.Contains(t, uri, "digits=8")
		assert.Contains(t, uri, "period=60")
	})

	t.Run("issuer with spaces is escaped", func(t *testing.T) {
		t.Parallel()

		uri, err := provision.URI(provision.URIParams{
			Seed:    "JBSWY3DPEHPK3PXP",
			Account: "user@example.com",
			Issuer:  "Acme Corp",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "otpauth://totp/Acme%20Corp:user@example.com?"))
		assert.Contains(t, uri, "issuer=Acme+Corp")
	})

	t.Run("seed is normalized", func(t *testing.T) {
		t.Parallel()

		uri, err := provision.URI(provision.URIParams{
			Seed:    "jbswy3dpehpk3pxp==",
			Account: "user",
			Issuer:  "Acme",
		})
		require.NoError(t, err)
		assert.Contains(t, uri, "secret=JBSWY3DPEHPK3PXP")
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			params provision.URIParams
			want   error
		}{
			{
				name:   "missing seed",
				params: provision.URIParams{Account: "user", Issuer: "Acme"},
				want:   provision.ErrMissingSeed,
			},
			{
				name:   "invalid seed",
				params: provision.URIParams{Seed: "not!base32", Account: "user", Issuer: "Acme"},
				want:   provision.ErrInvalidSeed,
			},
			{
				name:   "missing account",
				params: provision.URIParams{Seed: "JBSWY3DPEHPK3PXP", Issuer: "Acme"},
				want:   provision.ErrMissingAccount,
			},
			{
				name:   "missing issuer",
				params: provision.URIParams{Seed: "JBSWY3DPEHPK3PXP", Account: "user"},
				want:   provision.ErrMissingIssuer,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				uri, err := provision.URI(tt.params)
				require.ErrorIs(t, err, tt.want)
				assert.Empty(t, uri)
			})
		}
	})
}

func TestQRPNG(t *testing.T) {
	t.Parallel()

	t.Run("produces png of requested size", func(t *testing.T) {
		t.Parallel()

		data, err := provision.QRPNG("otpauth://totp/Acme:user?secret=JBSWY3DPEHPK3PXP", 300)
		require.NoError(t, err)

		config, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 300, config.Width)
		assert.Equal(t, 300, config.Height)
	})

	t.Run("zero size falls back to default", func(t *testing.T) {
		t.Parallel()

		data, err := provision.QRPNG("some content", 0)
		require.NoError(t, err)

		config, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, config.Width)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		tests := []string{"", "   ", "\n\t"}
		for _, content := range tests {
			data, err := provision.QRPNG(content, 256)
			require.ErrorIs(t, err, provision.ErrEmptyContent)
			assert.Nil(t, data)
		}
	})
}

func TestQRDataURI(t *testing.T) {
	t.Parallel()

	t.Run("embeddable data uri", func(t *testing.T) {
		t.Parallel()

		dataURI, err := provision.QRDataURI("otpauth://totp/Acme:user?secret=JBSWY3DPEHPK3PXP", 0)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
		require.NoError(t, err)

		_, err = png.DecodeConfig(bytes.NewReader(raw))
		assert.NoError(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		dataURI, err := provision.QRDataURI("", 0)
		require.ErrorIs(t, err, provision.ErrEmptyContent)
		assert.Empty(t, dataURI)
	})
}

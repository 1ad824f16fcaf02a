package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-vault/internal/model"
	"user-vault/pkg/responses"
)

func TestEncodeSecret(t *testing.T) {
	payload, err := encodeSecret(model.LoginSecret{URL: "u", Username: "n", Password: "p"}, 100)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"u","username":"n","password":"p"}`, string(payload))

	_, err = encodeSecret(nil, 100)
	assert.ErrorIs(t, err, responses.ErrBadRequest)

	_, err = encodeSecret(model.NoteSecret{Content: "0123456789"}, 10)
	assert.ErrorIs(t, err, responses.ErrPayloadTooLarge)
}

func TestEncodeSecret_NoHTMLEscape(t *testing.T) {
	// {"content":""} 占 14 字节
	content := strings.Repeat("<&>", 2) + "<<"
	payload, err := encodeSecret(model.NoteSecret{Content: content}, 14+len(content))
	require.NoError(t, err)
	assert.Equal(t, `{"content":"<&><&><<"}`, string(payload))
	assert.NotContains(t, string(payload), `\u003c`)

	_, err = encodeSecret(model.NoteSecret{Content: content + "&"}, 14+len(content))
	assert.ErrorIs(t, err, responses.ErrPayloadTooLarge)

	got, err := decodeSecret(model.CredentialKindNote, payload)
	require.NoError(t, err)
	assert.Equal(t, model.NoteSecret{Content: content}, got)
}

func TestEncodeSecret_InvalidUTF8(t *testing.T) {
	cases := []struct {
		name   string
		secret model.Secret
		field  string
	}{
		{"note", model.NoteSecret{Content: "a\xffb"}, "content"},
		{"login password", model.LoginSecret{URL: "u", Username: "n", Password: "p\xc3"}, "password"},
		{"card number", model.CardSecret{Number: "\xfe4111"}, "number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeSecret(tc.secret, 100)
			assert.ErrorIs(t, err, responses.ErrBadRequest)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	payload, err := encodeSecret(model.NoteSecret{Content: "密码 ✓"}, 100)
	require.NoError(t, err)
	assert.Equal(t, `{"content":"密码 ✓"}`, string(payload))
}

func TestDecodeSecret(t *testing.T) {
	cases := []struct {
		name    string
		kind    model.CredentialKind
		payload string
		want    model.Secret
		wantErr bool
	}{
		{"login", model.CredentialKindLogin, `{"url":"u","username":"n","password":"p"}`, model.LoginSecret{URL: "u", Username: "n", Password: "p"}, false},
		{"card", model.CredentialKindCard, `{"cardholderName":"A","number":"4","expMonth":"1","expYear":"2","code":"3"}`, model.CardSecret{CardholderName: "A", Number: "4", ExpMonth: "1", ExpYear: "2", Code: "3"}, false},
		{"note", model.CredentialKindNote, `{"content":"c"}`, model.NoteSecret{Content: "c"}, false},
		{"empty object", model.CredentialKindNote, `{}`, model.NoteSecret{}, false},
		{"foreign field", model.CredentialKindNote, `{"url":"u"}`, nil, true},
		{"trailing data", model.CredentialKindNote, `{"content":"c"}{}`, nil, true},
		{"not json", model.CredentialKindLogin, `garbage`, nil, true},
		{"unknown kind", model.CredentialKind("ssh"), `{"key":"k"}`, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeSecret(tc.kind, []byte(tc.payload))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToCredentialResponse(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := &model.UserCredential{
		BaseModel:      model.BaseModel{ID: "id-1", CreatedAt: now, UpdatedAt: now},
		Kind:           model.CredentialKindCard,
		Name:           "Visa",
		UserID:         "u1",
		OrganizationID: "o1",
	}
	secret := model.CardSecret{CardholderName: "A", Number: "4111", ExpMonth: "01", ExpYear: "2030", Code: "999"}

	resp := toCredentialResponse(c, secret)
	require.NotNil(t, resp)
	assert.Equal(t, "card", resp.Kind)
	assert.Equal(t, "4111", resp.Number)
	assert.Nil(t, resp.LoginSecret)
	assert.Nil(t, resp.NoteSecret)

	bare := toCredentialResponse(c, nil)
	assert.Nil(t, bare.Secret())
	assert.Equal(t, "Visa", bare.Name)

	assert.Nil(t, toCredentialResponse(nil, secret))
}

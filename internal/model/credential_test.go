package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialKind_Valid(t *testing.T) {
	for _, k := range CredentialKinds {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, CredentialKind("").Valid())
	assert.False(t, CredentialKind("LOGIN").Valid())
}

func TestBaseModel_BeforeCreate(t *testing.T) {
	var m BaseModel
	require.NoError(t, m.BeforeCreate(nil))
	u, err := uuid.Parse(m.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), u.Version())

	m = BaseModel{ID: "fixed"}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, "fixed", m.ID)
}

func TestActor_Anonymous(t *testing.T) {
	assert.False(t, Actor{ID: "u", OrgID: "o"}.Anonymous())
	assert.True(t, Actor{ID: "u"}.Anonymous())
	assert.True(t, Actor{OrgID: "o"}.Anonymous())
}

func TestSecretKinds(t *testing.T) {
	assert.Equal(t, CredentialKindLogin, LoginSecret{}.Kind())
	assert.Equal(t, CredentialKindCard, CardSecret{}.Kind())
	assert.Equal(t, CredentialKindNote, NoteSecret{}.Kind())
	assert.Equal(t, "user_credentials", UserCredential{}.TableName())
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_OmitsCredentials(t *testing.T) {
	u := &User{ID: 1, Login: "bob", Hash: "h", Salt: "s"}

	b, err := json.Marshal(u.Profile())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"login":"bob"}`, string(b))
}

func TestProfiles_PreservesOrder(t *testing.T) {
	got := Profiles([]*User{{ID: 2, Login: "b"}, {ID: 5, Login: "a"}})
	assert.Equal(t, []Profile{{ID: 2, Login: "b"}, {ID: 5, Login: "a"}}, got)
	assert.NotNil(t, Profiles(nil))
}

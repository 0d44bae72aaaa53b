package common

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- ValidateCredentials ----------

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{name: "ok", login: "bob", password: "hunter22"},
		{name: "max bounds", login: strings.Repeat("l", 32), password: strings.Repeat("p", 32)},
		{name: "short login", login: "bo", password: "hunter22", wantErr: ErrorInvalidLoginFormat},
		{name: "long login", login: strings.Repeat("l", 33), password: "hunter22", wantErr: ErrorInvalidLoginFormat},
		{name: "short password", login: "bob", password: "pw", wantErr: ErrorInvalidPasswordFormat},
		{name: "long password", login: "bob", password: strings.Repeat("p", 33), wantErr: ErrorInvalidPasswordFormat},
		{name: "login checked first", login: "", password: "", wantErr: ErrorInvalidLoginFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.login, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

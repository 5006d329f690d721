package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPassword(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("password", IsPassword))

	type form struct {
		Password string `validate:"password"`
	}

	cases := []struct {
		password string
		valid    bool
	}{
		{"passw0rd", true},
		{"a1b2c3", true},
		{"short1", true},
		{"abc1", false},       // 太短
		{"abcdefgh", false},   // 缺数字
		{"12345678", false},   // 缺字母
		{"", false},
	}
	for _, tc := range cases {
		err := v.Struct(form{Password: tc.password})
		if tc.valid {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}

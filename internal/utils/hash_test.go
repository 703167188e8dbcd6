// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPepper = "test-secret-key"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse", testPepper)
	require.NoError(t, err)
	assert.NotContains(t, hash, "correct horse")

	assert.NoError(t, CheckPassword(hash, "correct horse", testPepper))
	assert.ErrorIs(t, CheckPassword(hash, "battery staple", testPepper), ErrPasswordMismatch)
}

// тот же пароль с другим ключом не проходит проверку
func TestCheckPassword_PepperMatters(t *testing.T) {
	hash, err := HashPassword("secret", "key-1")
	require.NoError(t, err)

	assert.ErrorIs(t, CheckPassword(hash, "secret", "key-2"), ErrPasswordMismatch)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("secret", testPepper)
	require.NoError(t, err)
	b, err := HashPassword("secret", testPepper)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("x", 200)

	hash, err := HashPassword(long, testPepper)
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, long, testPepper))
	assert.ErrorIs(t, CheckPassword(hash, long+"y", testPepper), ErrPasswordMismatch)
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "secret", testPepper)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestPepper_FixedLength(t *testing.T) {
	assert.Len(t, pepper("", testPepper), 64)
	assert.Len(t, pepper(strings.Repeat("p", 1000), testPepper), 64)
}

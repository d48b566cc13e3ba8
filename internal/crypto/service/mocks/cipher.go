// Package mocks provides mock implementations of the envelope cipher for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

// MockCipher is a mock implementation of service.Cipher.
type MockCipher struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of Cipher.
func (m *MockCipher) Encrypt(plaintext []byte) ([]byte, error) {
	args := m.Called(plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// EncryptString mocks the EncryptString method of Cipher.
func (m *MockCipher) EncryptString(s string) ([]byte, error) {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Decrypt mocks the Decrypt method of Cipher.
func (m *MockCipher) Decrypt(envelope []byte) ([]byte, error) {
	args := m.Called(envelope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// DecryptString mocks the DecryptString method of Cipher.
func (m *MockCipher) DecryptString(envelope []byte) (string, error) {
	args := m.Called(envelope)
	return args.String(0), args.Error(1)
}

// KeyRef mocks the KeyRef method of Cipher.
func (m *MockCipher) KeyRef(envelope []byte) (cryptoDomain.KeyRef, error) {
	args := m.Called(envelope)
	return args.Get(0).(cryptoDomain.KeyRef), args.Error(1)
}

// Rewrap mocks the Rewrap method of Cipher.
func (m *MockCipher) Rewrap(envelope []byte) ([]byte, bool, error) {
	args := m.Called(envelope)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

// CurrentKeyRef mocks the CurrentKeyRef method of Cipher.
func (m *MockCipher) CurrentKeyRef() cryptoDomain.KeyRef {
	args := m.Called()
	return args.Get(0).(cryptoDomain.KeyRef)
}

package utils

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateShortCode returns a random code of the given length drawn from
// a URL-safe alphanumeric alphabet.
func GenerateShortCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid code length")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i := range buf {
		buf[i] = shortCodeAlphabet[int(buf[i])%len(shortCodeAlphabet)]
	}
	return string(buf), nil
}

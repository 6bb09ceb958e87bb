package domain

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username string
	Password Password
}

type Password struct {
	plaintext *string
	Hash      []byte
}

func (p *Password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *Password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type UserCodec struct{}

func (UserCodec) Header() []string {
	return []string{"username", "password"}
}

func (UserCodec) Fields(u User) []string {
	return []string{u.Username, string(u.Password.Hash)}
}

func (c UserCodec) Parse(fields []string) (User, error) {
	if len(fields) != len(c.Header()) {
		return User{}, fmt.Errorf("user row has %d fields, want %d", len(fields), len(c.Header()))
	}

	return User{
		Username: fields[0],
		Password: Password{Hash: []byte(fields[1])},
	}, nil
}

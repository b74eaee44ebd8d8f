package repositories

import (
	"errors"
	"strings"
)

var (
	ErrCommunityNotFound      = errors.New("community not found")
	ErrCommunityAlreadyExists = errors.New("community already exists")

	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("member already exists")

	ErrApplicationNotFound = errors.New("application not found")

	ErrDonationNotFound = errors.New("donation not found")
	ErrExpenseNotFound  = errors.New("expense not found")

	ErrVolunteerNotFound = errors.New("volunteer not found")

	ErrPujaNotFound = errors.New("puja not found")

	ErrTemplateNotFound      = errors.New("communication template not found")
	ErrTemplateAlreadyExists = errors.New("communication template already exists")

	ErrTransactionNotFound = errors.New("transaction not found")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s)))
}

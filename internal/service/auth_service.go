package service

import (
	"errors"
	"fmt"
	"strings"

	"linderopos/internal/config"
)

// ErrPINMismatch is returned for a well-formed PIN that does not match the
// configured one. Deliberately generic — the response must not reveal
// whether digits or length were wrong at this stage.
var ErrPINMismatch = errors.New("PIN incorrecto")

// PINFormatError reports a candidate that is not digits-only of the
// configured length. Surfaced as a 400 with the required length.
type PINFormatError struct{ Length int }

func (e *PINFormatError) Error() string {
	return fmt.Sprintf("El PIN debe tener %d dígitos.", e.Length)
}

// AuthService authenticates a cashier session from a submitted PIN.
type AuthService interface {
	VerifyPIN(pin string) error
}

type authService struct{ cfg *config.Config }

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// VerifyPIN validates format first (digits-only, exact configured length),
// then compares the candidate as a string against the shared PIN. The PIN
// is an operational shared code, not a per-user credential — no hashing.
func (s *authService) VerifyPIN(pin string) error {
	pin = strings.TrimSpace(pin)
	if !isDigits(pin) || len(pin) != s.cfg.PINLength {
		return &PINFormatError{Length: s.cfg.PINLength}
	}
	if pin != s.cfg.PIN {
		return ErrPINMismatch
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

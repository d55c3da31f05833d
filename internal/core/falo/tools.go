package falo

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return ErrLoginNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailNotValid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var referralAlphabet = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

func newReferralCode() string {
	b := strings.Builder{}
	b.WriteString("IQ-")
	for i := 0; i < 8; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralAlphabet))))
		if err != nil {
			n = big.NewInt(0)
		}
		b.WriteRune(referralAlphabet[n.Int64()])
	}
	return b.String()
}

var (
	abuseWindow = 500 * time.Millisecond
	abuseLimit  = 5
)

// abuseGuard tracks bursts of task verifications per user. More than
// abuseLimit consecutive calls under abuseWindow apart mark the
// account as compromised.
type abuseGuard struct {
	mu     sync.Mutex
	last   map[uint]time.Time
	bursts map[uint]int
}

func newAbuseGuard() *abuseGuard {
	return &abuseGuard{
		last:   make(map[uint]time.Time),
		bursts: make(map[uint]int),
	}
}

func (g *abuseGuard) hit(userID uint, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if last, ok := g.last[userID]; ok && now.Sub(last) < abuseWindow {
		g.bursts[userID]++
	} else {
		g.bursts[userID] = 0
	}
	g.last[userID] = now

	return g.bursts[userID] > abuseLimit
}

package token

import (
	"time"
)

type Maker interface {
	CreateToken(user User, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}

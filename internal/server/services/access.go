package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/config"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
)

// AccessErrorKind classifies why an Authorization header was rejected.
type AccessErrorKind int

const (
	AccessMissingHeader AccessErrorKind = iota
	AccessBadScheme
	AccessInvalidToken
	AccessUnknownUser
)

// AccessError is the explicit rejection result of the access gate. Message
// is drawn from a fixed set of safe strings; parser and verifier details are
// never echoed to the client.
type AccessError struct {
	Kind    AccessErrorKind
	Message string
}

func (e *AccessError) Error() string {
	return e.Message
}

// The full set of client-visible authentication failure messages.
const (
	msgMissingHeader = "Missing Authorization header"
	msgBadScheme     = "Invalid token: invalid auth scheme"
	msgInvalidToken  = "Invalid token: token invalid or expired"
	msgUnknownUser   = "Invalid token: user not found"
)

// identityResolver maps a verified token subject to a user record.
type identityResolver interface {
	Resolve(ctx context.Context, subject string) (*models.User, error)
}

// AccessService is the gate every protected request passes through: verify
// the bearer token, then load the user it asserts.
type AccessService struct {
	resolver  identityResolver
	jwtSecret []byte
}

// NewAccessService constructs an AccessService over the given resolver
// (normally the UserService) and the configured signing secret.
func NewAccessService(resolver identityResolver, cfg *config.Config) *AccessService {
	return &AccessService{
		resolver:  resolver,
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// Authenticate inspects an Authorization header value and returns either the
// authenticated user or an AccessError. The result is explicit: no error
// value other than *AccessError ever leaves this function.
//
// Header format: "Bearer <token>", scheme case-insensitive, exactly two
// space-separated parts.
func (s *AccessService) Authenticate(ctx context.Context, header string) (*models.User, *AccessError) {

	if header == "" {
		return nil, &AccessError{Kind: AccessMissingHeader, Message: msgMissingHeader}
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, &AccessError{Kind: AccessBadScheme, Message: msgBadScheme}
	}

	subject, err := auth.GetSubjectFromToken(parts[1], s.jwtSecret)
	if err != nil {
		return nil, &AccessError{Kind: AccessInvalidToken, Message: msgInvalidToken}
	}

	user, err := s.resolver.Resolve(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &AccessError{Kind: AccessUnknownUser, Message: msgUnknownUser}
		}
		return nil, &AccessError{Kind: AccessInvalidToken, Message: msgInvalidToken}
	}

	return user, nil
}

package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pestlinkgw/internal/domain"
	"pestlinkgw/internal/shared/normalization"
)

var (
	// ErrInvalidCredentials covers rejected logins, unrecognized roles and
	// missing role-specific payloads.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenValidation marks a freshly issued token the backend refused to
	// accept back. Distinguishable from a plain bad login so the UI can say
	// what actually went wrong instead of failing with a 401 later.
	ErrTokenValidation = errors.New("token validation failed")
)

// LoginResult carries only the fields relevant to the authenticated role.
type LoginResult struct {
	Role       string             `json:"role"`
	Token      string             `json:"token"`
	Name       string             `json:"name,omitempty"`
	Technician *domain.Technician `json:"technician,omitempty"`
	Customer   *domain.Customer   `json:"customer,omitempty"`
}

// Login submits credentials, stores the issued token and verifies it before
// declaring success. A token that fails verification is cleared immediately
// so later screens never hit a surprise 401.
func (g *Gateway) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	env := g.rest.Do(ctx, http.MethodPost, "/login", map[string]any{
		"email":    strings.TrimSpace(email),
		"password": password,
	})
	if !env.Success {
		if env.NetworkError {
			return nil, fmt.Errorf("%w: %s", ErrNetwork, env.Error)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, env.ErrorOrDefault("login rejected"))
	}

	token := env.StringField("token", "accessToken", "access_token")
	if token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", ErrInvalidCredentials)
	}

	g.session.SetToken(token)
	if err := g.VerifyToken(ctx, token); err != nil {
		g.session.ClearToken()
		return nil, err
	}

	result, err := loginResultFromPayload(env.Data, token)
	if err != nil {
		g.session.ClearToken()
		return nil, err
	}
	g.log.Info("login verified", slog.String("role", result.Role))
	return result, nil
}

// VerifyToken asks the backend to confirm it accepts the token it issued.
func (g *Gateway) VerifyToken(ctx context.Context, token string) error {
	env := g.rest.Do(ctx, http.MethodPost, "/verify-token", map[string]any{"token": token})
	if !env.Success {
		if env.NetworkError {
			return fmt.Errorf("%w: %s", ErrNetwork, env.Error)
		}
		return fmt.Errorf("%w: %s", ErrTokenValidation, env.ErrorOrDefault("backend rejected its own token"))
	}
	return nil
}

// Logout clears the session locally. The backend keeps no session state.
func (g *Gateway) Logout() {
	g.session.ClearToken()
}

func loginResultFromPayload(payload any, token string) (*LoginResult, error) {
	// Some deployments wrap the login response in a data envelope.
	container := normalization.MapFromPayload(payload)
	if container == nil {
		return nil, fmt.Errorf("%w: login response not an object", ErrInvalidCredentials)
	}
	user := normalization.AsMap(container["user"])

	role := strings.ToLower(normalization.FirstString(container, "role"))
	if role == "" && user != nil {
		role = strings.ToLower(normalization.FirstString(user, "role"))
	}

	result := &LoginResult{Role: role, Token: token}
	switch role {
	case "admin":
		result.Name = coalesceName(container, user)
	case "tech", "technician":
		entity := normalization.AsMap(container["technician"])
		if entity == nil && user != nil {
			entity = normalization.AsMap(user["technician"])
		}
		if entity == nil {
			return nil, fmt.Errorf("%w: technician login without technician payload", ErrInvalidCredentials)
		}
		result.Role = "tech"
		technician := domain.TechnicianFromPayload(entity)
		result.Technician = &technician
		result.Name = technician.Name
	case "customer":
		entity := normalization.AsMap(container["customer"])
		if entity == nil && user != nil {
			entity = normalization.AsMap(user["customer"])
		}
		if entity == nil {
			return nil, fmt.Errorf("%w: customer login without customer payload", ErrInvalidCredentials)
		}
		customer := domain.CustomerFromPayload(entity)
		result.Customer = &customer
		result.Name = customer.CustomerName
	default:
		return nil, fmt.Errorf("%w: unrecognized role %q", ErrInvalidCredentials, role)
	}
	return result, nil
}

func coalesceName(container, user map[string]any) string {
	if name := normalization.FirstString(container, "name", "adminName"); name != "" {
		return name
	}
	if user != nil {
		return normalization.FirstString(user, "name", "fullName")
	}
	return ""
}

package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
    t.Helper()
    db := setupDB(t)
    return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterLoginParse(t *testing.T) {
    svc := newAuthService(t)
    ctx := context.Background()

    u, err := svc.Register(ctx, "Asha", "asha@example.com", "secret123")
    require.NoError(t, err)
    assert.Equal(t, model.RoleCustomer, u.Role)
    assert.NotEqual(t, "secret123", u.Password, "password must be hashed")

    token, logged, err := svc.Login(ctx, "asha@example.com", "secret123")
    require.NoError(t, err)
    assert.Equal(t, u.ID, logged.ID)

    claims, err := svc.Parse(token)
    require.NoError(t, err)
    assert.Equal(t, u.ID, claims.UserID)
    assert.Equal(t, model.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
    svc := newAuthService(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "Asha", "asha@example.com", "secret123")
    require.NoError(t, err)
    _, err = svc.Register(ctx, "Other", "asha@example.com", "different")
    assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
    svc := newAuthService(t)
    ctx := context.Background()

    _, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    _, err = svc.Register(ctx, "Asha", "asha@example.com", "secret123")
    require.NoError(t, err)
    _, _, err = svc.Login(ctx, "asha@example.com", "wrongpass")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserNotFound(t *testing.T) {
    svc := newAuthService(t)
    _, err := svc.GetUser(context.Background(), 404404)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestParseRejectsGarbage(t *testing.T) {
    svc := newAuthService(t)
    _, err := svc.Parse("not-a-token")
    assert.ErrorIs(t, err, ErrInvalidToken)
}

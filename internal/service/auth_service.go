package service

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

var (
    ErrEmailTaken         = errors.New("email already registered")
    ErrInvalidCredentials = errors.New("invalid email or password")
    ErrInvalidToken       = errors.New("invalid token")
    ErrUserNotFound       = errors.New("user not found")
)

// Claims JWT 负载
type Claims struct {
    UserID int64  `json:"uid"`
    Role   string `json:"role"`
    jwt.RegisteredClaims
}

// AuthService 注册 / 登录 / 令牌签发与校验
type AuthService struct {
    users  repository.UserRepository
    secret []byte
    ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) *AuthService {
    if ttl <= 0 {
        ttl = 24 * time.Hour
    }
    return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Register 注册新顾客
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
    if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
        return nil, ErrEmailTaken
    } else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    u := &model.User{Name: name, Email: email, Password: string(hash), Role: model.RoleCustomer}
    if err := s.users.Create(ctx, u); err != nil {
        return nil, err
    }
    return u, nil
}

// Login 校验口令并签发 JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
    u, err := s.users.GetByEmail(ctx, email)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return "", nil, ErrInvalidCredentials
        }
        return "", nil, err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return "", nil, ErrInvalidCredentials
    }
    token, err := s.issue(u)
    if err != nil {
        return "", nil, err
    }
    return token, u, nil
}

func (s *AuthService) issue(u *model.User) (string, error) {
    now := time.Now()
    claims := Claims{
        UserID: u.ID,
        Role:   u.Role,
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse 校验 bearer token，返回身份
func (s *AuthService) Parse(tokenStr string) (*Claims, error) {
    token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return s.secret, nil
    })
    if err != nil || !token.Valid {
        return nil, ErrInvalidToken
    }
    claims, ok := token.Claims.(*Claims)
    if !ok {
        return nil, ErrInvalidToken
    }
    return claims, nil
}

// GetUser 按ID取用户；不存在返回 ErrUserNotFound
func (s *AuthService) GetUser(ctx context.Context, id int64) (*model.User, error) {
    u, err := s.users.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    return u, nil
}

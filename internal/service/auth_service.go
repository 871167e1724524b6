package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/config"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/model"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is the single hashing cost used everywhere. Hashing happens
// exactly once, in this package — repositories only ever see opaque hashes.
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// The two creation endpoints enforce different allowed-role subsets. They are
// deliberately separate rules: the admin-facing endpoint may assign any role,
// self-registration is restricted to staff roles.
var (
	rolesCreacion = []string{"admin", "usuario", "guarda"}
	rolesRegistro = []string{"admin", "guarda"}
)

func rolPermitido(rol string, permitidos []string) bool {
	for _, r := range permitidos {
		if rol == r {
			return true
		}
	}
	return false
}

// Dispatcher enqueues fire-and-forget jobs consumed by the worker pool.
// Satisfied by *worker.Dispatcher.
type Dispatcher interface {
	EnqueueUltimoAcceso(ctx context.Context, userID string) error
	EnqueueEmail(ctx context.Context, to, subject, body string) error
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.RegistroResponse, error)
	RestablecerContrasena(ctx context.Context, req dto.ResetPasswordRequest) error
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) error
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo       repository.UsuarioRepository
	cfg        *config.Config
	dispatcher Dispatcher
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config, dispatcher Dispatcher) AuthService {
	return &authService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

// Login never reveals whether the email exists: lookup failures and password
// mismatches collapse into the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: the response never waits on — nor observes — this.
	if err := s.dispatcher.EnqueueUltimoAcceso(context.Background(), user.ID.String()); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("no se pudo encolar ultimo_acceso")
	}

	return &dto.LoginResponse{
		Success:      true,
		Message:      "Login exitoso",
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: dto.UsuarioPublico{
			ID:    user.ID.String(),
			Email: user.Email,
			Rol:   user.Rol,
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalido
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalido
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.Activo {
		return nil, ErrTokenInvalido
	}

	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success:      true,
		Message:      "Token renovado",
		Token:        accessToken,
		RefreshToken: newRefresh,
		User: dto.UsuarioPublico{
			ID:    user.ID.String(),
			Email: user.Email,
			Rol:   user.Rol,
		},
	}, nil
}

// Registro is the self-service registration flow. Its role subset is narrower
// than the direct creation endpoint and must stay a separate rule.
func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.RegistroResponse, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, ErrEmailInvalido
	}
	if !rolPermitido(req.Rol, rolesRegistro) {
		return nil, ErrRolInvalido
	}

	user, err := s.crear(ctx, &model.Usuario{
		Email:           strings.ToLower(req.Email),
		Rol:             req.Rol,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		NumeroDocumento: &req.NumeroDocumento,
		Telefono:        req.Telefono,
		Activo:          true,
	}, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.dispatcher.EnqueueEmail(context.Background(), user.Email,
		"Bienvenido al sistema de control de acceso",
		"Su cuenta fue creada exitosamente con el rol "+user.Rol+"."); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("no se pudo encolar email de bienvenida")
	}

	return &dto.RegistroResponse{
		Success: true,
		Message: "Usuario registrado exitosamente",
		UserID:  user.ID.String(),
	}, nil
}

// CrearUsuario is the admin-facing direct creation endpoint; profile fields
// are optional here.
func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, ErrEmailInvalido
	}
	if !rolPermitido(req.Rol, rolesCreacion) {
		return nil, ErrRolInvalido
	}

	user, err := s.crear(ctx, &model.Usuario{
		Email:           strings.ToLower(req.Email),
		Rol:             req.Rol,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		NumeroDocumento: req.NumeroDocumento,
		Telefono:        req.Telefono,
		Activo:          true,
	}, req.Password)
	if err != nil {
		return nil, err
	}

	return &dto.CrearUsuarioResponse{
		Message: "Usuario creado exitosamente",
		ID:      user.ID.String(),
		Usuario: dto.UsuarioPublico{ID: user.ID.String(), Email: user.Email, Rol: user.Rol},
	}, nil
}

// crear hashes the password and inserts the row. The email and documento
// pre-checks give precise messages on the common path; the unique indexes are
// the real enforcement against concurrent duplicates.
func (s *authService) crear(ctx context.Context, user *model.Usuario, password string) (*model.Usuario, error) {
	if _, err := s.repo.FindByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailRegistrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user.NumeroDocumento != nil {
		if _, err := s.repo.FindByDocumento(ctx, *user.NumeroDocumento); err == nil {
			return nil, ErrDocumentoRegistrado
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistrado
		}
		return nil, err
	}
	return user, nil
}

// RestablecerContrasena is the no-login recovery path: identity is claimed via
// documento plus a substring of the full name. The old password is never
// required, by design.
func (s *authService) RestablecerContrasena(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.repo.FindByDocumentoNombre(ctx, req.Documento, req.Nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NuevaContrasena), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	if err := s.dispatcher.EnqueueEmail(context.Background(), user.Email,
		"Contraseña restablecida",
		"Su contraseña fue restablecida. Si no fue usted, contacte al administrador."); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("no se pudo encolar email de restablecimiento")
	}
	return nil
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Rol:           u.Rol,
		FechaCreacion: u.FechaCreacion.Format(time.RFC3339),
	}
	if u.UltimoAcceso != nil {
		acceso := u.UltimoAcceso.Format(time.RFC3339)
		resp.UltimoAcceso = &acceso
	}
	return resp
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapUsuario(u))
	}
	return result, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	resp := mapUsuario(*u)
	return &resp, nil
}

// ActualizarUsuario overwrites every mutable field by id. No business
// validation beyond the DTO tags, matching the original contract; the hash is
// never touched here.
func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) error {
	return s.repo.Update(ctx, &model.Usuario{
		ID:              id,
		Email:           strings.ToLower(req.Email),
		Rol:             req.Rol,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		NumeroDocumento: req.NumeroDocumento,
		Telefono:        req.Telefono,
	})
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authService) generateToken(u *model.Usuario, dur time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"rol":     u.Rol,
		"exp":     time.Now().Add(dur).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/dto"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Fake services ────────────────────────────────────────────────────────────

type fakePersonaService struct {
	crearErr    error
	buscarErr   error
	eliminarErr error
}

func (f *fakePersonaService) Crear(context.Context, dto.CrearPersonaRequest) (*dto.CrearPersonaResponse, error) {
	if f.crearErr != nil {
		return nil, f.crearErr
	}
	return &dto.CrearPersonaResponse{Success: true, Message: "Persona registrada exitosamente", ID: uuid.NewString()}, nil
}

func (f *fakePersonaService) Listar(context.Context) (*dto.ListarPersonasResponse, error) {
	return &dto.ListarPersonasResponse{Success: true, Data: []dto.PersonaResponse{}, Total: 0}, nil
}

func (f *fakePersonaService) ObtenerPorID(context.Context, uuid.UUID) (*dto.PersonaResponse, error) {
	return nil, service.ErrPersonaNoEncontrada
}

func (f *fakePersonaService) BuscarPorDocumento(context.Context, string) (*dto.BuscarPersonaResponse, error) {
	if f.buscarErr != nil {
		return nil, f.buscarErr
	}
	return &dto.BuscarPersonaResponse{Mensaje: "Persona encontrada", Existe: true}, nil
}

func (f *fakePersonaService) Actualizar(context.Context, string, dto.ActualizarPersonaRequest) error {
	return nil
}

func (f *fakePersonaService) Eliminar(context.Context, string) error { return f.eliminarErr }

func (f *fakePersonaService) GenerarCarnet(context.Context, string) (string, error) {
	return "", service.ErrPersonaNoEncontrada
}

type fakeAuthService struct {
	loginErr    error
	registroErr error
	resetErr    error
}

func (f *fakeAuthService) Login(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.LoginResponse{Success: true, Message: "Login exitoso", Token: "t", RefreshToken: "r"}, nil
}

func (f *fakeAuthService) Refresh(context.Context, string) (*dto.LoginResponse, error) {
	return nil, service.ErrTokenInvalido
}

func (f *fakeAuthService) Registro(context.Context, dto.RegistroRequest) (*dto.RegistroResponse, error) {
	if f.registroErr != nil {
		return nil, f.registroErr
	}
	return &dto.RegistroResponse{Success: true, Message: "Usuario registrado exitosamente", UserID: uuid.NewString()}, nil
}

func (f *fakeAuthService) RestablecerContrasena(context.Context, dto.ResetPasswordRequest) error {
	return f.resetErr
}

func (f *fakeAuthService) CrearUsuario(context.Context, dto.CrearUsuarioRequest) (*dto.CrearUsuarioResponse, error) {
	return &dto.CrearUsuarioResponse{Message: "Usuario creado exitosamente", ID: uuid.NewString()}, nil
}

func (f *fakeAuthService) ListarUsuarios(context.Context) ([]dto.UsuarioResponse, error) {
	return []dto.UsuarioResponse{}, nil
}

func (f *fakeAuthService) ObtenerUsuario(context.Context, uuid.UUID) (*dto.UsuarioResponse, error) {
	return nil, service.ErrUsuarioNoEncontrado
}

func (f *fakeAuthService) ActualizarUsuario(context.Context, uuid.UUID, dto.ActualizarUsuarioRequest) error {
	return nil
}

func (f *fakeAuthService) EliminarUsuario(context.Context, uuid.UUID) error { return nil }

// ── Personas ─────────────────────────────────────────────────────────────────

func personasRouter(svc service.PersonaService) *gin.Engine {
	h := NewPersonasHandler(svc)
	r := gin.New()
	r.GET("/v1/personas", h.Listar)
	r.POST("/v1/personas", h.Crear)
	r.GET("/v1/personas/:id", h.ObtenerPorID)
	r.GET("/v1/personas/documento/:numero_documento", h.BuscarPorDocumento)
	r.DELETE("/v1/personas/documento/:numero_documento", h.Eliminar)
	return r
}

func TestCrearPersonaExitosa(t *testing.T) {
	r := personasRouter(&fakePersonaService{})
	w := performRequest(r, http.MethodPost, "/v1/personas", `{
		"nombre":"Carlos","apellido":"Rojas","tipo_documento":"CC",
		"numero_documento":"100200300","tipo_rol":"visitante"
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CrearPersonaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
}

func TestCrearPersonaDuplicadaResponde400(t *testing.T) {
	r := personasRouter(&fakePersonaService{crearErr: service.ErrDocumentoRegistrado})
	w := performRequest(r, http.MethodPost, "/v1/personas", `{
		"nombre":"Carlos","apellido":"Rojas","tipo_documento":"CC",
		"numero_documento":"100200300","tipo_rol":"visitante"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"El número de documento ya está registrado"}`, w.Body.String())
}

func TestCrearPersonaCamposFaltantes400(t *testing.T) {
	r := personasRouter(&fakePersonaService{})
	w := performRequest(r, http.MethodPost, "/v1/personas", `{"nombre":"Carlos"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "Apellido")
	assert.Contains(t, resp.Fields, "NumeroDocumento")
}

func TestObtenerPersonaIDInvalido400(t *testing.T) {
	r := personasRouter(&fakePersonaService{})
	w := performRequest(r, http.MethodGet, "/v1/personas/no-es-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuscarPersonaNoEncontrada404(t *testing.T) {
	r := personasRouter(&fakePersonaService{buscarErr: service.ErrPersonaNoEncontrada})
	w := performRequest(r, http.MethodGet, "/v1/personas/documento/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"mensaje":"Persona no encontrada","existe":false}`, w.Body.String())
}

func TestEliminarPersonaMensaje(t *testing.T) {
	r := personasRouter(&fakePersonaService{})
	w := performRequest(r, http.MethodDelete, "/v1/personas/documento/100200300", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensaje":"Persona eliminada (inactivada)"}`, w.Body.String())
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func authRouter(svc service.AuthService) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/registro", h.Registro)
	r.POST("/v1/auth/restablecer", h.RestablecerContrasena)
	return r
}

// Both failure modes must produce a byte-identical response.
func TestLoginInvalido401(t *testing.T) {
	r := authRouter(&fakeAuthService{loginErr: service.ErrCredencialesInvalidas})

	w1 := performRequest(r, http.MethodPost, "/v1/auth/login", `{"email":"nadie@x.com","password":"p"}`)
	w2 := performRequest(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@x.com","password":"mala"}`)

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.JSONEq(t, `{"detail":"Credenciales inválidas"}`, w1.Body.String())
}

func TestLoginCamposFaltantes400(t *testing.T) {
	r := authRouter(&fakeAuthService{})
	w := performRequest(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistroRolInvalido400(t *testing.T) {
	r := authRouter(&fakeAuthService{registroErr: service.ErrRolInvalido})
	w := performRequest(r, http.MethodPost, "/v1/auth/registro", `{
		"nombre":"Ana","apellido":"García","numero_documento":"100200300",
		"email":"ana@x.com","rol":"usuario","password":"clave123"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Rol inválido"}`, w.Body.String())
}

func TestRestablecerNoEncontrado404(t *testing.T) {
	r := authRouter(&fakeAuthService{resetErr: service.ErrUsuarioNoEncontrado})
	w := performRequest(r, http.MethodPost, "/v1/auth/restablecer", `{
		"documento":"999","nombre":"Ana","nuevaContrasena":"nueva456"
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Usuario no encontrado con los datos proporcionados"}`, w.Body.String())
}

func TestRestablecerExitoso(t *testing.T) {
	r := authRouter(&fakeAuthService{})
	w := performRequest(r, http.MethodPost, "/v1/auth/restablecer", `{
		"documento":"100200300","nombre":"Ana","nuevaContrasena":"nueva456"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Contraseña restablecida correctamente"}`, w.Body.String())
}

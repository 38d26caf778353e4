package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/apperrors"
	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/repository"
	"greenlab-checklist-be/internal/service"
)

// fakeUserRepo is an in-memory repository.UserRepository so the handlers run
// against the real service and real validation.
type fakeUserRepo struct {
	users      map[int64]*entities.User
	nextID     int64
	referenced map[int64]bool
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[int64]*entities.User),
		nextID:     1,
		referenced: make(map[int64]bool),
	}
}

func withoutHash(u *entities.User) *entities.User {
	out := *u
	out.PasswordHash = ""
	return &out
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for id := f.nextID - 1; id >= 1; id-- {
		if u, ok := f.users[id]; ok {
			users = append(users, withoutHash(u))
		}
	}
	return users, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return withoutHash(u), nil
}

func (f *fakeUserRepo) FindByIDWithHash(_ context.Context, id int64) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, nombre, email, passwordHash, rol string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, apperrors.ErrDuplicate
		}
	}
	user := &entities.User{ID: f.nextID, Nombre: nombre, Email: email, PasswordHash: passwordHash, Rol: rol}
	f.users[user.ID] = user
	f.nextID++
	return withoutHash(user), nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, nombre, email, passwordHash, rol string) (*entities.User, error) {
	if _, ok := f.users[id]; !ok {
		return nil, apperrors.ErrNotFound
	}
	for otherID, u := range f.users {
		if otherID != id && u.Email == email {
			return nil, apperrors.ErrDuplicate
		}
	}
	user := &entities.User{ID: id, Nombre: nombre, Email: email, PasswordHash: passwordHash, Rol: rol}
	f.users[id] = user
	return withoutHash(user), nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	if f.referenced[id] {
		return apperrors.ErrReferenced
	}
	delete(f.users, id)
	return nil
}

// setupRouter wires the user routes the same way main does.
func setupRouter(repo repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := NewUserController(service.NewUserService(repo), zap.NewNop())

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NoRoute)
	r.NoMethod(NoMethod)

	api := r.Group("/api")
	api.GET("/usuarios", uc.List)
	api.POST("/usuarios", uc.Create)
	api.GET("/usuarios/:id", uc.GetByID)
	api.PUT("/usuarios/:id", uc.Update)
	api.PATCH("/usuarios/:id", uc.Update)
	api.DELETE("/usuarios/:id", uc.Delete)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

func TestCreateUser(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.OK {
		t.Fatal("expected ok envelope")
	}

	var data map[string]any
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if data["id"].(float64) != 1 || data["nombre"] != "Ana" || data["email"] != "ana@x.com" || data["rol"] != "lab_staff" {
		t.Errorf("unexpected payload: %v", data)
	}
	if _, exposed := data["password"]; exposed {
		t.Error("password appears in the response")
	}
	if _, exposed := data["password_hash"]; exposed {
		t.Error("password hash appears in the response")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)
	w := doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Otra","email":"ana@x.com","password":"otra"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.OK || env.Message != "El email ya existe" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	for _, body := range []string{`{`, `[1,2]`, `"texto"`, `42`} {
		w := doJSON(t, r, http.MethodPost, "/api/usuarios", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
			continue
		}
		env := decodeEnvelope(t, w)
		if env.OK || env.Message != "Solicitud incorrecta" {
			t.Errorf("body %q: unexpected envelope: %+v", body, env)
		}
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Faltan campos obligatorios: nombre, email, password" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCreateUserInvalidRole(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"pw","rol":"root"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "Rol inválido" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestGetUserNotFound(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodGet, "/api/usuarios/999", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.OK || env.Message != "Usuario no encontrado" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestGetUserInvalidID(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodGet, "/api/usuarios/abc", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	created := doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret","rol":"lab_chief"}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", created.Code)
	}

	fetched := doJSON(t, r, http.MethodGet, "/api/usuarios/1", "")
	if fetched.Code != http.StatusOK {
		t.Fatalf("get failed: %d", fetched.Code)
	}

	if !bytes.Equal(decodeEnvelope(t, created).Data, decodeEnvelope(t, fetched).Data) {
		t.Errorf("created and fetched records differ: %s vs %s", created.Body.String(), fetched.Body.String())
	}
}

func TestPatchInvalidRoleLeavesUserUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	r := setupRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/usuarios/1", `{"rol":"invalid"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	if repo.users[1].Rol != entities.RoleLabStaff {
		t.Errorf("rejected patch changed the stored role to %q", repo.users[1].Rol)
	}
}

func TestPutUpdatesUser(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)

	w := doJSON(t, r, http.MethodPut, "/api/usuarios/1", `{"nombre":"Ana María","rol":"lab_chief"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var data map[string]any
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if data["nombre"] != "Ana María" || data["email"] != "ana@x.com" || data["rol"] != "lab_chief" {
		t.Errorf("unexpected payload: %v", data)
	}
}

func TestDeleteUser(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/usuarios/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestDeleteMissingUser(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodDelete, "/api/usuarios/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteReferencedUser(t *testing.T) {
	repo := newFakeUserRepo()
	r := setupRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/usuarios", `{"nombre":"Ana","email":"ana@x.com","password":"secret"}`)
	repo.referenced[1] = true

	w := doJSON(t, r, http.MethodDelete, "/api/usuarios/1", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if _, ok := repo.users[1]; !ok {
		t.Error("referenced user was deleted")
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	for i := 1; i <= 3; i++ {
		doJSON(t, r, http.MethodPost, "/api/usuarios",
			fmt.Sprintf(`{"nombre":"U%d","email":"u%d@x.com","password":"pw"}`, i, i))
	}

	w := doJSON(t, r, http.MethodGet, "/api/usuarios", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var users []entities.User
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &users); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, wantID := range []int64{3, 2, 1} {
		if users[i].ID != wantID {
			t.Errorf("position %d: expected id %d, got %d", i, wantID, users[i].ID)
		}
	}
}

func TestNoRoute(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodGet, "/api/desconocido", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.OK || env.Message != "Recurso no encontrado" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestNoMethod(t *testing.T) {
	r := setupRouter(newFakeUserRepo())

	w := doJSON(t, r, http.MethodDelete, "/api/usuarios", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.OK || env.Message != "Método no permitido" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

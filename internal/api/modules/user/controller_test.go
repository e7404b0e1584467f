package user_module

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user_store "github.com/promptline/relay/internal/stores/user"
	"github.com/promptline/relay/pkg/sdk"
	"github.com/promptline/relay/pkg/utils"
)

// newTestRouter initializes the module with an in-memory store and returns a router
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	InitWithStore(user_store.NewInMemoryStore())

	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), utils.NewConfig(nil))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("creates a valid user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{
			UserID: 42,
			Name:   "Alice",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var out sdk.ApiResponse[sdk.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, sdk.StatusSuccess, out.Status)
		assert.EqualValues(t, 42, out.Data.UserID)
		assert.Equal(t, "Alice", out.Data.Name)
		assert.NotZero(t, out.Data.ID)
	})

	t.Run("duplicate user id returns conflict", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{
			UserID: 42,
			Name:   "Alice Again",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("non-positive user id is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{
			UserID: 0,
			Name:   "Nobody",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("overlong name is rejected", func(t *testing.T) {
		name := make([]byte, 51)
		for i := range name {
			name[i] = 'a'
		}

		w := doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{
			UserID: 43,
			Name:   string(name),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	engine := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{UserID: 42, Name: "Alice"})

	t.Run("existing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/users/42", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out sdk.ApiResponse[sdk.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Alice", out.Data.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/users/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	engine := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{UserID: 7, Name: "Carol"})
	doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{UserID: 3, Name: "Bob"})

	w := doJSON(t, engine, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out sdk.ApiResponse[[]sdk.User]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data, 2)
	assert.EqualValues(t, 3, out.Data[0].UserID)
	assert.EqualValues(t, 7, out.Data[1].UserID)
}

func TestUpdateUser(t *testing.T) {
	engine := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{UserID: 42, Name: "Alice"})

	t.Run("updates an existing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/users/42", sdk.CreateUserRequest{Name: "Alice Cooper"})
		require.Equal(t, http.StatusOK, w.Code)

		var out sdk.ApiResponse[sdk.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Alice Cooper", out.Data.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/users/99", sdk.CreateUserRequest{Name: "Nobody"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpsertUser(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("creates a missing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users/upsert", sdk.CreateUserRequest{
			UserID: 42,
			Name:   "Alice",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("updates an existing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users/upsert", sdk.CreateUserRequest{
			UserID: 42,
			Name:   "Alice Cooper",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var out sdk.ApiResponse[sdk.User]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Alice Cooper", out.Data.Name)
	})
}

func TestDeleteUser(t *testing.T) {
	engine := newTestRouter(t)
	doJSON(t, engine, http.MethodPost, "/api/users", sdk.CreateUserRequest{UserID: 42, Name: "Alice"})

	t.Run("deletes an existing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/users/42", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, engine, http.MethodGet, "/api/users/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/users/42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestValidator(t *testing.T) {
	validator := NewValidator()

	t.Run("nil request", func(t *testing.T) {
		_, err := validator.ValidateRequest(nil)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("valid request maps to an item", func(t *testing.T) {
		item, err := validator.ValidateRequest(&sdk.CreateUserRequest{UserID: 42, Name: "Alice"})
		require.NoError(t, err)
		assert.EqualValues(t, 42, item.UserID)
		assert.Equal(t, "Alice", item.Name)
	})

	t.Run("negative user id", func(t *testing.T) {
		err := validator.ValidateUserID(-1)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

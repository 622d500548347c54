package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wearcast/wearcast/internal/auth"
	"github.com/wearcast/wearcast/internal/handler/dto"
	"github.com/wearcast/wearcast/internal/middleware"
	"github.com/wearcast/wearcast/internal/model"
	"github.com/wearcast/wearcast/internal/repository"
	"github.com/wearcast/wearcast/internal/service"
)

type memoryStore struct {
	users map[string]*model.User
	items map[string]*model.Item
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[string]*model.User),
		items: make(map[string]*model.Item),
	}
}

func (m *memoryStore) CreateUser(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memoryStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memoryStore) UpdateUserProfile(_ context.Context, id, name, avatar string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user.Name = name
	user.Avatar = avatar
	return user, nil
}

func (m *memoryStore) CreateItem(_ context.Context, item *model.Item) error {
	m.items[item.ID] = item
	return nil
}

func (m *memoryStore) GetItemByID(_ context.Context, id string) (*model.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return item, nil
}

func (m *memoryStore) ListItems(_ context.Context) ([]*model.Item, error) {
	out := make([]*model.Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *memoryStore) DeleteItem(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryStore) AddLike(_ context.Context, itemID, userID string) (*model.Item, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	if !slices.Contains(item.Likes, userID) {
		item.Likes = append(item.Likes, userID)
	}
	return item, nil
}

func (m *memoryStore) RemoveLike(_ context.Context, itemID, userID string) (*model.Item, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	item.Likes = slices.DeleteFunc(item.Likes, func(id string) bool { return id == userID })
	return item, nil
}

// newTestRouter wires the full handler stack against an in-memory store,
// mirroring the production route layout.
func newTestRouter(t *testing.T) (*chi.Mux, *memoryStore) {
	t.Helper()

	store := newMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewHasher(4)
	tokens := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), 7*24*time.Hour)

	userSvc := service.NewUserService(store, hasher, tokens, nil)
	itemSvc := service.NewItemService(store, nil, 0, logger, nil)

	authHandler := NewAuthHandler(userSvc, logger)
	userHandler := NewUserHandler(userSvc, logger)
	itemHandler := NewItemHandler(itemSvc, logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
		r.Get("/items", itemHandler.List)
		r.Get("/items/{itemId}", itemHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(middleware.AuthConfig{Logger: logger, Verifier: tokens}))
			r.Get("/users/me", userHandler.Me)
			r.Patch("/users/me", userHandler.UpdateMe)
			r.Post("/items", itemHandler.Create)
			r.Delete("/items/{itemId}", itemHandler.Delete)
			r.Put("/items/{itemId}/likes", itemHandler.Like)
			r.Delete("/items/{itemId}/likes", itemHandler.Unlike)
		})
	})

	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func signupAndSignin(t *testing.T, r http.Handler, email string) (userID, token string) {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/api/v1/signup", "", dto.SignupRequest{
		Name:     "Terry",
		Avatar:   "https://example.com/avatar.png",
		Email:    email,
		Password: "correct horse battery",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", rec.Code, rec.Body.String())
	}
	var user dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/v1/signin", "", dto.SigninRequest{
		Email:    email,
		Password: "correct horse battery",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status = %d, body %s", rec.Code, rec.Body.String())
	}
	var signin dto.SigninResponse
	if err := json.NewDecoder(rec.Body).Decode(&signin); err != nil {
		t.Fatalf("failed to decode signin response: %v", err)
	}

	return user.ID, signin.Token
}

func createItem(t *testing.T, r http.Handler, token string) dto.ItemResponse {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/api/v1/items", token, dto.CreateItemRequest{
		Name:     "Rain jacket",
		Weather:  "cold",
		ImageURL: "https://example.com/jacket.jpg",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item status = %d, body %s", rec.Code, rec.Body.String())
	}
	var item dto.ItemResponse
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("failed to decode item response: %v", err)
	}
	return item
}

func TestSignupResponseOmitsPasswordMaterial(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/signup", "", dto.SignupRequest{
		Name:     "Terry",
		Avatar:   "https://example.com/avatar.png",
		Email:    "terry@example.com",
		Password: "correct horse battery",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", rec.Code, rec.Body.String())
	}

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}
	for _, field := range []string{"password", "password_hash", "passwordHash"} {
		if _, ok := raw[field]; ok {
			t.Errorf("signup response contains %q", field)
		}
	}
}

func TestItemCreateRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/items", "", dto.CreateItemRequest{
		Name:     "Rain jacket",
		Weather:  "cold",
		ImageURL: "https://example.com/jacket.jpg",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestItemListIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := signupAndSignin(t, r, "terry@example.com")
	createItem(t, r, token)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/items", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var list dto.ItemListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(list.Data) != 1 {
		t.Errorf("got %d items, want 1", len(list.Data))
	}
	if list.Data[0].Likes == nil {
		t.Error("likes serialized as null, want empty array")
	}
}

func TestItemGet(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := signupAndSignin(t, r, "terry@example.com")
	item := createItem(t, r, token)

	t.Run("single item is public", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/items/"+item.ID, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("get status = %d, body %s", rec.Code, rec.Body.String())
		}

		var got dto.ItemResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode item response: %v", err)
		}
		if got.ID != item.ID {
			t.Errorf("ID = %q, want %q", got.ID, item.ID)
		}
	})

	t.Run("missing item yields 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/items/01HZZZZZZZZZZZZZZZZZZZZZZZ", "", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed ID yields 400", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/items/not-a-ulid", "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestItemDelete(t *testing.T) {
	t.Run("owner deletes and gets confirmation", func(t *testing.T) {
		r, store := newTestRouter(t)
		_, token := signupAndSignin(t, r, "terry@example.com")
		item := createItem(t, r, token)

		rec := doJSON(t, r, http.MethodDelete, "/api/v1/items/"+item.ID, token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete status = %d, body %s", rec.Code, rec.Body.String())
		}

		var msg dto.MessageResponse
		if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode delete response: %v", err)
		}
		if msg.Message != "Item deleted" {
			t.Errorf("message = %q, want %q", msg.Message, "Item deleted")
		}
		if len(store.items) != 0 {
			t.Error("item still in store after delete")
		}
	})

	t.Run("status ordering across failure modes", func(t *testing.T) {
		r, _ := newTestRouter(t)
		_, ownerToken := signupAndSignin(t, r, "owner@example.com")
		_, strangerToken := signupAndSignin(t, r, "stranger@example.com")
		item := createItem(t, r, ownerToken)

		tests := []struct {
			name       string
			path       string
			token      string
			wantStatus int
		}{
			{"malformed ID", "/api/v1/items/not-a-ulid", ownerToken, http.StatusBadRequest},
			{"missing item", "/api/v1/items/01HZZZZZZZZZZZZZZZZZZZZZZZ", ownerToken, http.StatusNotFound},
			{"non-owner", "/api/v1/items/" + item.ID, strangerToken, http.StatusForbidden},
			{"no token", "/api/v1/items/" + item.ID, "", http.StatusUnauthorized},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doJSON(t, r, http.MethodDelete, tt.path, tt.token, nil)
				if rec.Code != tt.wantStatus {
					t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
				}
			})
		}
	})
}

func TestItemLikes(t *testing.T) {
	r, _ := newTestRouter(t)
	ownerID, ownerToken := signupAndSignin(t, r, "owner@example.com")
	fanID, fanToken := signupAndSignin(t, r, "fan@example.com")
	item := createItem(t, r, ownerToken)

	likePath := "/api/v1/items/" + item.ID + "/likes"

	t.Run("repeated likes keep one entry", func(t *testing.T) {
		var last dto.ItemResponse
		for i := 0; i < 2; i++ {
			rec := doJSON(t, r, http.MethodPut, likePath, fanToken, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("like status = %d, body %s", rec.Code, rec.Body.String())
			}
			if err := json.NewDecoder(rec.Body).Decode(&last); err != nil {
				t.Fatalf("failed to decode like response: %v", err)
			}
		}
		if len(last.Likes) != 1 || last.Likes[0] != fanID {
			t.Errorf("Likes = %v, want [%s]", last.Likes, fanID)
		}
	})

	t.Run("owner can like their own item", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, likePath, ownerToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("like status = %d", rec.Code)
		}
		var got dto.ItemResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode like response: %v", err)
		}
		if !slices.Contains(got.Likes, ownerID) {
			t.Errorf("Likes = %v, want owner included", got.Likes)
		}
	})

	t.Run("unlike removes only the caller", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, likePath, fanToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("unlike status = %d", rec.Code)
		}
		var got dto.ItemResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode unlike response: %v", err)
		}
		if slices.Contains(got.Likes, fanID) {
			t.Error("fan still present after unlike")
		}
		if !slices.Contains(got.Likes, ownerID) {
			t.Error("unlike removed another user's like")
		}
	})

	t.Run("likes require auth", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, likePath, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	userID, token := signupAndSignin(t, r, "terry@example.com")

	t.Run("me returns the caller's profile", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/users/me", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("me status = %d", rec.Code)
		}
		var user dto.UserResponse
		if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode me response: %v", err)
		}
		if user.ID != userID {
			t.Errorf("ID = %q, want %q", user.ID, userID)
		}
	})

	t.Run("patch updates name and avatar", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPatch, "/api/v1/users/me", token, dto.UpdateProfileRequest{
			Name:   "Terrence",
			Avatar: "https://example.com/new.png",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body.String())
		}
		var user dto.UserResponse
		if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode patch response: %v", err)
		}
		if user.Name != "Terrence" {
			t.Errorf("Name = %q, want %q", user.Name, "Terrence")
		}
	})

	t.Run("me without token is rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/users/me", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

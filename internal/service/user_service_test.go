package service

import (
	"context"
	"errors"
	"testing"

	"ternakku/internal/model"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	if user.ID == "" {
		user.ID = "user-generated"
	}
	cp := *user
	r.users[user.ID] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByGroup(ctx context.Context, groupID string) ([]model.User, error) {
	out := []model.User{}
	for _, u := range r.users {
		if u.GroupID == groupID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func TestUserCreate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user := &model.User{Username: "budi", Name: "Pak Budi", Role: model.RolePeternak}
	if _, err := svc.Create(ctx, user, "rahasia123"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "rahasia123" {
		t.Error("password stored unhashed")
	}

	dup := &model.User{Username: "budi", Name: "Budi Kedua", Role: model.RolePeternak}
	if _, err := svc.Create(ctx, dup, "lainnya"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
}

func TestUserUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := &model.User{Username: "sari", Name: "Bu Sari", Role: model.RolePeternak}
	id, err := svc.Create(ctx, user, "rahasia123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	originalHash := repo.users[id].PasswordHash

	update := &model.User{
		ID:       id,
		Username: "sari",
		Name:     "Bu Sari Dewi",
		Role:     model.RolePenyuluh,
		GroupID:  "g1",
	}
	if err := svc.Update(ctx, update); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored := repo.users[id]
	if stored.Name != "Bu Sari Dewi" || stored.Role != model.RolePenyuluh || stored.GroupID != "g1" {
		t.Errorf("stored user = %+v", stored)
	}
	// The update surface never touches credentials.
	if stored.PasswordHash != originalHash {
		t.Error("update changed the password hash")
	}

	missing := &model.User{ID: "nope", Username: "x", Name: "X", Role: model.RoleAdmin}
	if err := svc.Update(ctx, missing); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown id: got %v, want ErrUserNotFound", err)
	}
}

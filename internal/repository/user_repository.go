package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/utils"
)

const usersType = "Users"

// UserRepo persists Users items and enforces the advisory email/mobile
// uniqueness scans.  Two concurrent creates with the same email can both
// pass the scan; the table has no conditional guard for it.
type UserRepo struct {
	Store *store.Store
	Cost  int // bcrypt cost
}

func NewUserRepo(s *store.Store, bcryptCost int) *UserRepo {
	return &UserRepo{Store: s, Cost: bcryptCost}
}

func decodeUser(item store.Item) model.User {
	return model.User{
		ID:           store.GetS(item, store.SortAttr),
		Username:     store.GetS(item, "username"),
		Email:        store.GetS(item, "email"),
		MobileNumber: store.GetS(item, "mobile_number"),
		PasswordHash: store.GetS(item, "password"),
		Role:         store.GetS(item, "role"),
		Disabled:     store.GetBool(item, "disabled"),
		CreatedAt:    store.GetS(item, "created_at"),
		UpdatedAt:    store.GetS(item, "updated_at"),
	}
}

// checkUnique scans all users and fails when another user (id != selfID)
// already holds the email or mobile number.  Empty values are skipped.
func (r *UserRepo) checkUnique(ctx context.Context, email, mobile, selfID string) error {
	items, err := r.Store.ScanType(ctx, usersType)
	if err != nil {
		return err
	}
	for _, it := range items {
		if store.GetS(it, store.SortAttr) == selfID {
			continue
		}
		if email != "" && store.GetS(it, "email") == email {
			return ErrEmailExists
		}
		if mobile != "" && store.GetS(it, "mobile_number") == mobile {
			return ErrMobileExists
		}
	}
	return nil
}

// Create hashes the password and writes a new Users item.
func (r *UserRepo) Create(ctx context.Context, reg model.UserRegister, role string) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if err := r.checkUnique(ctx, email, reg.MobileNumber, ""); err != nil {
		return model.User{}, err
	}

	hash, err := utils.HashPassword(reg.Password, r.Cost)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	u := model.User{
		ID:           uuid.NewString(),
		Username:     reg.Username,
		Email:        email,
		MobileNumber: reg.MobileNumber,
		PasswordHash: hash,
		Role:         role,
		Disabled:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	item := store.Item{
		store.PartitionAttr: store.S(usersType),
		store.SortAttr:      store.S(u.ID),
		"username":          store.S(u.Username),
		"email":             store.S(u.Email),
		"mobile_number":     store.S(u.MobileNumber),
		"password":          store.S(u.PasswordHash),
		"role":              store.S(u.Role),
		"disabled":          store.Bool(false),
		"created_at":        store.S(now),
		"updated_at":        store.S(now),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// GetByID loads a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	item, err := r.Store.Get(ctx, usersType, id)
	if err != nil {
		return model.User{}, err
	}
	if item == nil {
		return model.User{}, ErrNotFound
	}
	return decodeUser(item), nil
}

// GetByEmail finds a user by normalized email via scan+filter.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	items, err := r.Store.ScanType(ctx, usersType)
	if err != nil {
		return model.User{}, err
	}
	for _, it := range items {
		if store.GetS(it, "email") == email {
			return decodeUser(it), nil
		}
	}
	return model.User{}, ErrNotFound
}

// List returns every user.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	items, err := r.Store.ScanType(ctx, usersType)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(items))
	for _, it := range items {
		users = append(users, decodeUser(it))
	}
	return users, nil
}

// IsEmpty reports whether no Users items exist.
func (r *UserRepo) IsEmpty(ctx context.Context) (bool, error) {
	items, err := r.Store.ScanType(ctx, usersType)
	if err != nil {
		return false, err
	}
	return len(items) == 0, nil
}

// Bootstrap creates the first user with the superadmin role regardless of
// the requested role.  It fails once any user exists, closing the path.
func (r *UserRepo) Bootstrap(ctx context.Context, reg model.UserRegister) (model.User, error) {
	empty, err := r.IsEmpty(ctx)
	if err != nil {
		return model.User{}, err
	}
	if !empty {
		return model.User{}, ErrBootstrapClosed
	}
	return r.Create(ctx, reg, model.RoleSuperadmin)
}

// Update applies the provided fields only.  Email and mobile changes re-run
// the uniqueness scan against other users.
func (r *UserRepo) Update(ctx context.Context, id string, upd model.UserUpdate) (model.User, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.User{}, err
	}

	var email, mobile string
	if upd.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.MobileNumber != nil {
		mobile = *upd.MobileNumber
	}
	if email != "" || mobile != "" {
		if err := r.checkUnique(ctx, email, mobile, id); err != nil {
			return model.User{}, err
		}
	}

	changes := store.Item{}
	if upd.Username != nil {
		changes["username"] = store.S(*upd.Username)
	}
	if upd.Email != nil {
		changes["email"] = store.S(email)
	}
	if upd.MobileNumber != nil {
		changes["mobile_number"] = store.S(mobile)
	}
	if upd.Password != nil {
		hash, err := utils.HashPassword(*upd.Password, r.Cost)
		if err != nil {
			return model.User{}, err
		}
		changes["password"] = store.S(hash)
	}
	if upd.Disabled != nil {
		changes["disabled"] = store.Bool(*upd.Disabled)
	}
	changes["updated_at"] = store.S(time.Now().UTC().Format(time.RFC3339))

	if err := r.Store.Update(ctx, usersType, id, changes); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user, reporting ErrNotFound when absent.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, usersType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, usersType, id)
}

package store

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"

	"queryhub.app/api/internal/model"
)

type userStore struct {
	db arangodb.Database
}

func newUserStore(db arangodb.Database) UserStore {
	return &userStore{db: db}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	doc, err := queryOne[userDoc](ctx, s.db, `
		FOR d IN users
			FILTER d._key == @key
			RETURN d
	`, map[string]any{"key": docKey(id)})
	if err != nil {
		return nil, err
	}
	return toUserModel(*doc)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	doc, err := queryOne[userDoc](ctx, s.db, `
		FOR d IN users
			FILTER d.email == @email
			LIMIT 1
			RETURN d
	`, map[string]any{"email": email})
	if err != nil {
		return nil, err
	}
	return toUserModel(*doc)
}

func (s *userStore) GetByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	docs, err := queryAll[userDoc](ctx, s.db, `
		FOR d IN users
			FILTER d._key IN @keys
			RETURN d
	`, map[string]any{"keys": idsToKeys(ids)})
	if err != nil {
		return nil, err
	}
	return toUserModels(docs)
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	user.CreatedAt = nowUTC()
	user.UpdatedAt = user.CreatedAt
	_, err := queryAll[userDoc](ctx, s.db, `
		INSERT @doc IN users
		RETURN NEW
	`, map[string]any{"doc": toUserDoc(user)})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *userStore) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error) {
	patch := map[string]any{"updatedAt": nowUTC()}
	set := func(field string, v *string) {
		if v != nil {
			patch[field] = *v
		}
	}
	set("name", upd.Name)
	set("avatar", upd.Avatar)
	set("bio", upd.Bio)
	set("location", upd.Location)
	set("website", upd.Website)
	set("twitter", upd.Twitter)
	set("github", upd.Github)
	set("linkedin", upd.Linkedin)

	doc, err := queryOne[userDoc](ctx, s.db, `
		FOR d IN users
			FILTER d._key == @key
			UPDATE d WITH @patch IN users
			RETURN NEW
	`, map[string]any{"key": docKey(id), "patch": patch})
	if err != nil {
		return nil, err
	}
	return toUserModel(*doc)
}

func (s *userStore) List(ctx context.Context, limit int) ([]model.User, error) {
	docs, err := queryAll[userDoc](ctx, s.db, `
		FOR d IN users
			SORT d.createdAt DESC
			LIMIT @limit
			RETURN d
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return toUserModels(docs)
}

func (s *userStore) Search(ctx context.Context, query string, limit int) ([]model.User, error) {
	docs, err := queryAll[userDoc](ctx, s.db, `
		FOR d IN users
			FILTER CONTAINS(LOWER(d.name), @needle) OR CONTAINS(LOWER(d.username), @needle)
			LIMIT @limit
			RETURN d
	`, map[string]any{"needle": lowerTrim(query), "limit": limit})
	if err != nil {
		return nil, err
	}
	return toUserModels(docs)
}

func (s *userStore) SaveRelation(ctx context.Context, userID int64, field RelationField, op SetOp, value int64) error {
	var expr string
	switch op {
	case SetAdd:
		expr = fmt.Sprintf("PUSH(d.%s, @value, true)", field)
	case SetRemove:
		expr = fmt.Sprintf("REMOVE_VALUE(d.%s, @value)", field)
	default:
		return fmt.Errorf("unknown set op %q", op)
	}

	query := fmt.Sprintf(`
		FOR d IN users
			FILTER d._key == @key
			UPDATE d WITH { %s: %s, updatedAt: @now } IN users
			RETURN 1
	`, field, expr)

	return execute(ctx, s.db, query, map[string]any{
		"key":   docKey(userID),
		"value": docKey(value),
		"now":   nowUTC(),
	})
}

func (s *userStore) IncrementCounter(ctx context.Context, userID int64, field CounterField, delta int) error {
	query := fmt.Sprintf(`
		FOR d IN users
			FILTER d._key == @key
			UPDATE d WITH { %s: d.%s + @delta, updatedAt: @now } IN users
			RETURN 1
	`, field, field)

	return execute(ctx, s.db, query, map[string]any{
		"key":   docKey(userID),
		"delta": delta,
		"now":   nowUTC(),
	})
}

package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arangodb/go-driver/v2/arangodb"
)

// All persistence goes through AQL so that every mutation is a single
// server-side document update. PUSH(..., true) and REMOVE_VALUE give the
// atomic set-add/set-remove primitives the toggle engine is built on;
// counter increments are expressed as `field: d.field + @delta` inside one
// UPDATE, never as load-add-save in application code.

// Document ids are stored as decimal strings. Snowflake ids exceed 2^53,
// which the JSON transport would silently round if they were numbers.
func docKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseKey(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse document key %q: %w", key, err)
	}
	return id, nil
}

func idsToKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}
	return keys
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keysToIDs(keys []string) []int64 {
	ids := make([]int64, 0, len(keys))
	for _, key := range keys {
		id, err := parseKey(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// queryAll runs an AQL query and decodes every row into T.
func queryAll[T any](ctx context.Context, db arangodb.Database, query string, bindVars map[string]any) ([]T, error) {
	cursor, err := db.Query(ctx, query, &arangodb.QueryOptions{BindVars: bindVars})
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer cursor.Close()

	var results []T
	for cursor.HasMore() {
		var row T
		if _, err := cursor.ReadDocument(ctx, &row); err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		results = append(results, row)
	}
	return results, nil
}

// queryOne runs an AQL query expected to yield at most one row.
// Zero rows maps to ErrNotFound.
func queryOne[T any](ctx context.Context, db arangodb.Database, query string, bindVars map[string]any) (*T, error) {
	rows, err := queryAll[T](ctx, db, query, bindVars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// execute runs a mutation that must touch exactly one document.
func execute(ctx context.Context, db arangodb.Database, query string, bindVars map[string]any) error {
	_, err := queryOne[int](ctx, db, query, bindVars)
	return err
}

type voteSetsRow struct {
	Upvotes   []string `json:"upvotes"`
	Downvotes []string `json:"downvotes"`
}

// applyVoteOps applies a call's vote-set edits as one atomic UPDATE on the
// target document and returns the resulting sets. Because both fields are
// rewritten in the same update, the up/down exclusivity invariant can never
// be observed broken mid-toggle, and a concurrent duplicate of the same op
// is a no-op (unique push / remove-value).
func applyVoteOps(ctx context.Context, db arangodb.Database, collection string, id, actorID int64, ops []VoteOp) ([]int64, []int64, error) {
	upExpr := "d.upvotes"
	downExpr := "d.downvotes"
	for _, op := range ops {
		var expr string
		switch op.Op {
		case SetAdd:
			expr = fmt.Sprintf("PUSH(d.%s, @actor, true)", op.Field)
		case SetRemove:
			expr = fmt.Sprintf("REMOVE_VALUE(d.%s, @actor)", op.Field)
		default:
			return nil, nil, fmt.Errorf("unknown set op %q", op.Op)
		}
		if op.Field == VoteFieldUp {
			upExpr = expr
		} else {
			downExpr = expr
		}
	}

	query := fmt.Sprintf(`
		FOR d IN %s
			FILTER d._key == @key
			UPDATE d WITH { upvotes: %s, downvotes: %s, updatedAt: @now } IN %s
			RETURN { upvotes: NEW.upvotes, downvotes: NEW.downvotes }
	`, collection, upExpr, downExpr, collection)

	row, err := queryOne[voteSetsRow](ctx, db, query, map[string]any{
		"key":   docKey(id),
		"actor": docKey(actorID),
		"now":   nowUTC(),
	})
	if err != nil {
		return nil, nil, err
	}
	return keysToIDs(row.Upvotes), keysToIDs(row.Downvotes), nil
}

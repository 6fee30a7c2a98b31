package store

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"

	"queryhub.app/api/internal/model"
)

type questionStore struct {
	db arangodb.Database
}

func newQuestionStore(db arangodb.Database) QuestionStore {
	return &questionStore{db: db}
}

func (s *questionStore) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	doc, err := queryOne[questionDoc](ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			RETURN d
	`, map[string]any{"key": docKey(id)})
	if err != nil {
		return nil, err
	}
	return toQuestionModel(*doc)
}

func (s *questionStore) GetAndCountView(ctx context.Context, id int64) (*model.Question, error) {
	doc, err := queryOne[questionDoc](ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			UPDATE d WITH { views: d.views + 1 } IN questions
			RETURN NEW
	`, map[string]any{"key": docKey(id)})
	if err != nil {
		return nil, err
	}
	return toQuestionModel(*doc)
}

func (s *questionStore) Create(ctx context.Context, q *model.Question) error {
	q.CreatedAt = nowUTC()
	q.UpdatedAt = q.CreatedAt
	_, err := queryAll[questionDoc](ctx, s.db, `
		INSERT @doc IN questions
		RETURN NEW
	`, map[string]any{"doc": toQuestionDoc(q)})
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (s *questionStore) Update(ctx context.Context, q *model.Question) error {
	q.UpdatedAt = nowUTC()
	return execute(ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			UPDATE d WITH {
				title: @title,
				content: @content,
				category: @category,
				tags: @tags,
				isAnonymous: @isAnonymous,
				updatedAt: @now
			} IN questions
			RETURN 1
	`, map[string]any{
		"key":         docKey(q.ID),
		"title":       q.Title,
		"content":     q.Content,
		"category":    string(q.Category),
		"tags":        q.Tags,
		"isAnonymous": q.IsAnonymous,
		"now":         q.UpdatedAt,
	})
}

func (s *questionStore) Delete(ctx context.Context, id int64) error {
	return execute(ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			REMOVE d IN questions
			RETURN 1
	`, map[string]any{"key": docKey(id)})
}

// filterClause is shared by List and its count query so both always agree.
func (f QuestionFilter) filterClause(bindVars map[string]any) string {
	clause := ""
	if f.Category != "" {
		clause += "\n\t\t\tFILTER d.category == @category"
		bindVars["category"] = string(f.Category)
	}
	if f.Tag != "" {
		clause += "\n\t\t\tFILTER @tag IN d.tags"
		bindVars["tag"] = lowerTrim(f.Tag)
	}
	if f.Search != "" {
		clause += "\n\t\t\tFILTER CONTAINS(LOWER(d.title), @needle) OR CONTAINS(LOWER(d.content), @needle)"
		bindVars["needle"] = lowerTrim(f.Search)
	}
	return clause
}

func (f QuestionFilter) sortClause() string {
	switch f.Sort {
	case model.SortOldest:
		return "SORT d.createdAt ASC"
	case model.SortMostVoted:
		return "SORT LENGTH(d.upvotes) DESC"
	case model.SortMostAnswered:
		return "SORT d.answersCount DESC"
	case model.SortMostViewed:
		return "SORT d.views DESC"
	default:
		return "SORT d.createdAt DESC"
	}
}

func (s *questionStore) List(ctx context.Context, f QuestionFilter) ([]model.Question, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	bindVars := map[string]any{}
	filters := f.filterClause(bindVars)

	countQuery := fmt.Sprintf(`
		FOR d IN questions%s
			COLLECT WITH COUNT INTO total
			RETURN total
	`, filters)
	total, err := queryOne[int64](ctx, s.db, countQuery, bindVars)
	if err != nil {
		return nil, 0, err
	}

	listVars := map[string]any{
		"offset": (f.Page - 1) * f.Limit,
		"count":  f.Limit,
	}
	filters = f.filterClause(listVars)
	listQuery := fmt.Sprintf(`
		FOR d IN questions%s
			%s
			LIMIT @offset, @count
			RETURN d
	`, filters, f.sortClause())

	docs, err := queryAll[questionDoc](ctx, s.db, listQuery, listVars)
	if err != nil {
		return nil, 0, err
	}
	questions, err := toQuestionModels(docs)
	if err != nil {
		return nil, 0, err
	}
	return questions, *total, nil
}

func (s *questionStore) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Question, error) {
	return s.listByAuthors(ctx, []string{docKey(authorID)}, limit)
}

func (s *questionStore) ListByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Question, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	return s.listByAuthors(ctx, idsToKeys(authorIDs), limit)
}

func (s *questionStore) listByAuthors(ctx context.Context, authors []string, limit int) ([]model.Question, error) {
	limitClause := ""
	bindVars := map[string]any{"authors": authors}
	if limit > 0 {
		limitClause = "LIMIT @limit"
		bindVars["limit"] = limit
	}
	query := fmt.Sprintf(`
		FOR d IN questions
			FILTER d.author IN @authors
			SORT d.createdAt DESC
			%s
			RETURN d
	`, limitClause)

	docs, err := queryAll[questionDoc](ctx, s.db, query, bindVars)
	if err != nil {
		return nil, err
	}
	return toQuestionModels(docs)
}

func (s *questionStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	docs, err := queryAll[questionDoc](ctx, s.db, `
		FOR d IN questions
			FILTER d._key IN @keys
			SORT d.createdAt DESC
			RETURN d
	`, map[string]any{"keys": idsToKeys(ids)})
	if err != nil {
		return nil, err
	}
	return toQuestionModels(docs)
}

func (s *questionStore) CountExistingByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	total, err := queryOne[int](ctx, s.db, `
		FOR d IN questions
			FILTER d._key IN @keys
			COLLECT WITH COUNT INTO total
			RETURN total
	`, map[string]any{"keys": idsToKeys(ids)})
	if err != nil {
		return 0, err
	}
	return *total, nil
}

func (s *questionStore) ApplyVote(ctx context.Context, id, actorID int64, ops []VoteOp) ([]int64, []int64, error) {
	return applyVoteOps(ctx, s.db, "questions", id, actorID, ops)
}

func (s *questionStore) IncrementAnswersCount(ctx context.Context, id int64, delta int) error {
	return execute(ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			UPDATE d WITH { answersCount: d.answersCount + @delta, updatedAt: @now } IN questions
			RETURN 1
	`, map[string]any{"key": docKey(id), "delta": delta, "now": nowUTC()})
}

func (s *questionStore) SetAnswered(ctx context.Context, id int64, answered bool) error {
	return execute(ctx, s.db, `
		FOR d IN questions
			FILTER d._key == @key
			UPDATE d WITH { isAnswered: @answered, updatedAt: @now } IN questions
			RETURN 1
	`, map[string]any{"key": docKey(id), "answered": answered, "now": nowUTC()})
}

func (s *questionStore) SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error) {
	total, err := queryOne[int](ctx, s.db, `
		RETURN SUM(
			FOR d IN questions
				FILTER d.author == @author
				RETURN LENGTH(d.upvotes)
		)
	`, map[string]any{"author": docKey(authorID)})
	if err != nil {
		return 0, err
	}
	return *total, nil
}

func (s *questionStore) TagSources(ctx context.Context) ([]TagSource, error) {
	type tagRow struct {
		Tags    []string `json:"tags"`
		Upvotes int      `json:"upvotes"`
	}
	rows, err := queryAll[tagRow](ctx, s.db, `
		FOR d IN questions
			FILTER LENGTH(d.tags) > 0
			RETURN { tags: d.tags, upvotes: LENGTH(d.upvotes) }
	`, nil)
	if err != nil {
		return nil, err
	}
	sources := make([]TagSource, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, TagSource{Tags: row.Tags, Upvotes: row.Upvotes})
	}
	return sources, nil
}

func (s *questionStore) SearchText(ctx context.Context, needle string, limit int) ([]model.Question, error) {
	if limit < 1 {
		limit = 20
	}
	docs, err := queryAll[questionDoc](ctx, s.db, `
		FOR d IN questions
			FILTER CONTAINS(LOWER(d.title), @needle) OR CONTAINS(LOWER(d.content), @needle)
			SORT d.createdAt DESC
			LIMIT @limit
			RETURN d
	`, map[string]any{"needle": lowerTrim(needle), "limit": limit})
	if err != nil {
		return nil, err
	}
	return toQuestionModels(docs)
}

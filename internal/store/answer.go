package store

import (
	"context"
	"fmt"

	"github.com/arangodb/go-driver/v2/arangodb"

	"queryhub.app/api/internal/model"
)

type answerStore struct {
	db arangodb.Database
}

func newAnswerStore(db arangodb.Database) AnswerStore {
	return &answerStore{db: db}
}

func (s *answerStore) GetByID(ctx context.Context, id int64) (*model.Answer, error) {
	doc, err := queryOne[answerDoc](ctx, s.db, `
		FOR d IN answers
			FILTER d._key == @key
			RETURN d
	`, map[string]any{"key": docKey(id)})
	if err != nil {
		return nil, err
	}
	return toAnswerModel(*doc)
}

func (s *answerStore) Create(ctx context.Context, a *model.Answer) error {
	a.CreatedAt = nowUTC()
	a.UpdatedAt = a.CreatedAt
	_, err := queryAll[answerDoc](ctx, s.db, `
		INSERT @doc IN answers
		RETURN NEW
	`, map[string]any{"doc": toAnswerDoc(a)})
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (s *answerStore) UpdateContent(ctx context.Context, id int64, content string) (*model.Answer, error) {
	doc, err := queryOne[answerDoc](ctx, s.db, `
		FOR d IN answers
			FILTER d._key == @key
			UPDATE d WITH { content: @content, updatedAt: @now } IN answers
			RETURN NEW
	`, map[string]any{"key": docKey(id), "content": content, "now": nowUTC()})
	if err != nil {
		return nil, err
	}
	return toAnswerModel(*doc)
}

func (s *answerStore) Delete(ctx context.Context, id int64) error {
	return execute(ctx, s.db, `
		FOR d IN answers
			FILTER d._key == @key
			REMOVE d IN answers
			RETURN 1
	`, map[string]any{"key": docKey(id)})
}

func (s *answerStore) DeleteByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error) {
	docs, err := queryAll[answerDoc](ctx, s.db, `
		FOR d IN answers
			FILTER d.question == @question
			REMOVE d IN answers
			RETURN OLD
	`, map[string]any{"question": docKey(questionID)})
	if err != nil {
		return nil, err
	}
	return toAnswerModels(docs)
}

func (s *answerStore) ListByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error) {
	// Best answers surface first, then newest.
	docs, err := queryAll[answerDoc](ctx, s.db, `
		FOR d IN answers
			FILTER d.question == @question
			SORT d.isBestAnswer DESC, d.createdAt DESC
			RETURN d
	`, map[string]any{"question": docKey(questionID)})
	if err != nil {
		return nil, err
	}
	return toAnswerModels(docs)
}

func (s *answerStore) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Answer, error) {
	limitClause := ""
	bindVars := map[string]any{"author": docKey(authorID)}
	if limit > 0 {
		limitClause = "LIMIT @limit"
		bindVars["limit"] = limit
	}
	query := fmt.Sprintf(`
		FOR d IN answers
			FILTER d.author == @author
			SORT d.createdAt DESC
			%s
			RETURN d
	`, limitClause)

	docs, err := queryAll[answerDoc](ctx, s.db, query, bindVars)
	if err != nil {
		return nil, err
	}
	return toAnswerModels(docs)
}

func (s *answerStore) ApplyVote(ctx context.Context, id, actorID int64, ops []VoteOp) ([]int64, []int64, error) {
	return applyVoteOps(ctx, s.db, "answers", id, actorID, ops)
}

func (s *answerStore) SetBest(ctx context.Context, id int64, best bool) error {
	return execute(ctx, s.db, `
		FOR d IN answers
			FILTER d._key == @key
			UPDATE d WITH { isBestAnswer: @best, updatedAt: @now } IN answers
			RETURN 1
	`, map[string]any{"key": docKey(id), "best": best, "now": nowUTC()})
}

func (s *answerStore) CountBestByQuestion(ctx context.Context, questionID int64) (int, error) {
	total, err := queryOne[int](ctx, s.db, `
		FOR d IN answers
			FILTER d.question == @question AND d.isBestAnswer == true
			COLLECT WITH COUNT INTO total
			RETURN total
	`, map[string]any{"question": docKey(questionID)})
	if err != nil {
		return 0, err
	}
	return *total, nil
}

func (s *answerStore) SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error) {
	total, err := queryOne[int](ctx, s.db, `
		RETURN SUM(
			FOR d IN answers
				FILTER d.author == @author
				RETURN LENGTH(d.upvotes)
		)
	`, map[string]any{"author": docKey(authorID)})
	if err != nil {
		return 0, err
	}
	return *total, nil
}

func (s *answerStore) AddComment(ctx context.Context, answerID int64, c model.Comment) error {
	comment := commentDoc{
		Content:   c.Content,
		Author:    docKey(c.AuthorID),
		CreatedAt: c.CreatedAt,
	}
	return execute(ctx, s.db, `
		FOR d IN answers
			FILTER d._key == @key
			UPDATE d WITH { comments: PUSH(d.comments, @comment), updatedAt: @now } IN answers
			RETURN 1
	`, map[string]any{"key": docKey(answerID), "comment": comment, "now": nowUTC()})
}

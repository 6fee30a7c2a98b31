package service_test

import (
	"context"

	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

type mockUserStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*model.User, error)
	getByIDsFn         func(ctx context.Context, ids []int64) ([]model.User, error)
	createFn           func(ctx context.Context, user *model.User) error
	updateProfileFn    func(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error)
	listFn             func(ctx context.Context, limit int) ([]model.User, error)
	searchFn           func(ctx context.Context, query string, limit int) ([]model.User, error)
	saveRelationFn     func(ctx context.Context, userID int64, field store.RelationField, op store.SetOp, value int64) error
	incrementCounterFn func(ctx context.Context, userID int64, field store.CounterField, delta int) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, id int64, upd model.ProfileUpdate) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, upd)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) List(ctx context.Context, limit int) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockUserStore) Search(ctx context.Context, query string, limit int) ([]model.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUserStore) SaveRelation(ctx context.Context, userID int64, field store.RelationField, op store.SetOp, value int64) error {
	if m.saveRelationFn != nil {
		return m.saveRelationFn(ctx, userID, field, op, value)
	}
	return nil
}

func (m *mockUserStore) IncrementCounter(ctx context.Context, userID int64, field store.CounterField, delta int) error {
	if m.incrementCounterFn != nil {
		return m.incrementCounterFn(ctx, userID, field, delta)
	}
	return nil
}

type mockQuestionStore struct {
	getByIDFn               func(ctx context.Context, id int64) (*model.Question, error)
	getAndCountViewFn       func(ctx context.Context, id int64) (*model.Question, error)
	createFn                func(ctx context.Context, q *model.Question) error
	updateFn                func(ctx context.Context, q *model.Question) error
	deleteFn                func(ctx context.Context, id int64) error
	listFn                  func(ctx context.Context, f store.QuestionFilter) ([]model.Question, int64, error)
	listByAuthorFn          func(ctx context.Context, authorID int64, limit int) ([]model.Question, error)
	listByAuthorsFn         func(ctx context.Context, authorIDs []int64, limit int) ([]model.Question, error)
	listByIDsFn             func(ctx context.Context, ids []int64) ([]model.Question, error)
	countExistingByIDsFn    func(ctx context.Context, ids []int64) (int, error)
	applyVoteFn             func(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error)
	incrementAnswersCountFn func(ctx context.Context, id int64, delta int) error
	setAnsweredFn           func(ctx context.Context, id int64, answered bool) error
	sumUpvotesByAuthorFn    func(ctx context.Context, authorID int64) (int, error)
	tagSourcesFn            func(ctx context.Context) ([]store.TagSource, error)
	searchTextFn            func(ctx context.Context, needle string, limit int) ([]model.Question, error)
}

func (m *mockQuestionStore) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionStore) GetAndCountView(ctx context.Context, id int64) (*model.Question, error) {
	if m.getAndCountViewFn != nil {
		return m.getAndCountViewFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionStore) Create(ctx context.Context, q *model.Question) error {
	if m.createFn != nil {
		return m.createFn(ctx, q)
	}
	return nil
}

func (m *mockQuestionStore) Update(ctx context.Context, q *model.Question) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, q)
	}
	return nil
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockQuestionStore) List(ctx context.Context, f store.QuestionFilter) ([]model.Question, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *mockQuestionStore) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Question, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *mockQuestionStore) ListByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]model.Question, error) {
	if m.listByAuthorsFn != nil {
		return m.listByAuthorsFn(ctx, authorIDs, limit)
	}
	return nil, nil
}

func (m *mockQuestionStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Question, error) {
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockQuestionStore) CountExistingByIDs(ctx context.Context, ids []int64) (int, error) {
	if m.countExistingByIDsFn != nil {
		return m.countExistingByIDsFn(ctx, ids)
	}
	return 0, nil
}

func (m *mockQuestionStore) ApplyVote(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error) {
	if m.applyVoteFn != nil {
		return m.applyVoteFn(ctx, id, actorID, ops)
	}
	return nil, nil, nil
}

func (m *mockQuestionStore) IncrementAnswersCount(ctx context.Context, id int64, delta int) error {
	if m.incrementAnswersCountFn != nil {
		return m.incrementAnswersCountFn(ctx, id, delta)
	}
	return nil
}

func (m *mockQuestionStore) SetAnswered(ctx context.Context, id int64, answered bool) error {
	if m.setAnsweredFn != nil {
		return m.setAnsweredFn(ctx, id, answered)
	}
	return nil
}

func (m *mockQuestionStore) SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error) {
	if m.sumUpvotesByAuthorFn != nil {
		return m.sumUpvotesByAuthorFn(ctx, authorID)
	}
	return 0, nil
}

func (m *mockQuestionStore) TagSources(ctx context.Context) ([]store.TagSource, error) {
	if m.tagSourcesFn != nil {
		return m.tagSourcesFn(ctx)
	}
	return nil, nil
}

func (m *mockQuestionStore) SearchText(ctx context.Context, needle string, limit int) ([]model.Question, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, needle, limit)
	}
	return nil, nil
}

type mockAnswerStore struct {
	getByIDFn             func(ctx context.Context, id int64) (*model.Answer, error)
	createFn              func(ctx context.Context, a *model.Answer) error
	updateContentFn       func(ctx context.Context, id int64, content string) (*model.Answer, error)
	deleteFn              func(ctx context.Context, id int64) error
	deleteByQuestionFn    func(ctx context.Context, questionID int64) ([]model.Answer, error)
	listByQuestionFn      func(ctx context.Context, questionID int64) ([]model.Answer, error)
	listByAuthorFn        func(ctx context.Context, authorID int64, limit int) ([]model.Answer, error)
	applyVoteFn           func(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error)
	setBestFn             func(ctx context.Context, id int64, best bool) error
	countBestByQuestionFn func(ctx context.Context, questionID int64) (int, error)
	sumUpvotesByAuthorFn  func(ctx context.Context, authorID int64) (int, error)
	addCommentFn          func(ctx context.Context, answerID int64, c model.Comment) error
}

func (m *mockAnswerStore) GetByID(ctx context.Context, id int64) (*model.Answer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAnswerStore) Create(ctx context.Context, a *model.Answer) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAnswerStore) UpdateContent(ctx context.Context, id int64, content string) (*model.Answer, error) {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, id, content)
	}
	return nil, store.ErrNotFound
}

func (m *mockAnswerStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAnswerStore) DeleteByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error) {
	if m.deleteByQuestionFn != nil {
		return m.deleteByQuestionFn(ctx, questionID)
	}
	return nil, nil
}

func (m *mockAnswerStore) ListByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error) {
	if m.listByQuestionFn != nil {
		return m.listByQuestionFn(ctx, questionID)
	}
	return nil, nil
}

func (m *mockAnswerStore) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]model.Answer, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, authorID, limit)
	}
	return nil, nil
}

func (m *mockAnswerStore) ApplyVote(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error) {
	if m.applyVoteFn != nil {
		return m.applyVoteFn(ctx, id, actorID, ops)
	}
	return nil, nil, nil
}

func (m *mockAnswerStore) SetBest(ctx context.Context, id int64, best bool) error {
	if m.setBestFn != nil {
		return m.setBestFn(ctx, id, best)
	}
	return nil
}

func (m *mockAnswerStore) CountBestByQuestion(ctx context.Context, questionID int64) (int, error) {
	if m.countBestByQuestionFn != nil {
		return m.countBestByQuestionFn(ctx, questionID)
	}
	return 0, nil
}

func (m *mockAnswerStore) SumUpvotesByAuthor(ctx context.Context, authorID int64) (int, error) {
	if m.sumUpvotesByAuthorFn != nil {
		return m.sumUpvotesByAuthorFn(ctx, authorID)
	}
	return 0, nil
}

func (m *mockAnswerStore) AddComment(ctx context.Context, answerID int64, c model.Comment) error {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, answerID, c)
	}
	return nil
}

// applySetOps mirrors the store's unique-push/remove-value semantics so
// toggle specs can assert on resulting sets.
func applySetOps(up, down []int64, actorID int64, ops []store.VoteOp) ([]int64, []int64) {
	apply := func(set []int64, op store.SetOp) []int64 {
		switch op {
		case store.SetAdd:
			for _, v := range set {
				if v == actorID {
					return set
				}
			}
			return append(append([]int64{}, set...), actorID)
		case store.SetRemove:
			out := make([]int64, 0, len(set))
			for _, v := range set {
				if v != actorID {
					out = append(out, v)
				}
			}
			return out
		}
		return set
	}
	for _, op := range ops {
		if op.Field == store.VoteFieldUp {
			up = apply(up, op.Op)
		} else {
			down = apply(down, op.Op)
		}
	}
	return up, down
}

type relationEdit struct {
	userID int64
	field  store.RelationField
	op     store.SetOp
	value  int64
}

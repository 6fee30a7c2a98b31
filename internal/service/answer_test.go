package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"queryhub.app/api/common/id"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

var _ = Describe("AnswerService", func() {
	var (
		svc       service.AnswerService
		answers   *mockAnswerStore
		questions *mockQuestionStore
		users     *mockUserStore
		ctx       context.Context
	)

	const (
		questionID       = int64(100)
		questionAuthorID = int64(1)
		answerAuthorID   = int64(2)
	)

	BeforeEach(func() {
		ctx = context.Background()
		answers = &mockAnswerStore{}
		questions = &mockQuestionStore{}
		users = &mockUserStore{}
		svc = service.NewAnswerService(answers, questions, users)
		Expect(id.Init(1)).To(Succeed())

		questions.getByIDFn = func(_ context.Context, qid int64) (*model.Question, error) {
			if qid != questionID {
				return nil, store.ErrNotFound
			}
			return &model.Question{ID: questionID, AuthorID: questionAuthorID}, nil
		}
	})

	Describe("Create", func() {
		It("creates the answer and bumps both counters", func() {
			var questionDelta, userDelta int
			questions.incrementAnswersCountFn = func(_ context.Context, qid int64, delta int) error {
				Expect(qid).To(Equal(questionID))
				questionDelta += delta
				return nil
			}
			users.incrementCounterFn = func(_ context.Context, userID int64, field store.CounterField, delta int) error {
				Expect(userID).To(Equal(answerAuthorID))
				Expect(field).To(Equal(store.CounterAnswers))
				userDelta += delta
				return nil
			}

			answer, err := svc.Create(ctx, questionID, answerAuthorID, "use a mutex")
			Expect(err).NotTo(HaveOccurred())
			Expect(answer.ID).NotTo(BeZero())
			Expect(answer.QuestionID).To(Equal(questionID))
			Expect(questionDelta).To(Equal(1))
			Expect(userDelta).To(Equal(1))
		})

		It("rejects empty content", func() {
			_, err := svc.Create(ctx, questionID, answerAuthorID, "   ")
			Expect(err).To(MatchError(service.ErrEmptyContent))
		})

		It("rejects a missing question", func() {
			_, err := svc.Create(ctx, 999, answerAuthorID, "answer")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("decrements both counters", func() {
			answers.getByIDFn = func(_ context.Context, aid int64) (*model.Answer, error) {
				return &model.Answer{ID: aid, QuestionID: questionID, AuthorID: answerAuthorID}, nil
			}
			var questionDelta, userDelta int
			questions.incrementAnswersCountFn = func(_ context.Context, _ int64, delta int) error {
				questionDelta += delta
				return nil
			}
			users.incrementCounterFn = func(_ context.Context, _ int64, _ store.CounterField, delta int) error {
				userDelta += delta
				return nil
			}

			Expect(svc.Delete(ctx, 200, answerAuthorID)).To(Succeed())
			Expect(questionDelta).To(Equal(-1))
			Expect(userDelta).To(Equal(-1))
		})

		It("refuses deletion by a non-author", func() {
			answers.getByIDFn = func(_ context.Context, aid int64) (*model.Answer, error) {
				return &model.Answer{ID: aid, QuestionID: questionID, AuthorID: answerAuthorID}, nil
			}
			err := svc.Delete(ctx, 200, 999)
			Expect(err).To(MatchError(service.ErrNotAuthor))
		})

		It("recomputes the answered state when a best answer is removed", func() {
			answers.getByIDFn = func(_ context.Context, aid int64) (*model.Answer, error) {
				return &model.Answer{ID: aid, QuestionID: questionID, AuthorID: answerAuthorID, IsBestAnswer: true}, nil
			}
			answers.countBestByQuestionFn = func(_ context.Context, _ int64) (int, error) {
				return 0, nil
			}
			var answered *bool
			questions.setAnsweredFn = func(_ context.Context, _ int64, v bool) error {
				answered = &v
				return nil
			}

			Expect(svc.Delete(ctx, 200, answerAuthorID)).To(Succeed())
			Expect(answered).NotTo(BeNil())
			Expect(*answered).To(BeFalse())
		})
	})

	Describe("ToggleBest", func() {
		var (
			answer   *model.Answer
			bestSet  map[int64]bool
			answered []bool
		)

		BeforeEach(func() {
			answer = &model.Answer{ID: 200, QuestionID: questionID, AuthorID: answerAuthorID}
			bestSet = map[int64]bool{}
			answered = nil

			answers.getByIDFn = func(_ context.Context, aid int64) (*model.Answer, error) {
				if aid == answer.ID {
					return &model.Answer{
						ID: answer.ID, QuestionID: answer.QuestionID,
						AuthorID: answer.AuthorID, IsBestAnswer: bestSet[aid],
					}, nil
				}
				if _, ok := bestSet[aid]; ok {
					return &model.Answer{ID: aid, QuestionID: questionID, IsBestAnswer: bestSet[aid]}, nil
				}
				return nil, store.ErrNotFound
			}
			answers.setBestFn = func(_ context.Context, aid int64, best bool) error {
				bestSet[aid] = best
				return nil
			}
			answers.countBestByQuestionFn = func(_ context.Context, _ int64) (int, error) {
				n := 0
				for _, best := range bestSet {
					if best {
						n++
					}
				}
				return n, nil
			}
			questions.setAnsweredFn = func(_ context.Context, _ int64, v bool) error {
				answered = append(answered, v)
				return nil
			}
		})

		It("only allows the question author", func() {
			_, err := svc.ToggleBest(ctx, 200, answerAuthorID)
			Expect(err).To(MatchError(service.ErrNotQuestionAuthor))
		})

		It("marks a best answer and flags the question answered", func() {
			result, err := svc.ToggleBest(ctx, 200, questionAuthorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsBestAnswer).To(BeTrue())
			Expect(answered).To(Equal([]bool{true}))
		})

		It("keeps the question answered while another best answer remains", func() {
			bestSet[300] = true

			result, err := svc.ToggleBest(ctx, 200, questionAuthorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsBestAnswer).To(BeTrue())

			// Unmark the first one; 300 still holds the flag.
			result, err = svc.ToggleBest(ctx, 200, questionAuthorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsBestAnswer).To(BeFalse())
			Expect(answered).To(Equal([]bool{true, true}))
		})

		It("clears the answered flag once no best answer remains", func() {
			_, err := svc.ToggleBest(ctx, 200, questionAuthorID)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.ToggleBest(ctx, 200, questionAuthorID)
			Expect(err).NotTo(HaveOccurred())
			Expect(answered).To(Equal([]bool{true, false}))
		})
	})

	Describe("AddComment", func() {
		It("appends the comment and re-reads the answer", func() {
			var added *model.Comment
			answers.addCommentFn = func(_ context.Context, aid int64, c model.Comment) error {
				Expect(aid).To(Equal(int64(200)))
				added = &c
				return nil
			}
			answers.getByIDFn = func(_ context.Context, aid int64) (*model.Answer, error) {
				return &model.Answer{ID: aid, Comments: []model.Comment{*added}}, nil
			}

			answer, err := svc.AddComment(ctx, 200, answerAuthorID, "nice catch")
			Expect(err).NotTo(HaveOccurred())
			Expect(added.AuthorID).To(Equal(answerAuthorID))
			Expect(answer.Comments).To(HaveLen(1))
		})

		It("rejects empty comments", func() {
			_, err := svc.AddComment(ctx, 200, answerAuthorID, "")
			Expect(err).To(MatchError(service.ErrEmptyContent))
		})
	})
})

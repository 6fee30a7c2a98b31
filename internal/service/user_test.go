package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

var _ = Describe("UserService", func() {
	var (
		svc       service.UserService
		users     *mockUserStore
		questions *mockQuestionStore
		answers   *mockAnswerStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		questions = &mockQuestionStore{}
		answers = &mockAnswerStore{}
		svc = service.NewUserService(users, questions, answers)
	})

	Describe("Profile", func() {
		It("sums upvotes received over both questions and answers", func() {
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{
					ID:        id,
					Followers: []int64{2, 3},
					Following: []int64{4},
					Bookmarks: []int64{10, 20, 30},
				}, nil
			}
			questions.sumUpvotesByAuthorFn = func(_ context.Context, authorID int64) (int, error) {
				return 7, nil
			}
			answers.sumUpvotesByAuthorFn = func(_ context.Context, authorID int64) (int, error) {
				return 5, nil
			}
			questions.countExistingByIDsFn = func(_ context.Context, ids []int64) (int, error) {
				Expect(ids).To(Equal([]int64{10, 20, 30}))
				return 2, nil
			}

			profile, err := svc.Profile(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.UpvotesReceived).To(Equal(12))
			Expect(profile.FollowersCount).To(Equal(2))
			Expect(profile.FollowingCount).To(Equal(1))
			Expect(profile.BookmarksCount).To(Equal(2))
		})

		It("propagates a missing user", func() {
			_, err := svc.Profile(ctx, 404)
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("clamps an out-of-range limit", func() {
			users.listFn = func(_ context.Context, limit int) ([]model.User, error) {
				Expect(limit).To(Equal(50))
				return []model.User{{ID: 1, Name: "Ada"}}, nil
			}

			out, err := svc.List(ctx, 9999)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(1))
			Expect(out[0].Name).To(Equal("Ada"))
		})
	})

	Describe("RecentActivity", func() {
		It("returns the latest questions and answers together", func() {
			questions.listByAuthorFn = func(_ context.Context, authorID int64, limit int) ([]model.Question, error) {
				return []model.Question{{ID: 1}}, nil
			}
			answers.listByAuthorFn = func(_ context.Context, authorID int64, limit int) ([]model.Answer, error) {
				return []model.Answer{{ID: 2}, {ID: 3}}, nil
			}

			qs, as, err := svc.RecentActivity(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(qs).To(HaveLen(1))
			Expect(as).To(HaveLen(2))
		})
	})
})

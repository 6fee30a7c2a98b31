package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

var _ = Describe("VoteService", func() {
	var (
		svc       service.VoteService
		questions *mockQuestionStore
		answers   *mockAnswerStore
		ctx       context.Context

		upvotes   []int64
		downvotes []int64
	)

	const (
		questionID = int64(100)
		actorID    = int64(7)
	)

	// Wires the mock so reads serve the current sets and ApplyVote
	// mutates them with the same semantics the store guarantees.
	setupQuestion := func() {
		questions.getByIDFn = func(_ context.Context, id int64) (*model.Question, error) {
			if id != questionID {
				return nil, store.ErrNotFound
			}
			return &model.Question{ID: id, Upvotes: upvotes, Downvotes: downvotes}, nil
		}
		questions.applyVoteFn = func(_ context.Context, id, actor int64, ops []store.VoteOp) ([]int64, []int64, error) {
			Expect(id).To(Equal(questionID))
			Expect(actor).To(Equal(actorID))
			upvotes, downvotes = applySetOps(upvotes, downvotes, actor, ops)
			return upvotes, downvotes, nil
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		questions = &mockQuestionStore{}
		answers = &mockAnswerStore{}
		svc = service.NewVoteService(questions, answers)
		upvotes = nil
		downvotes = nil
		setupQuestion()
	})

	It("adds a fresh upvote", func() {
		result, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteUp)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.UpvotesCount).To(Equal(1))
		Expect(result.DownvotesCount).To(Equal(0))
		Expect(result.VoteScore).To(Equal(1))
		Expect(upvotes).To(ContainElement(actorID))
	})

	It("tags store reads with the vote component for logging", func() {
		var component string
		questions.getByIDFn = func(ctx context.Context, id int64) (*model.Question, error) {
			component = logger.GetLogFields(ctx).Component
			return &model.Question{ID: id, Upvotes: upvotes, Downvotes: downvotes}, nil
		}

		_, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteUp)
		Expect(err).NotTo(HaveOccurred())
		Expect(component).To(Equal("queryhub.service.vote"))
	})

	It("removes the vote when voting the same direction again", func() {
		upvotes = []int64{actorID, 42}

		result, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteUp)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.UpvotesCount).To(Equal(1))
		Expect(result.VoteScore).To(Equal(1))
		Expect(upvotes).NotTo(ContainElement(actorID))
	})

	It("switches sides when voting the opposite direction", func() {
		upvotes = []int64{actorID}

		result, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteDown)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.UpvotesCount).To(Equal(0))
		Expect(result.DownvotesCount).To(Equal(1))
		Expect(result.VoteScore).To(Equal(-1))
		Expect(upvotes).NotTo(ContainElement(actorID))
		Expect(downvotes).To(ContainElement(actorID))
	})

	It("never leaves the actor in both sets", func() {
		// Full toggle walk: up, down, down, up, up.
		directions := []model.VoteDirection{
			model.VoteUp, model.VoteDown, model.VoteDown, model.VoteUp, model.VoteUp,
		}
		for _, dir := range directions {
			_, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, dir)
			Expect(err).NotTo(HaveOccurred())
			inUp := containsInt64(upvotes, actorID)
			inDown := containsInt64(downvotes, actorID)
			Expect(inUp && inDown).To(BeFalse())
		}
		// Ends removed: up, switch down, off, up, off.
		Expect(upvotes).To(BeEmpty())
		Expect(downvotes).To(BeEmpty())
	})

	It("returns to the initial state after a double toggle", func() {
		for range 2 {
			_, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteUp)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(upvotes).To(BeEmpty())
		Expect(downvotes).To(BeEmpty())
	})

	It("preserves other voters", func() {
		upvotes = []int64{1, 2}
		downvotes = []int64{3}

		result, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, model.VoteDown)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.UpvotesCount).To(Equal(2))
		Expect(result.DownvotesCount).To(Equal(2))
		Expect(result.VoteScore).To(Equal(0))
	})

	It("votes on answers through the answer store", func() {
		answer := &model.Answer{ID: 200}
		answers.getByIDFn = func(_ context.Context, id int64) (*model.Answer, error) {
			Expect(id).To(Equal(int64(200)))
			return answer, nil
		}
		var applied bool
		answers.applyVoteFn = func(_ context.Context, id, actor int64, ops []store.VoteOp) ([]int64, []int64, error) {
			applied = true
			Expect(ops).To(ConsistOf(store.VoteOp{Field: store.VoteFieldUp, Op: store.SetAdd}))
			return []int64{actor}, nil, nil
		}

		result, err := svc.Apply(ctx, model.VoteTargetAnswer, 200, actorID, model.VoteUp)
		Expect(err).NotTo(HaveOccurred())
		Expect(applied).To(BeTrue())
		Expect(result.UpvotesCount).To(Equal(1))
	})

	It("rejects an invalid direction", func() {
		_, err := svc.Apply(ctx, model.VoteTargetQuestion, questionID, actorID, "sideways")
		Expect(err).To(MatchError(service.ErrInvalidVote))
	})

	It("propagates not found for a missing target", func() {
		_, err := svc.Apply(ctx, model.VoteTargetQuestion, 999, actorID, model.VoteUp)
		Expect(err).To(MatchError(store.ErrNotFound))
	})
})

func containsInt64(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

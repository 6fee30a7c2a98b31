package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/model"
	"queryhub.app/api/internal/store"
)

var ErrInvalidVote = errors.New("invalid vote direction")

type VoteService interface {
	// Apply toggles the actor's vote on a question or answer. Voting the
	// same direction twice removes the vote; voting the opposite
	// direction switches it. An actor is never in both sets.
	Apply(ctx context.Context, kind model.VoteTargetKind, targetID, actorID int64, direction model.VoteDirection) (*model.VoteResult, error)
}

// voteTarget is the slice of a store the toggle needs: current sets in,
// atomic membership edits out. Both questionStore and answerStore satisfy
// it through thin adapters.
type voteTarget interface {
	voteSets(ctx context.Context, id int64) (upvotes, downvotes []int64, err error)
	applyVote(ctx context.Context, id, actorID int64, ops []store.VoteOp) (upvotes, downvotes []int64, err error)
}

type voteService struct {
	questionStore store.QuestionStore
	answerStore   store.AnswerStore
}

func NewVoteService(questionStore store.QuestionStore, answerStore store.AnswerStore) VoteService {
	return &voteService{
		questionStore: questionStore,
		answerStore:   answerStore,
	}
}

func (s *voteService) Apply(ctx context.Context, kind model.VoteTargetKind, targetID, actorID int64, direction model.VoteDirection) (*model.VoteResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "queryhub.service.vote"})

	if !direction.Valid() {
		return nil, ErrInvalidVote
	}

	var target voteTarget
	switch kind {
	case model.VoteTargetQuestion:
		target = questionVoteTarget{s.questionStore}
	case model.VoteTargetAnswer:
		target = answerVoteTarget{s.answerStore}
	default:
		return nil, fmt.Errorf("unknown vote target kind %q", kind)
	}

	up, down, err := target.voteSets(ctx, targetID)
	if err != nil {
		return nil, err
	}

	ops := voteOps(up, down, actorID, direction)

	newUp, newDown := up, down
	if len(ops) > 0 {
		newUp, newDown, err = target.applyVote(ctx, targetID, actorID, ops)
		if err != nil {
			return nil, fmt.Errorf("applying vote: %w", err)
		}
	}

	slog.DebugContext(ctx, "vote applied",
		"kind", kind,
		"target_id", targetID,
		"actor_id", actorID,
		"direction", direction,
	)

	return &model.VoteResult{
		UpvotesCount:   len(newUp),
		DownvotesCount: len(newDown),
		VoteScore:      len(newUp) - len(newDown),
	}, nil
}

// voteOps decides the membership edits for one toggle. Pure function:
// same-direction vote removes it, opposite-direction vote switches, fresh
// vote adds. The opposite set is always cleared on add so the two sets
// stay mutually exclusive.
func voteOps(upvotes, downvotes []int64, actorID int64, direction model.VoteDirection) []store.VoteOp {
	inUp := containsID(upvotes, actorID)
	inDown := containsID(downvotes, actorID)

	field := store.VoteFieldUp
	opposite := store.VoteFieldDown
	active := inUp
	inOpposite := inDown
	if direction == model.VoteDown {
		field, opposite = opposite, field
		active, inOpposite = inDown, inUp
	}

	if active {
		return []store.VoteOp{{Field: field, Op: store.SetRemove}}
	}

	ops := []store.VoteOp{{Field: field, Op: store.SetAdd}}
	if inOpposite {
		ops = append(ops, store.VoteOp{Field: opposite, Op: store.SetRemove})
	}
	return ops
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type questionVoteTarget struct {
	store store.QuestionStore
}

func (t questionVoteTarget) voteSets(ctx context.Context, id int64) ([]int64, []int64, error) {
	q, err := t.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return q.Upvotes, q.Downvotes, nil
}

func (t questionVoteTarget) applyVote(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error) {
	return t.store.ApplyVote(ctx, id, actorID, ops)
}

type answerVoteTarget struct {
	store store.AnswerStore
}

func (t answerVoteTarget) voteSets(ctx context.Context, id int64) ([]int64, []int64, error) {
	a, err := t.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return a.Upvotes, a.Downvotes, nil
}

func (t answerVoteTarget) applyVote(ctx context.Context, id, actorID int64, ops []store.VoteOp) ([]int64, []int64, error) {
	return t.store.ApplyVote(ctx, id, actorID, ops)
}

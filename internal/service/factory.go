package service

import (
	"queryhub.app/api/core/config"
	"queryhub.app/api/internal/cache"
	"queryhub.app/api/internal/search"
	"queryhub.app/api/internal/store"
)

type Services struct {
	stores        *store.Stores
	jwtCfg        config.JWTConfig
	questionIndex search.QuestionIndex
	trendingCache cache.TrendingCache
}

func NewServices(stores *store.Stores, jwtCfg config.JWTConfig, questionIndex search.QuestionIndex, trendingCache cache.TrendingCache) *Services {
	return &Services{
		stores:        stores,
		jwtCfg:        jwtCfg,
		questionIndex: questionIndex,
		trendingCache: trendingCache,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.jwtCfg)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.stores.Questions(), s.stores.Answers())
}

func (s *Services) Questions() QuestionService {
	return NewQuestionService(s.stores.Questions(), s.stores.Answers(), s.stores.Users(), s.questionIndex)
}

func (s *Services) Answers() AnswerService {
	return NewAnswerService(s.stores.Answers(), s.stores.Questions(), s.stores.Users())
}

func (s *Services) Votes() VoteService {
	return NewVoteService(s.stores.Questions(), s.stores.Answers())
}

func (s *Services) Follows() FollowService {
	return NewFollowService(s.stores.Users(), s.stores.Questions())
}

func (s *Services) Bookmarks() BookmarkService {
	return NewBookmarkService(s.stores.Users(), s.stores.Questions())
}

func (s *Services) Tags() TagService {
	return NewTagService(s.stores.Questions(), s.trendingCache)
}

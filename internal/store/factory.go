package store

import (
	"github.com/arangodb/go-driver/v2/arangodb"
)

type Stores struct {
	db arangodb.Database
}

func NewStores(db arangodb.Database) *Stores {
	return &Stores{db: db}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db)
}

func (s *Stores) Questions() QuestionStore {
	return newQuestionStore(s.db)
}

func (s *Stores) Answers() AnswerStore {
	return newAnswerStore(s.db)
}

package store

import (
	"time"

	"queryhub.app/api/internal/model"
)

// Document shapes as they live in ArangoDB. Field names keep the database's
// camelCase convention; the API layer renders models with its own tags.
// Timestamps marshal to RFC3339, which sorts correctly as strings in AQL.

func nowUTC() time.Time {
	return time.Now().UTC()
}

type userDoc struct {
	Key            string    `json:"_key"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"passwordHash"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	Website        string    `json:"website"`
	Twitter        string    `json:"twitter"`
	Github         string    `json:"github"`
	Linkedin       string    `json:"linkedin"`
	Followers      []string  `json:"followers"`
	Following      []string  `json:"following"`
	Bookmarks      []string  `json:"bookmarks"`
	QuestionsCount int       `json:"questionsCount"`
	AnswersCount   int       `json:"answersCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toUserDoc(u *model.User) userDoc {
	return userDoc{
		Key:            docKey(u.ID),
		Name:           u.Name,
		Email:          u.Email,
		Username:       u.Username,
		PasswordHash:   u.PasswordHash,
		Avatar:         u.Avatar,
		Bio:            u.Bio,
		Location:       u.Location,
		Website:        u.Website,
		Twitter:        u.Twitter,
		Github:         u.Github,
		Linkedin:       u.Linkedin,
		Followers:      idsToKeys(u.Followers),
		Following:      idsToKeys(u.Following),
		Bookmarks:      idsToKeys(u.Bookmarks),
		QuestionsCount: u.QuestionsCount,
		AnswersCount:   u.AnswersCount,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserModel(doc userDoc) (*model.User, error) {
	id, err := parseKey(doc.Key)
	if err != nil {
		return nil, err
	}
	return &model.User{
		ID:             id,
		Name:           doc.Name,
		Email:          doc.Email,
		Username:       doc.Username,
		PasswordHash:   doc.PasswordHash,
		Avatar:         doc.Avatar,
		Bio:            doc.Bio,
		Location:       doc.Location,
		Website:        doc.Website,
		Twitter:        doc.Twitter,
		Github:         doc.Github,
		Linkedin:       doc.Linkedin,
		Followers:      keysToIDs(doc.Followers),
		Following:      keysToIDs(doc.Following),
		Bookmarks:      keysToIDs(doc.Bookmarks),
		QuestionsCount: doc.QuestionsCount,
		AnswersCount:   doc.AnswersCount,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}

func toUserModels(docs []userDoc) ([]model.User, error) {
	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		u, err := toUserModel(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

type questionDoc struct {
	Key          string    `json:"_key"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Upvotes      []string  `json:"upvotes"`
	Downvotes    []string  `json:"downvotes"`
	Views        int       `json:"views"`
	AnswersCount int       `json:"answersCount"`
	IsAnswered   bool      `json:"isAnswered"`
	BestAnswer   *string   `json:"bestAnswer,omitempty"`
	IsAnonymous  bool      `json:"isAnonymous"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toQuestionDoc(q *model.Question) questionDoc {
	doc := questionDoc{
		Key:          docKey(q.ID),
		Title:        q.Title,
		Content:      q.Content,
		Author:       docKey(q.AuthorID),
		Category:     string(q.Category),
		Tags:         q.Tags,
		Upvotes:      idsToKeys(q.Upvotes),
		Downvotes:    idsToKeys(q.Downvotes),
		Views:        q.Views,
		AnswersCount: q.AnswersCount,
		IsAnswered:   q.IsAnswered,
		IsAnonymous:  q.IsAnonymous,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	if q.BestAnswer != nil {
		best := docKey(*q.BestAnswer)
		doc.BestAnswer = &best
	}
	return doc
}

func toQuestionModel(doc questionDoc) (*model.Question, error) {
	id, err := parseKey(doc.Key)
	if err != nil {
		return nil, err
	}
	author, err := parseKey(doc.Author)
	if err != nil {
		return nil, err
	}
	q := &model.Question{
		ID:           id,
		Title:        doc.Title,
		Content:      doc.Content,
		AuthorID:     author,
		Category:     model.Category(doc.Category),
		Tags:         doc.Tags,
		Upvotes:      keysToIDs(doc.Upvotes),
		Downvotes:    keysToIDs(doc.Downvotes),
		Views:        doc.Views,
		AnswersCount: doc.AnswersCount,
		IsAnswered:   doc.IsAnswered,
		IsAnonymous:  doc.IsAnonymous,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if doc.BestAnswer != nil {
		best, err := parseKey(*doc.BestAnswer)
		if err == nil {
			q.BestAnswer = &best
		}
	}
	return q, nil
}

func toQuestionModels(docs []questionDoc) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(docs))
	for _, doc := range docs {
		q, err := toQuestionModel(doc)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

type commentDoc struct {
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type answerDoc struct {
	Key          string       `json:"_key"`
	Content      string       `json:"content"`
	Question     string       `json:"question"`
	Author       string       `json:"author"`
	Upvotes      []string     `json:"upvotes"`
	Downvotes    []string     `json:"downvotes"`
	IsBestAnswer bool         `json:"isBestAnswer"`
	Comments     []commentDoc `json:"comments"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func toAnswerDoc(a *model.Answer) answerDoc {
	comments := make([]commentDoc, 0, len(a.Comments))
	for _, c := range a.Comments {
		comments = append(comments, commentDoc{
			Content:   c.Content,
			Author:    docKey(c.AuthorID),
			CreatedAt: c.CreatedAt,
		})
	}
	return answerDoc{
		Key:          docKey(a.ID),
		Content:      a.Content,
		Question:     docKey(a.QuestionID),
		Author:       docKey(a.AuthorID),
		Upvotes:      idsToKeys(a.Upvotes),
		Downvotes:    idsToKeys(a.Downvotes),
		IsBestAnswer: a.IsBestAnswer,
		Comments:     comments,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAnswerModel(doc answerDoc) (*model.Answer, error) {
	id, err := parseKey(doc.Key)
	if err != nil {
		return nil, err
	}
	question, err := parseKey(doc.Question)
	if err != nil {
		return nil, err
	}
	author, err := parseKey(doc.Author)
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0, len(doc.Comments))
	for _, c := range doc.Comments {
		commentAuthor, err := parseKey(c.Author)
		if err != nil {
			continue
		}
		comments = append(comments, model.Comment{
			Content:   c.Content,
			AuthorID:  commentAuthor,
			CreatedAt: c.CreatedAt,
		})
	}
	return &model.Answer{
		ID:           id,
		Content:      doc.Content,
		QuestionID:   question,
		AuthorID:     author,
		Upvotes:      keysToIDs(doc.Upvotes),
		Downvotes:    keysToIDs(doc.Downvotes),
		IsBestAnswer: doc.IsBestAnswer,
		Comments:     comments,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func toAnswerModels(docs []answerDoc) ([]model.Answer, error) {
	answers := make([]model.Answer, 0, len(docs))
	for _, doc := range docs {
		a, err := toAnswerModel(doc)
		if err != nil {
			return nil, err
		}
		answers = append(answers, *a)
	}
	return answers, nil
}

package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"

	"queryhub.app/api/core/config"
	"queryhub.app/api/internal/model"
)

const questionsCollection = "questions"

type typesenseIndex struct {
	client *typesense.Client
}

// NewTypesense connects to a Typesense server and ensures the questions
// collection exists.
func NewTypesense(ctx context.Context, cfg config.TypesenseConfig) (QuestionIndex, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	idx := &typesenseIndex{client: client}
	if err := idx.ensureCollection(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (i *typesenseIndex) ensureCollection(ctx context.Context) error {
	if _, err := i.client.Collection(questionsCollection).Retrieve(ctx); err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: questionsCollection,
		Fields: []api.Field{
			{Name: "title", Type: "string"},
			{Name: "content", Type: "string"},
			{Name: "tags", Type: "string[]", Optional: pointer.True()},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "createdAt", Type: "int64"},
		},
		DefaultSortingField: pointer.String("createdAt"),
	}
	if _, err := i.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("creating questions collection: %w", err)
	}
	return nil
}

func (i *typesenseIndex) Index(ctx context.Context, q *model.Question) error {
	doc := map[string]any{
		"id":        strconv.FormatInt(q.ID, 10),
		"title":     q.Title,
		"content":   q.Content,
		"tags":      q.Tags,
		"category":  string(q.Category),
		"createdAt": q.CreatedAt.Unix(),
	}
	if _, err := i.client.Collection(questionsCollection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("upserting question document: %w", err)
	}
	return nil
}

func (i *typesenseIndex) Remove(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)
	if _, err := i.client.Collection(questionsCollection).Document(key).Delete(ctx); err != nil {
		if strings.Contains(err.Error(), "Not Found") || strings.Contains(err.Error(), "404") {
			return nil
		}
		return fmt.Errorf("deleting question document: %w", err)
	}
	return nil
}

func (i *typesenseIndex) Search(ctx context.Context, query string, limit int) ([]int64, error) {
	if limit < 1 {
		limit = 20
	}
	params := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("title,content,tags"),
		PerPage: pointer.Int(limit),
	}
	result, err := i.client.Collection(questionsCollection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("searching questions: %w", err)
	}
	if result.Hits == nil {
		return nil, nil
	}

	ids := make([]int64, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		raw, ok := (*hit.Document)["id"].(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (i *typesenseIndex) Enabled() bool { return true }

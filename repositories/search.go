//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/blugelabs/bluge"
	"github.com/samber/lo"
)

const (
	fieldContent       = "content"
	fieldChannelID     = "channel_id"
	fieldChannelName   = "channel_name"
	fieldWorkspaceID   = "workspace_id"
	fieldWorkspaceName = "workspace_name"
	fieldUserEmail     = "user_email"
	fieldMention       = "mention"
	fieldLang          = "lang"
	fieldCreatedAt     = "created_at"
)

// IndexedMessage is the searchable projection of a channel message.
type IndexedMessage struct {
	MessageID     string
	ChannelID     string
	ChannelName   string
	WorkspaceID   string
	WorkspaceName string
	UserEmail     string
	Content       string
	Lang          string
	Mentions      []string
	CreatedAt     time.Time
}

type ISearchIndex interface {
	Index(message IndexedMessage) error
	Search(ctx context.Context, term string, workspaceIDs []string, limit int) ([]IndexedMessage, error)
	Mentions(ctx context.Context, username string, workspaceIDs []string, limit int) ([]IndexedMessage, error)
}

type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) *SearchIndex {
	return &SearchIndex{writer: writer, log: log}
}

// Index adds or replaces the document of a message.
func (s *SearchIndex) Index(message IndexedMessage) error {
	doc := bluge.NewDocument(message.MessageID).
		AddField(bluge.NewTextField(fieldContent, message.Content).StoreValue()).
		AddField(bluge.NewKeywordField(fieldChannelID, message.ChannelID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldChannelName, message.ChannelName).StoreValue()).
		AddField(bluge.NewKeywordField(fieldWorkspaceID, message.WorkspaceID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldWorkspaceName, message.WorkspaceName).StoreValue()).
		AddField(bluge.NewKeywordField(fieldUserEmail, message.UserEmail).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLang, message.Lang).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldCreatedAt, message.CreatedAt).StoreValue().Sortable())
	for _, mention := range message.Mentions {
		doc.AddField(bluge.NewKeywordField(fieldMention, strings.ToLower(mention)).StoreValue())
	}
	return s.writer.Update(doc.ID(), doc)
}

// Search finds the messages whose content contains every word of term,
// partial words included, restricted to the given workspaces. Results are
// sorted newest first.
func (s *SearchIndex) Search(ctx context.Context, term string, workspaceIDs []string, limit int) ([]IndexedMessage, error) {
	words := searchWords(term)
	if len(words) == 0 {
		return []IndexedMessage{}, nil
	}
	query := bluge.NewBooleanQuery()
	for _, word := range words {
		query.AddMust(bluge.NewWildcardQuery("*" + word + "*").SetField(fieldContent))
	}
	return s.run(ctx, query, workspaceIDs, limit)
}

// searchWords splits term the way the content analyzer tokenizes it, lowercased.
// Wildcard characters are dropped from user input.
func searchWords(term string) []string {
	return strings.FieldsFunc(strings.ToLower(term), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Mentions finds the messages referencing @username in the given workspaces.
func (s *SearchIndex) Mentions(ctx context.Context, username string, workspaceIDs []string, limit int) ([]IndexedMessage, error) {
	query := bluge.NewTermQuery(strings.ToLower(username)).SetField(fieldMention)
	return s.run(ctx, query, workspaceIDs, limit)
}

func (s *SearchIndex) run(ctx context.Context, query bluge.Query, workspaceIDs []string, limit int) ([]IndexedMessage, error) {
	if len(workspaceIDs) == 0 {
		return []IndexedMessage{}, nil
	}
	scope := bluge.NewBooleanQuery().SetMinShould(1)
	for _, id := range workspaceIDs {
		scope.AddShould(bluge.NewTermQuery(id).SetField(fieldWorkspaceID))
	}
	request := bluge.NewTopNSearch(limit, bluge.NewBooleanQuery().AddMust(query, scope)).
		SortBy([]string{"-" + fieldCreatedAt})

	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	results := []IndexedMessage{}
	match, err := iterator.Next()
	for err == nil && match != nil {
		var message IndexedMessage
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			visitErr = readField(&message, field, value)
			return visitErr == nil
		})
		if err == nil {
			err = visitErr
		}
		if err != nil {
			break
		}
		results = append(results, message)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

func readField(message *IndexedMessage, field string, value []byte) error {
	switch field {
	case "_id":
		message.MessageID = string(value)
	case fieldContent:
		message.Content = string(value)
	case fieldChannelID:
		message.ChannelID = string(value)
	case fieldChannelName:
		message.ChannelName = string(value)
	case fieldWorkspaceID:
		message.WorkspaceID = string(value)
	case fieldWorkspaceName:
		message.WorkspaceName = string(value)
	case fieldUserEmail:
		message.UserEmail = string(value)
	case fieldLang:
		message.Lang = string(value)
	case fieldMention:
		message.Mentions = lo.Uniq(append(message.Mentions, string(value)))
	case fieldCreatedAt:
		at, err := bluge.DecodeDateTime(value)
		if err != nil {
			return err
		}
		message.CreatedAt = at.UTC()
	}
	return nil
}

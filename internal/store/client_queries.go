package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// defaultPageSize applies when a filter does not set a limit.
const defaultPageSize = 50

var messageColumns = []string{
	"id",
	"client_id",
	"sender_id",
	"receiver_id",
	"room_id",
	"message_type",
	"body",
	"file_url",
	"file_name",
	"file_size",
	"duration",
	"mime_type",
	"is_original",
	"is_read",
	"read_at",
	"created_at",
}

// buildQueryMessagesQuery selects one page of a conversation, newest first.
func buildQueryMessagesQuery(ownerID int64, filter models.MessageFilter) (string, []any, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	builder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{
			"owner_id":         ownerID,
			"conversation_key": filter.ConversationKey,
		})
	if filter.BeforeID > 0 {
		builder = builder.Where(sq.Lt{"id": filter.BeforeID})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMarkReadQuery flags ids as read. Rows already read keep their
// original read_at.
func buildMarkReadQuery(ownerID int64, ids []int64, atMillis int64) (string, []any, error) {
	query, args, err := sq.Update("messages").
		Set("is_read", 1).
		Set("read_at", sq.Expr("COALESCE(read_at, ?)", atMillis)).
		Where(sq.Eq{"owner_id": ownerID, "id": ids}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildConversationKeysQuery lists the distinct conversations that ids
// belong to.
func buildConversationKeysQuery(ownerID int64, ids []int64) (string, []any, error) {
	query, args, err := sq.Select("conversation_key").
		Distinct().
		From("messages").
		Where(sq.Eq{"owner_id": ownerID, "id": ids}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildPreviewLookupQuery finds the newest preview an original-ready message
// completes. An echoed client id is authoritative. Without one the newest
// unresolved preview of the same sender and type is taken, and a preview
// with the same content digest wins over newer ones.
func buildPreviewLookupQuery(ownerID int64, match models.PreviewMatch, bodyDigest string) (string, []any, error) {
	builder := sq.Select("id").
		From("messages").
		Where(sq.Eq{"owner_id": ownerID, "file_url": ""}).
		Where(sq.NotEq{"id": match.ExcludeID})

	if match.ClientID != "" {
		builder = builder.Where(sq.Eq{"client_id": match.ClientID})
	} else {
		builder = builder.Where(sq.Eq{
			"sender_id":    match.SenderID,
			"message_type": string(match.Type),
		}).
			Where(sq.Like{"body": "data:image/%"}).
			OrderByClause("CASE WHEN body_digest = ? THEN 0 ELSE 1 END", bodyDigest)
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

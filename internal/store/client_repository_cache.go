package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

type localCache struct {
	*DB
	logger *logger.Logger
}

// NewLocalCache returns the SQLite-backed [LocalCache]. db must already be
// migrated.
func NewLocalCache(db *DB, logger *logger.Logger) LocalCache {
	return &localCache{
		DB:     db,
		logger: logger,
	}
}

func (l *localCache) UpsertMessages(ctx context.Context, ownerID int64, msgs []models.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := l.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertMessage)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		defer stmt.Close()

		keys := make(map[string]struct{}, 1)
		for _, m := range msgs {
			if m.ID == 0 {
				// not yet acknowledged by the server, nothing to key it by
				continue
			}

			key := m.ConversationKey(ownerID)
			var readAt any
			if m.ReadAt != nil {
				readAt = toMillis(*m.ReadAt)
			}

			_, err = stmt.ExecContext(ctx,
				ownerID,
				m.ID,
				m.ClientID,
				key,
				m.SenderID,
				m.ReceiverID,
				m.RoomID,
				string(m.Type),
				m.Body,
				bodyDigest(m.Body),
				m.FileURL,
				m.FileName,
				m.FileSize,
				m.Duration,
				m.MimeType,
				m.IsOriginal,
				m.IsRead,
				readAt,
				toMillis(m.CreatedAt),
			)
			if err != nil {
				return fmt.Errorf("%w: message %d: %w", ErrExecutingStatement, m.ID, err)
			}
			keys[key] = struct{}{}
		}

		for key := range keys {
			if err = recomputeConversation(ctx, tx, ownerID, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localCache.UpsertMessages").
			Int64("owner_id", ownerID).
			Int("count", len(msgs)).
			Msg("failed to upsert messages")
		return fmt.Errorf("failed to upsert messages: %w", err)
	}

	return nil
}

func (l *localCache) UpsertConversations(ctx context.Context, ownerID int64, convs []models.Conversation) error {
	if len(convs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := l.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range convs {
			if c.Key == "" {
				continue
			}
			_, err := tx.ExecContext(ctx, upsertConversation,
				ownerID,
				c.Key,
				c.UserID,
				c.RoomID,
				c.Title,
				c.LastMessage,
				toMillis(c.LastMessageAt),
				c.UnreadCount,
			)
			if err != nil {
				return fmt.Errorf("%w: conversation %s: %w", ErrExecutingStatement, c.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localCache.UpsertConversations").
			Int64("owner_id", ownerID).
			Msg("failed to upsert conversations")
		return fmt.Errorf("failed to upsert conversations: %w", err)
	}

	return nil
}

func (l *localCache) QueryMessages(ctx context.Context, ownerID int64, filter models.MessageFilter) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQueryMessagesQuery(ownerID, filter)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localCache.QueryMessages").
			Int64("owner_id", ownerID).
			Str("conversation_key", filter.ConversationKey).
			Msg("failed to execute query for messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	msgs := make([]models.Message, 0)
	for rows.Next() {
		m, scanErr := scanMessage(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localCache.QueryMessages").
				Int64("owner_id", ownerID).
				Msg("failed to scan message row")
			return nil, scanErr
		}
		msgs = append(msgs, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", rowsErr)
	}

	return msgs, nil
}

func (l *localCache) QueryConversations(ctx context.Context, ownerID int64) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, selectConversations, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "localCache.QueryConversations").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for conversations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	convs := make([]models.Conversation, 0)
	for rows.Next() {
		var (
			c             models.Conversation
			lastMessageAt int64
		)
		if err = rows.Scan(&c.Key, &c.UserID, &c.RoomID, &c.Title, &c.LastMessage, &lastMessageAt, &c.UnreadCount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		c.LastMessageAt = fromMillis(lastMessageAt)
		convs = append(convs, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating conversation rows: %w", rowsErr)
	}

	return convs, nil
}

func (l *localCache) MarkRead(ctx context.Context, ownerID int64, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	keysQuery, keysArgs, err := buildConversationKeysQuery(ownerID, ids)
	if err != nil {
		return err
	}
	updateQuery, updateArgs, err := buildMarkReadQuery(ownerID, ids, toMillis(at))
	if err != nil {
		return err
	}

	err = l.inTx(ctx, func(tx *sql.Tx) error {
		keys, err := queryStrings(ctx, tx, keysQuery, keysArgs...)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, key := range keys {
			if err = recomputeConversation(ctx, tx, ownerID, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localCache.MarkRead").
			Int64("owner_id", ownerID).
			Int("count", len(ids)).
			Msg("failed to mark messages read")
		return fmt.Errorf("failed to mark messages read: %w", err)
	}

	return nil
}

func (l *localCache) ReplacePreviewReference(ctx context.Context, ownerID int64, match models.PreviewMatch) (int64, error) {
	if match.ClientID == "" && match.Body == "" {
		return 0, ErrMessageNotFound
	}

	query, args, err := buildPreviewLookupQuery(ownerID, match, bodyDigest(match.Body))
	if err != nil {
		return 0, err
	}

	var previewID int64
	err = l.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query, args...).Scan(&previewID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMessageNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		_, err = tx.ExecContext(ctx, updatePreviewReference,
			match.FileURL,
			match.FileName,
			match.FileSize,
			ownerID,
			previewID,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Debug().
		Int64("preview_id", previewID).
		Str("file_url", match.FileURL).
		Msg("preview reference replaced")

	return previewID, nil
}

func (l *localCache) GetSyncState(ctx context.Context, ownerID int64, key string, dst any) error {
	var value []byte
	err := l.DB.QueryRowContext(ctx, selectSyncState, ownerID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSyncStateNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = msgpack.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return nil
}

func (l *localCache) PutSyncState(ctx context.Context, ownerID int64, key string, v any) error {
	value, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	return l.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertSyncState, ownerID, key, value, time.Now().UnixMilli()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (l *localCache) ClearAll(ctx context.Context, ownerID int64) error {
	return l.inTx(ctx, func(tx *sql.Tx) error {
		for _, q := range []string{deleteOwnerMessages, deleteOwnerConversations, deleteOwnerSyncState} {
			if _, err := tx.ExecContext(ctx, q, ownerID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (l *localCache) Available() bool {
	return true
}

// recomputeConversation refreshes the preview and unread count of key from
// the messages table.
func recomputeConversation(ctx context.Context, tx *sql.Tx, ownerID int64, key string) error {
	var (
		msgType   string
		body      string
		fileName  string
		createdAt int64
	)
	err := tx.QueryRowContext(ctx, selectLatestMessage, ownerID, key).Scan(&msgType, &body, &fileName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: latest message of %s: %w", ErrExecutingQuery, key, err)
	}

	var unread int
	if err = tx.QueryRowContext(ctx, countUnreadMessages, ownerID, key, ownerID).Scan(&unread); err != nil {
		return fmt.Errorf("%w: unread count of %s: %w", ErrExecutingQuery, key, err)
	}

	userID, roomID, _ := models.ParseConversationKey(key)
	preview := models.PreviewText(models.Message{
		Type:     models.PayloadType(msgType),
		Body:     body,
		FileName: fileName,
	})

	_, err = tx.ExecContext(ctx, upsertConversationPreview,
		ownerID,
		key,
		userID,
		roomID,
		preview,
		createdAt,
		unread,
	)
	if err != nil {
		return fmt.Errorf("%w: conversation %s: %w", ErrExecutingStatement, key, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (models.Message, error) {
	var (
		m         models.Message
		msgType   string
		readAt    sql.NullInt64
		createdAt int64
	)

	err := row.Scan(
		&m.ID,
		&m.ClientID,
		&m.SenderID,
		&m.ReceiverID,
		&m.RoomID,
		&msgType,
		&m.Body,
		&m.FileURL,
		&m.FileName,
		&m.FileSize,
		&m.Duration,
		&m.MimeType,
		&m.IsOriginal,
		&m.IsRead,
		&readAt,
		&createdAt,
	)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	m.Type = models.PayloadType(msgType)
	m.CreatedAt = fromMillis(createdAt)
	if readAt.Valid {
		at := fromMillis(readAt.Int64)
		m.ReadAt = &at
	}
	return m, nil
}

func queryStrings(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// bodyDigest fingerprints a message body so previews can be matched without
// comparing full data URIs.
func bodyDigest(body string) string {
	if body == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertMessage = `
		INSERT INTO messages (
			owner_id,
			id,
			client_id,
			conversation_key,
			sender_id,
			receiver_id,
			room_id,
			message_type,
			body,
			body_digest,
			file_url,
			file_name,
			file_size,
			duration,
			mime_type,
			is_original,
			is_read,
			read_at,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, id) DO UPDATE SET
			client_id        = CASE WHEN excluded.client_id <> '' THEN excluded.client_id ELSE messages.client_id END,
			conversation_key = excluded.conversation_key,
			sender_id        = excluded.sender_id,
			receiver_id      = excluded.receiver_id,
			room_id          = excluded.room_id,
			message_type     = excluded.message_type,
			body             = excluded.body,
			body_digest      = excluded.body_digest,
			file_url         = CASE WHEN excluded.file_url <> '' THEN excluded.file_url ELSE messages.file_url END,
			file_name        = CASE WHEN excluded.file_name <> '' THEN excluded.file_name ELSE messages.file_name END,
			file_size        = CASE WHEN excluded.file_size <> 0 THEN excluded.file_size ELSE messages.file_size END,
			duration         = excluded.duration,
			mime_type        = excluded.mime_type,
			is_original      = MAX(messages.is_original, excluded.is_original),
			is_read          = MAX(messages.is_read, excluded.is_read),
			read_at          = COALESCE(excluded.read_at, messages.read_at),
			created_at       = excluded.created_at;`

	selectLatestMessage = `
		SELECT message_type, body, file_name, created_at
		FROM messages
		WHERE owner_id = ? AND conversation_key = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`

	countUnreadMessages = `
		SELECT COUNT(*)
		FROM messages
		WHERE owner_id = ? AND conversation_key = ? AND is_read = 0 AND sender_id <> ?;`

	// recomputed previews never move last_message_at backwards
	upsertConversationPreview = `
		INSERT INTO conversations (
			owner_id,
			key,
			user_id,
			room_id,
			last_message,
			last_message_at,
			unread_count
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, key) DO UPDATE SET
			last_message    = CASE WHEN excluded.last_message_at >= conversations.last_message_at
			                       THEN excluded.last_message ELSE conversations.last_message END,
			last_message_at = MAX(conversations.last_message_at, excluded.last_message_at),
			unread_count    = excluded.unread_count;`

	upsertConversation = `
		INSERT INTO conversations (
			owner_id,
			key,
			user_id,
			room_id,
			title,
			last_message,
			last_message_at,
			unread_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, key) DO UPDATE SET
			user_id         = excluded.user_id,
			room_id         = excluded.room_id,
			title           = CASE WHEN excluded.title <> '' THEN excluded.title ELSE conversations.title END,
			last_message    = CASE WHEN excluded.last_message_at >= conversations.last_message_at
			                       THEN excluded.last_message ELSE conversations.last_message END,
			last_message_at = MAX(conversations.last_message_at, excluded.last_message_at),
			unread_count    = excluded.unread_count;`

	selectConversations = `
		SELECT key, user_id, room_id, title, last_message, last_message_at, unread_count
		FROM conversations
		WHERE owner_id = ?
		ORDER BY last_message_at DESC, key;`

	updatePreviewReference = `
		UPDATE messages
		SET file_url = ?, file_name = ?, file_size = ?, is_original = 1
		WHERE owner_id = ? AND id = ?;`

	selectSyncState = `
		SELECT value FROM sync_state WHERE owner_id = ? AND key = ?;`

	upsertSyncState = `
		INSERT INTO sync_state (owner_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner_id, key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteOwnerMessages      = `DELETE FROM messages WHERE owner_id = ?;`
	deleteOwnerConversations = `DELETE FROM conversations WHERE owner_id = ?;`
	deleteOwnerSyncState     = `DELETE FROM sync_state WHERE owner_id = ?;`
)

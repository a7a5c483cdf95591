// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildQueryMessagesQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.MessageFilter
		wantParts []string
		wantArgs  []any
	}{
		{
			name:      "default limit",
			filter:    models.MessageFilter{ConversationKey: "user_2"},
			wantParts: []string{"from messages", "order by created_at desc, id desc", "limit 50"},
			wantArgs:  []any{"user_2", int64(1)},
		},
		{
			name:      "before id",
			filter:    models.MessageFilter{ConversationKey: "room_9", BeforeID: 100, Limit: 20},
			wantParts: []string{"id < ?", "limit 20"},
			wantArgs:  []any{"room_9", int64(1), int64(100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildQueryMessagesQuery(1, tt.filter)
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, part := range tt.wantParts {
				assert.Contains(t, q, part)
			}
			// squirrel sorts sq.Eq keys: conversation_key, owner_id
			assert.Equal(t, tt.wantArgs, args)
			assert.NotContains(t, query, "$1")
		})
	}
}

func Test_buildMarkReadQuery(t *testing.T) {
	query, args, err := buildMarkReadQuery(1, []int64{5, 6, 7}, 1000)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update messages set is_read = ?")
	assert.Contains(t, q, "coalesce(read_at, ?)")
	assert.Contains(t, q, "id in (?,?,?)")
	assert.Equal(t, []any{1, int64(1000), int64(5), int64(6), int64(7), int64(1)}, args)
}

func Test_buildPreviewLookupQuery(t *testing.T) {
	t.Run("client id wins", func(t *testing.T) {
		query, args, err := buildPreviewLookupQuery(1, models.PreviewMatch{ClientID: "c-1", ExcludeID: 9}, "digest")
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "client_id = ?")
		assert.NotContains(t, q, "body_digest")
		assert.Contains(t, args, "c-1")
	})

	t.Run("content heuristic", func(t *testing.T) {
		query, args, err := buildPreviewLookupQuery(1, models.PreviewMatch{SenderID: 2, Type: models.PayloadImage}, "digest")
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "body like ?")
		assert.Contains(t, q, "order by case when body_digest = ? then 0 else 1 end, created_at desc, id desc")
		assert.NotContains(t, q, "and body_digest")
		assert.Contains(t, args, "data:image/%")
		assert.Equal(t, "digest", args[len(args)-1], "аргумент сортировки идёт последним")
		assert.Contains(t, q, "limit 1")
	})
}

package models

// ResourceState is the load state of one binary resource.
type ResourceState int

const (
	ResourceAbsent ResourceState = iota
	ResourceLoading
	ResourceCached
)

func (s ResourceState) String() string {
	switch s {
	case ResourceLoading:
		return "loading"
	case ResourceCached:
		return "cached"
	default:
		return "absent"
	}
}

// ResourceHandle is an in-memory copy of a fetched resource shared by every
// holder of the same id. Data is released by the loader once the last
// reference is dropped and must not be used after Release.
type ResourceHandle struct {
	ID       string
	Data     []byte
	MimeType string
}

// Size returns the number of bytes held.
func (h *ResourceHandle) Size() int {
	if h == nil {
		return 0
	}
	return len(h.Data)
}

// SyncCursor is the catch-up position of one conversation, persisted in the
// sync state table.
type SyncCursor struct {
	LastMessageID int64 `msgpack:"lastMessageId"`
	SyncedAt      int64 `msgpack:"syncedAt"`
}

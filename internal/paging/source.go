package paging

import (
	"context"
	"errors"
	"fmt"

	"github.com/ytget/feed-client/internal/model"
)

// FirstKey is the key of the first page of every source
const FirstKey = 0

// ErrInvalidParams is returned for negative keys or non-positive sizes
var ErrInvalidParams = errors.New("invalid page request")

// LoadParams describes one page request
type LoadParams struct {
	Key  int
	Size int
}

// PageResult is one loaded page. PrevKey is nil iff this is the first page;
// NextKey is nil iff the page came back shorter than requested.
type PageResult struct {
	Items   []model.Post
	PrevKey *int
	NextKey *int
}

// Source loads pages by key. Load must be idempotent for a given key as long
// as the backing collection does not change.
type Source interface {
	Load(ctx context.Context, params LoadParams) (PageResult, error)
}

// Snapshotter provides a point-in-time copy of a post collection
type Snapshotter interface {
	Snapshot() []model.Post
}

// ListSource pages over a fixed slice
type ListSource struct {
	posts []model.Post
}

// NewListSource creates a source over posts. The slice is not copied and must
// not be modified afterwards.
func NewListSource(posts []model.Post) *ListSource {
	return &ListSource{posts: posts}
}

// NewLocalSource creates a source over the store contents at call time.
// Posts added later are only visible to sources created after them.
func NewLocalSource(store Snapshotter) *ListSource {
	return NewListSource(store.Snapshot())
}

// NewMergedSource pages over the local posts followed by the remote ones.
// The local side is snapshotted at call time.
func NewMergedSource(store Snapshotter, remote []model.Post) *ListSource {
	local := store.Snapshot()
	posts := make([]model.Post, 0, len(local)+len(remote))
	posts = append(posts, local...)
	posts = append(posts, remote...)
	return NewListSource(posts)
}

// Len returns the size of the backing list
func (s *ListSource) Len() int {
	return len(s.posts)
}

// Load returns posts[key*size : min(key*size+size, len)]
func (s *ListSource) Load(ctx context.Context, params LoadParams) (PageResult, error) {
	if err := ctx.Err(); err != nil {
		return PageResult{}, err
	}
	if err := params.validate(); err != nil {
		return PageResult{}, err
	}

	offset := params.Key * params.Size
	if offset >= len(s.posts) {
		return newPageResult(params, []model.Post{}), nil
	}
	end := offset + params.Size
	if end > len(s.posts) {
		end = len(s.posts)
	}

	items := make([]model.Post, end-offset)
	copy(items, s.posts[offset:end])
	return newPageResult(params, items), nil
}

// FetchFunc fetches count items starting at offset from a remote service
type FetchFunc func(ctx context.Context, offset, count int) ([]model.Post, error)

// FetchSource adapts an offset/count remote endpoint to page keys
type FetchSource struct {
	fetch FetchFunc
}

// NewFetchSource creates a source backed by fetch
func NewFetchSource(fetch FetchFunc) *FetchSource {
	return &FetchSource{fetch: fetch}
}

// Load fetches the page at key*size
func (s *FetchSource) Load(ctx context.Context, params LoadParams) (PageResult, error) {
	if err := params.validate(); err != nil {
		return PageResult{}, err
	}

	items, err := s.fetch(ctx, params.Key*params.Size, params.Size)
	if err != nil {
		return PageResult{}, err
	}
	if len(items) > params.Size {
		items = items[:params.Size]
	}
	return newPageResult(params, items), nil
}

func (p LoadParams) validate() error {
	if p.Key < 0 || p.Size <= 0 {
		return fmt.Errorf("%w: key=%d size=%d", ErrInvalidParams, p.Key, p.Size)
	}
	return nil
}

// newPageResult applies the key policy: a previous key unless first, a next
// key only when the page is full. A full last page therefore still advertises
// a next key; the following load comes back empty and ends the flow.
func newPageResult(params LoadParams, items []model.Post) PageResult {
	result := PageResult{Items: items}
	if params.Key > FirstKey {
		prev := params.Key - 1
		result.PrevKey = &prev
	}
	if len(items) == params.Size {
		next := params.Key + 1
		result.NextKey = &next
	}
	return result
}

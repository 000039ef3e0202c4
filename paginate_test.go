package mdsite

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []PostView {
	posts := make([]PostView, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, PostView{
			Title: fmt.Sprintf("Post %d", i+1),
			Date:  time.Date(2025, 1, n-i, 0, 0, 0, 0, time.UTC),
		})
	}
	return posts
}

func TestPaginateSevenPostsByThree(t *testing.T) {
	pages, err := Paginate(makePosts(7), 3)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	first := pages[0]
	assert.Len(t, first.Posts, 3)
	assert.Equal(t, 1, first.PageNumber)
	assert.Equal(t, 3, first.TotalPages)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
	assert.Empty(t, first.PreviousURL)
	assert.Equal(t, "/page/2/", first.NextURL)

	second := pages[1]
	assert.Len(t, second.Posts, 3)
	assert.True(t, second.HasPrevious)
	// Page 1 lives at the site root.
	assert.Equal(t, "/", second.PreviousURL)
	assert.Equal(t, "/page/3/", second.NextURL)

	last := pages[2]
	assert.Len(t, last.Posts, 1)
	assert.False(t, last.HasNext)
	assert.Empty(t, last.NextURL)
	assert.Equal(t, "/page/2/", last.PreviousURL)
}

func TestPaginateExactFit(t *testing.T) {
	pages, err := Paginate(makePosts(6), 3)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Len(t, pages[1].Posts, 3)
}

func TestPaginateEmpty(t *testing.T) {
	pages, err := Paginate(nil, 10)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestPaginateRejectsNonPositivePageSize(t *testing.T) {
	_, err := Paginate(makePosts(3), 0)
	require.Error(t, err)
	_, err = Paginate(makePosts(3), -1)
	require.Error(t, err)
}

func TestPaginatePreservesOrder(t *testing.T) {
	pages, err := Paginate(makePosts(5), 2)
	require.NoError(t, err)

	var titles []string
	for _, page := range pages {
		for _, post := range page.Posts {
			titles = append(titles, post.Title)
		}
	}
	assert.Equal(t, []string{"Post 1", "Post 2", "Post 3", "Post 4", "Post 5"}, titles)
}

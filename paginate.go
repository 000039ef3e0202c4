package mdsite

import "fmt"

// Page is one slice of the chronological index. PreviousURL and NextURL are
// empty when there is no neighboring page.
type Page struct {
	Posts       []PostView
	PageNumber  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	PreviousURL string
	NextURL     string
}

// Paginate splits a date-sorted post list into index pages. An empty post
// list still yields a single, empty page so the site always has a root
// index.
func Paginate(posts []PostView, postsPerPage int) ([]Page, error) {
	if postsPerPage <= 0 {
		return nil, fmt.Errorf("posts per page must be positive, got %d", postsPerPage)
	}

	if len(posts) == 0 {
		return []Page{{Posts: []PostView{}, PageNumber: 1, TotalPages: 1}}, nil
	}

	totalPages := (len(posts) + postsPerPage - 1) / postsPerPage
	pages := make([]Page, 0, totalPages)

	for number := 1; number <= totalPages; number++ {
		start := (number - 1) * postsPerPage
		end := min(start+postsPerPage, len(posts))

		page := Page{
			Posts:       posts[start:end],
			PageNumber:  number,
			TotalPages:  totalPages,
			HasPrevious: number > 1,
			HasNext:     number < totalPages,
		}
		if page.HasPrevious {
			page.PreviousURL = PaginationURL(number - 1)
		}
		if page.HasNext {
			page.NextURL = PaginationURL(number + 1)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

package paginate

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params is page-number pagination; limit overrides the default page size.
type Params struct {
	Page  int
	Limit int
}

func Parse(c *gin.Context, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// Envelope wraps results with count and next/previous page links built from
// the current request URL.
func Envelope(c *gin.Context, count int64, p Params, results any) Page {
	page := Page{Count: count, Results: results}

	if int64(p.Offset()+p.Limit) < count {
		page.Next = pageURL(c, p.Page+1)
	}
	if p.Page > 1 {
		page.Previous = pageURL(c, p.Page-1)
	}
	return page
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

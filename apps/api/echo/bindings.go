package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/gradebook/core/student"
)

var (
	searchParam   = "search"
	orderingParam = "ordering"
)

// RosterQuery holds the roster search term and ordering (eg. ?search=ali&ordering=-averageScore).
type RosterQuery struct {
	Search string
	Sort   *student.SortSpec
}

func (q *RosterQuery) Bind(ctx echo.Context) error {
	q.Search = ctx.QueryParam(searchParam)

	sort, err := student.ParseSortSpec(ctx.QueryParam(orderingParam))
	if err != nil {
		return err
	}
	q.Sort = sort
	return nil
}

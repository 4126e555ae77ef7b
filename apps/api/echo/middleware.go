package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/gradebook/core/student"
)

const recordCtxKey = "object"

// studentCtxMiddleware loads the derived record of the `:id` student into the context.
func studentCtxMiddleware(svc *student.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rec, err := svc.Preview(ctx.Param("id"))
			if err != nil {
				return err
			}
			ctx.Set(recordCtxKey, rec)
			return next(ctx)
		}
	}
}

func getContextRecord(ctx echo.Context) (student.Record, error) {
	rec, ok := ctx.Get(recordCtxKey).(student.Record)
	if !ok {
		return student.Record{}, errStudentNotFoundInCtx
	}
	return rec, nil
}

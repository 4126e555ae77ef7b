package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/student"
)

type (
	studentApi struct {
		svc *student.Service
	}

	subjectResponse struct {
		Subject string        `json:"subject"`
		Average float64       `json:"average"`
		Grade   student.Grade `json:"grade"`
		Color   string        `json:"color"`
	}
)

func registerStudentAPI(g *echo.Group, svc *student.Service) {
	api := studentApi{svc: svc}

	g.GET("/dashboard", api.dashboard)
	g.GET("/subjects", api.subjects)

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.POST("/reset", api.reset)

	// detail endpoints
	dg := sg.Group("/:id", studentCtxMiddleware(svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *studentApi) dashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Stats())
}

func (api *studentApi) subjects(ctx echo.Context) error {
	avgs := api.svc.SubjectAverages()
	resp := make([]subjectResponse, len(avgs))
	for i, a := range avgs {
		g := student.Classify(a.Average)
		resp[i] = subjectResponse{Subject: a.Subject, Average: a.Average, Grade: g, Color: g.Color()}
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *studentApi) query(ctx echo.Context) error {
	var q RosterQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Query(q.Search, q.Sort))
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	// same as an untouched form: every subject at 0
	if data.Scores == nil {
		data.Scores = student.FormScores(api.svc.Subjects(), nil)
	}

	st, err := api.svc.Add(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding student")
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	rec, err := getContextRecord(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *studentApi) update(ctx echo.Context) error {
	rec, err := getContextRecord(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving object from context")
	}

	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}

	st, err := api.svc.Update(ctx.Request().Context(), rec.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	rec, err := getContextRecord(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving object from context")
	}
	if err := api.svc.Delete(ctx.Request().Context(), rec.ID); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) reset(ctx echo.Context) error {
	if err := api.svc.Reset(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "resetting roster")
	}
	return ctx.JSON(http.StatusOK, api.svc.Query("", nil))
}

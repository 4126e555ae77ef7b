package echoapi_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core/student"
)

func TestServer_home(t *testing.T) {
	app := setup(t)
	rec := app.do(http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Gradebook API!", rec.Body.String())
}

func Test_studentApi_dashboard(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodGet, "/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats student.Stats
	decode(t, rec, &stats)
	assert.Equal(t, 10, stats.TotalStudents)
	assert.Equal(t, "82.5", stats.AverageScore)
	assert.Equal(t, "Diana Prince", stats.TopPerformer)
	assert.Equal(t, "100.0%", stats.PassingRate)
	assert.Equal(t, student.SubjectAverage{Subject: "Mathematics", Average: 80.4}, stats.SubjectPerformance[0])
	assert.Equal(t, 4, stats.GradeDistribution.Count(student.GradeA))
}

func Test_studentApi_dashboard_emptyRoster(t *testing.T) {
	app := setup(t, "students", "[]")

	tests := []httpTest{
		{
			name: "N/A sentinels", path: "/v1/dashboard", wantCode: http.StatusOK,
			wantData: []byte(`{
				"totalStudents": 0,
				"averageScore": "N/A",
				"topPerformer": "N/A",
				"passingRate": "N/A",
				"subjectPerformance": [
					{"subject": "Mathematics", "average": 0},
					{"subject": "Science", "average": 0},
					{"subject": "History", "average": 0},
					{"subject": "English", "average": 0},
					{"subject": "Art", "average": 0}
				],
				"gradeDistribution": {
					"buckets": [
						{"grade": "A", "count": 0, "color": "#10b981"},
						{"grade": "B", "count": 0, "color": "#3b82f6"},
						{"grade": "C", "count": 0, "color": "#f59e0b"},
						{"grade": "D", "count": 0, "color": "#f97316"},
						{"grade": "F", "count": 0, "color": "#ef4444"}
					],
					"ungraded": 0
				}
			}`),
		},
		{name: "empty list", path: "/v1/students", wantCode: http.StatusOK, wantData: []byte(`[]`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(http.MethodGet, tt.path))
		})
	}
}

func Test_studentApi_query(t *testing.T) {
	app := setup(t)

	path := func(search, ordering string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if ordering != "" {
			v.Add("ordering", ordering)
		}
		return "/v1/students?" + v.Encode()
	}
	ids := func(rec []student.Record) []string {
		out := make([]string, len(rec))
		for i, r := range rec {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantIDs  []string
	}{
		{name: "all, roster order", path: "/v1/students", wantCode: http.StatusOK,
			wantIDs: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10"}},
		{name: "search name", path: path("PRINCE", ""), wantCode: http.StatusOK, wantIDs: []string{"s4"}},
		{name: "search padded", path: path("  prince ", ""), wantCode: http.StatusOK, wantIDs: []string{"s4"}},
		{name: "search registered id", path: path("sid-007", ""), wantCode: http.StatusOK, wantIDs: []string{"s7"}},
		{name: "search unknown", path: path("lol", ""), wantCode: http.StatusOK, wantIDs: []string{}},
		{name: "order by -averageScore", path: path("", "-averageScore"), wantCode: http.StatusOK,
			wantIDs: []string{"s4", "s1", "s9", "s8", "s5", "s10", "s2", "s7", "s3", "s6"}},
		{name: "order by name", path: path("", "name"), wantCode: http.StatusOK,
			wantIDs: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10"}},
		{name: "search & order", path: path("an", "-name"), wantCode: http.StatusOK,
			wantIDs: []string{"s10", "s9", "s8", "s7", "s6", "s5", "s4"}},
		{name: "invalid ordering", path: path("", "age"), wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodGet, tt.path)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				var flds map[string]string
				decode(t, rec, &flds)
				assert.Contains(t, flds, "ordering")
				return
			}
			var records []student.Record
			decode(t, rec, &records)
			assert.Equal(t, tt.wantIDs, ids(records))
		})
	}
}

func Test_studentApi_retrieve(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodGet, "/v1/students/s4")
	require.Equal(t, http.StatusOK, rec.Code)
	var record student.Record
	decode(t, rec, &record)
	assert.Equal(t, "Diana Prince", record.Name)
	assert.Equal(t, "SID-004", record.RegisteredID)
	require.NotNil(t, record.AverageScore)
	assert.InDelta(t, 96.8, *record.AverageScore, 1e-9)
	assert.Equal(t, student.GradeA, record.Grade)

	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, httpErr{Error: "student not found"})},
		app.do(http.MethodGet, "/v1/students/nope"))
}

func Test_studentApi_create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantFields []string
	}{
		{name: "valid", body: `{"name":"Kim Possible","scores":[{"subject":"Mathematics","score":99},{"subject":"Art","score":88}]}`,
			wantCode: http.StatusCreated},
		{name: "name required", body: `{"scores":[]}`, wantCode: http.StatusBadRequest, wantFields: []string{"name"}},
		{name: "score out of range", body: `{"name":"Kim","scores":[{"subject":"Art","score":101}]}`,
			wantCode: http.StatusBadRequest, wantFields: []string{"scores[0].score"}},
		{name: "duplicate subject", body: `{"name":"Kim","scores":[{"subject":"Art","score":1},{"subject":"Art","score":2}]}`,
			wantCode: http.StatusBadRequest, wantFields: []string{"scores"}},
		{name: "unknown subject", body: `{"name":"Kim","scores":[{"subject":"Music","score":1}]}`,
			wantCode: http.StatusBadRequest, wantFields: []string{"scores[0].subject"}},
		{name: "malformed json", body: `{"name":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t)
			rec := app.do(http.MethodPost, "/v1/students", []byte(tt.body))
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode == http.StatusCreated {
				var st student.Student
				decode(t, rec, &st)
				assert.NotEmpty(t, st.ID)
				assert.Equal(t, "SID-011", st.RegisteredID)
				assert.Len(t, app.svc.Roster(), 11)
				return
			}
			if len(tt.wantFields) > 0 {
				var flds map[string]string
				decode(t, rec, &flds)
				assert.Len(t, flds, len(tt.wantFields))
				for _, f := range tt.wantFields {
					assert.Contains(t, flds, f)
				}
			}
			assert.Len(t, app.svc.Roster(), 10)
		})
	}
}

func Test_studentApi_create_defaultScores(t *testing.T) {
	app := setup(t)
	rec := app.do(http.MethodPost, "/v1/students", []byte(`{"name":"Ron Stoppable"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	var st student.Student
	decode(t, rec, &st)
	require.Len(t, st.Scores, 5)
	for _, sc := range st.Scores {
		assert.Zero(t, sc.Score)
	}
	assert.Equal(t, "Mathematics", st.Scores[0].Subject)
}

func Test_studentApi_update(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodPut, "/v1/students/s6",
		[]byte(`{"name":"Fiona G.","scores":[{"subject":"Mathematics","score":95}],"id":"hacked","registeredId":"SID-999"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var st student.Student
	decode(t, rec, &st)
	assert.Equal(t, student.Student{
		ID: "s6", Name: "Fiona G.", RegisteredID: "SID-006",
		Scores: []student.SubjectScore{{Subject: "Mathematics", Score: 95}},
	}, st)

	// keep name and scores when omitted
	rec = app.do(http.MethodPut, "/v1/students/s6", []byte(`{}`))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &st)
	assert.Equal(t, "Fiona G.", st.Name)
	assert.Len(t, st.Scores, 1)

	tests := []httpTest{
		{name: "unknown id", path: "/v1/students/nope", body: []byte(`{"name":"X"}`), wantCode: http.StatusNotFound,
			wantData: marshallObj(t, httpErr{Error: "student not found"})},
		{name: "invalid score", path: "/v1/students/s6", body: []byte(`{"scores":[{"subject":"Art","score":-1}]}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"scores[0].score":"score must be 0 or greater"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(http.MethodPut, tt.path, tt.body))
		})
	}
}

func Test_studentApi_destroy(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodDelete, "/v1/students/s4")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, found := app.svc.Roster().Find("s4")
	assert.False(t, found)

	rec = app.do(http.MethodDelete, "/v1/students/s4")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/v1/dashboard")
	var stats student.Stats
	decode(t, rec, &stats)
	assert.Equal(t, "Alice Johnson", stats.TopPerformer)
}

func Test_studentApi_reset(t *testing.T) {
	app := setup(t)
	require.NoError(t, app.svc.Delete(context.Background(), "s1"))

	rec := app.do(http.MethodPost, "/v1/students/reset")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []student.Record
	decode(t, rec, &records)
	assert.Len(t, records, 10)
	assert.Equal(t, "s1", records[0].ID)
}

func Test_studentApi_subjects(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodGet, "/v1/subjects")
	require.Equal(t, http.StatusOK, rec.Code)

	var subjects []struct {
		Subject string        `json:"subject"`
		Average float64       `json:"average"`
		Grade   student.Grade `json:"grade"`
		Color   string        `json:"color"`
	}
	decode(t, rec, &subjects)
	require.Len(t, subjects, 5)
	assert.Equal(t, "Mathematics", subjects[0].Subject)
	assert.InDelta(t, 80.4, subjects[0].Average, 1e-9)
	assert.Equal(t, student.GradeB, subjects[0].Grade)
	assert.Equal(t, "#3b82f6", subjects[0].Color)
	assert.Equal(t, "Art", subjects[4].Subject)
	assert.Equal(t, student.GradeB, subjects[4].Grade) // 86.7
}

func Test_themeApi(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{name: "default", method: http.MethodGet, path: "/v1/theme", wantCode: http.StatusOK,
			wantData: marshallObj(t, ThemePayload{Theme: student.ThemeLight})},
		{name: "toggle", method: http.MethodPost, path: "/v1/theme/toggle", wantCode: http.StatusOK,
			wantData: marshallObj(t, ThemePayload{Theme: student.ThemeDark})},
		{name: "get toggled", method: http.MethodGet, path: "/v1/theme", wantCode: http.StatusOK,
			wantData: marshallObj(t, ThemePayload{Theme: student.ThemeDark})},
		{name: "set light", method: http.MethodPut, path: "/v1/theme", body: []byte(`{"theme":"light"}`),
			wantCode: http.StatusOK, wantData: marshallObj(t, ThemePayload{Theme: student.ThemeLight})},
		{name: "set invalid", method: http.MethodPut, path: "/v1/theme", body: []byte(`{"theme":"blue"}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"theme":"theme must be one of light, dark"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt.method, tt.path, tt.body))
		})
	}

	val, err := app.store.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", val)
}
